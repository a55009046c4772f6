package almanac

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/rangeflow/stage"
)

// maxLineBytes bounds a single almanac line; seed lines can be long.
const maxLineBytes = 1 << 20

// Parse reads a plain-text almanac from r.
//
// Grammar (blank lines ignored, surrounding spaces trimmed):
//
//	seeds: <uint64>...           at most once
//	<from>-to-<to> map:          starts a map
//	<dest> <source> <length>     a row of the current map
//
// Returns ErrSyntax for unknown headers, a second seeds line, bad seed
// values or rows outside a map, and stage.ErrMalformedMapping for rows
// that are not three non-negative integers. Errors carry the line number.
func Parse(r io.Reader) (*Almanac, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	a := &Almanac{}
	var (
		lineNo    int
		seenSeeds bool
		cur       = -1 // index of the map receiving rows
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		head, rest, isHeader := strings.Cut(line, ":")
		if !isHeader {
			if cur < 0 {
				return nil, fmt.Errorf("%w: line %d: mapping row outside of a map", ErrSyntax, lineNo)
			}
			row, err := parseRow(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			a.Maps[cur].Rows = append(a.Maps[cur].Rows, row)
			continue
		}

		head = strings.TrimSpace(head)
		switch {
		case head == "seeds":
			if seenSeeds {
				return nil, fmt.Errorf("%w: line %d: duplicate seeds line", ErrSyntax, lineNo)
			}
			seenSeeds = true
			seeds, err := parseSeeds(rest)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrSyntax, lineNo, err)
			}
			a.Seeds = seeds
			cur = -1
		case strings.HasSuffix(head, " map"):
			from, to, ok := strings.Cut(strings.TrimSuffix(head, " map"), "-to-")
			if !ok || from == "" || to == "" {
				return nil, fmt.Errorf("%w: line %d: map header %q is not <from>-to-<to>", ErrSyntax, lineNo, head)
			}
			if strings.TrimSpace(rest) != "" {
				return nil, fmt.Errorf("%w: line %d: unexpected text after map header", ErrSyntax, lineNo)
			}
			a.Maps = append(a.Maps, Map{From: from, To: to})
			cur = len(a.Maps) - 1
		default:
			return nil, fmt.Errorf("%w: line %d: unknown header %q", ErrSyntax, lineNo, head)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrSyntax, lineNo+1, err)
	}

	return a, nil
}

// ParseFile opens path and parses it as a plain-text almanac.
func ParseFile(path string) (*Almanac, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("almanac: open %s: %w", path, err)
	}
	defer f.Close()

	a, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return a, nil
}

// LoadFile reads path in the given Format. FormatAuto chooses by extension.
func LoadFile(path string, format Format) (*Almanac, error) {
	if format == FormatAuto {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			format = FormatYAML
		default:
			format = FormatText
		}
	}
	switch format {
	case FormatText:
		return ParseFile(path)
	case FormatYAML:
		return LoadYAMLFile(path)
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
}

// parseSeeds reads whitespace-separated uint64 values.
func parseSeeds(s string) ([]uint64, error) {
	fields := strings.Fields(s)
	seeds := make([]uint64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad seed %q", f)
		}
		seeds = append(seeds, v)
	}

	return seeds, nil
}

// parseRow reads "dest source length".
func parseRow(line string) (Row, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Row{}, fmt.Errorf("%w: want 3 fields, got %d", stage.ErrMalformedMapping, len(fields))
	}
	var vals [3]uint64
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return Row{}, fmt.Errorf("%w: %q is not a non-negative integer", stage.ErrMalformedMapping, f)
		}
		vals[i] = v
	}

	return Row{Dest: vals[0], Source: vals[1], Length: vals[2]}, nil
}
