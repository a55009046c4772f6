package almanac

import (
	"errors"
	"fmt"
)

// Chain endpoints every almanac must connect.
const (
	SourceCategory = "seed"
	TargetCategory = "location"
)

// Sentinel errors for almanac reading.
var (
	// ErrSyntax indicates text that is not a valid almanac.
	ErrSyntax = errors.New("almanac: syntax error")

	// ErrBrokenChain indicates maps that do not form a single chain from
	// SourceCategory to TargetCategory.
	ErrBrokenChain = errors.New("almanac: maps do not chain from seed to location")

	// ErrUnknownFormat indicates an unsupported Format value or file extension.
	ErrUnknownFormat = errors.New("almanac: unknown input format")
)

// Almanac is the parsed content of one input: the seed line and every map
// in the order it was listed.
type Almanac struct {
	Seeds []uint64 `yaml:"seeds"`
	Maps  []Map    `yaml:"maps"`
}

// Map is one "<from>-to-<to> map:" table.
type Map struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Rows []Row  `yaml:"rows"`
}

// Name returns the header name, e.g. "seed-to-soil".
func (m Map) Name() string {
	return fmt.Sprintf("%s-to-%s", m.From, m.To)
}

// Row is one "dest source length" line, kept in parse order.
type Row struct {
	Dest   uint64
	Source uint64
	Length uint64
}

// Format selects the input representation for LoadFile.
type Format int

const (
	// FormatAuto picks YAML for .yaml/.yml files and text otherwise.
	FormatAuto Format = iota

	// FormatText is the plain-text almanac.
	FormatText

	// FormatYAML is the YAML document form.
	FormatYAML
)

// ParseFormat maps "auto", "text" and "yaml" to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "auto", "":
		return FormatAuto, nil
	case "text", "txt":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}

	return FormatAuto, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}
