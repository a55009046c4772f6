package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleText = "../../almanac/testdata/example.txt"

// answers extracts "partN: value" pairs from CLI output.
func answers(out string) map[string]string {
	re := regexp.MustCompile(`(?m)^(part\d): ([^,]+), time:`)
	got := map[string]string{}
	for _, m := range re.FindAllStringSubmatch(out, -1) {
		got[m[1]] = m[2]
	}

	return got
}

// TestRun_Example resolves the canonical almanac in both formats.
func TestRun_Example(t *testing.T) {
	for _, args := range [][]string{
		{exampleText},
		{"-format", "yaml", "../../almanac/testdata/example.yaml"},
		{"-workers", "4", exampleText},
	} {
		var stdout, stderr bytes.Buffer
		code := run(args, &stdout, &stderr)
		require.Equal(t, 0, code, "args %v stderr %s", args, stderr.String())
		assert.Equal(t, map[string]string{"part1": "35", "part2": "46"}, answers(stdout.String()), "args %v", args)
	}
}

// TestRun_VerboseAndDump logs every stage and dumps the parsed almanac.
func TestRun_VerboseAndDump(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-v", "-dump", exampleText}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Seeds")
	assert.Contains(t, stderr.String(), "stage 6 humidity-to-location")
}

// TestRun_NoSeeds reports "no result" without failing.
func TestRun_NoSeeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noseeds.txt")
	require.NoError(t, os.WriteFile(path, []byte("seed-to-location map:\n1 2 3\n"), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, map[string]string{"part1": "no result", "part2": "no result"}, answers(stdout.String()))
}

// TestRun_Failures covers fatal exit codes.
func TestRun_Failures(t *testing.T) {
	dir := t.TempDir()
	odd := filepath.Join(dir, "odd.txt")
	require.NoError(t, os.WriteFile(odd, []byte("seeds: 1 2 3\nseed-to-location map:\n1 2 3\n"), 0o644))
	broken := filepath.Join(dir, "broken.txt")
	require.NoError(t, os.WriteFile(broken, []byte("seeds: 1 2\nseed-to-soil map:\n1 2 3\n"), 0o644))

	cases := []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"BadFlag", []string{"-nope"}, 2, "flag provided but not defined"},
		{"BadFormat", []string{"-format", "json", exampleText}, 2, "unknown input format"},
		{"MissingFile", []string{filepath.Join(dir, "missing.txt")}, 1, "missing.txt"},
		{"BrokenChain", []string{broken}, 1, "do not chain"},
		{"OddSeeds", []string{odd}, 1, "part2"},
		{"NegativeWorkers", []string{"-workers", "-1", exampleText}, 1, "Workers cannot be negative"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tc.args, &stdout, &stderr)
			assert.Equal(t, tc.code, code)
			assert.Contains(t, stderr.String(), tc.msg)
		})
	}
}
