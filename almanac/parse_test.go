package almanac_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rangeflow/almanac"
	"github.com/katalvlaran/rangeflow/stage"
)

// TestParseFile_Example reads the canonical almanac from testdata.
func TestParseFile_Example(t *testing.T) {
	a, err := almanac.ParseFile("testdata/example.txt")
	require.NoError(t, err)

	assert.Equal(t, []uint64{79, 14, 55, 13}, a.Seeds)
	require.Len(t, a.Maps, 7)
	assert.Equal(t, "seed-to-soil", a.Maps[0].Name())
	assert.Equal(t, []almanac.Row{{Dest: 50, Source: 98, Length: 2}, {Dest: 52, Source: 50, Length: 48}}, a.Maps[0].Rows)
	assert.Equal(t, "humidity", a.Maps[6].From)
	assert.Equal(t, "location", a.Maps[6].To)
}

// TestParse_BlankLinesAreNotStructure accepts maps without blank separators
// and stray blank lines inside a map.
func TestParse_BlankLinesAreNotStructure(t *testing.T) {
	src := "seeds: 1 2\n" +
		"seed-to-soil map:\n" +
		"10 0 5\n" +
		"\n\n" +
		"20 5 5\n" +
		"soil-to-location map:\n" +
		"  0 100 1  \n"
	a, err := almanac.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, a.Maps, 2)
	assert.Len(t, a.Maps[0].Rows, 2)
	assert.Len(t, a.Maps[1].Rows, 1)
}

// TestParse_NoSeeds yields an empty seed list rather than an error.
func TestParse_NoSeeds(t *testing.T) {
	a, err := almanac.Parse(strings.NewReader("seed-to-location map:\n1 2 3\n"))
	require.NoError(t, err)
	assert.Empty(t, a.Seeds)
}

// TestParse_Errors checks each failure class and its line number.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
		line string
	}{
		{"RowBeforeMap", "seeds: 1\n\n1 2 3\n", almanac.ErrSyntax, "line 3"},
		{"DuplicateSeeds", "seeds: 1\nseeds: 2\n", almanac.ErrSyntax, "line 2"},
		{"BadSeed", "seeds: 1 x\n", almanac.ErrSyntax, "line 1"},
		{"NegativeSeed", "seeds: -4\n", almanac.ErrSyntax, "line 1"},
		{"UnknownHeader", "seeds: 1\nfoo:\n", almanac.ErrSyntax, "line 2"},
		{"BadMapName", "seedsoil map:\n", almanac.ErrSyntax, "line 1"},
		{"TextAfterHeader", "seed-to-soil map: 1 2 3\n", almanac.ErrSyntax, "line 1"},
		{"TwoFields", "seed-to-soil map:\n1 2\n", stage.ErrMalformedMapping, "line 2"},
		{"FourFields", "seed-to-soil map:\n1 2 3 4\n", stage.ErrMalformedMapping, "line 2"},
		{"NegativeField", "seed-to-soil map:\n1 -2 3\n", stage.ErrMalformedMapping, "line 2"},
		{"HugeField", "seed-to-soil map:\n1 2 99999999999999999999\n", stage.ErrMalformedMapping, "line 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := almanac.Parse(strings.NewReader(tc.src))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.err), "want %v, got %v", tc.err, err)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

// TestParseFile_Missing wraps the open error.
func TestParseFile_Missing(t *testing.T) {
	_, err := almanac.ParseFile("testdata/does-not-exist.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist")
}

// TestParseFormat maps flag values to Formats.
func TestParseFormat(t *testing.T) {
	for in, want := range map[string]almanac.Format{
		"":     almanac.FormatAuto,
		"auto": almanac.FormatAuto,
		"text": almanac.FormatText,
		"yaml": almanac.FormatYAML,
		"yml":  almanac.FormatYAML,
	} {
		got, err := almanac.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := almanac.ParseFormat("json")
	require.ErrorIs(t, err, almanac.ErrUnknownFormat)
}
