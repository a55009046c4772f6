package pipeline_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rangeflow/pipeline"
	"github.com/katalvlaran/rangeflow/stage"
)

// canonicalSeeds is the seed line of the canonical almanac.
var canonicalSeeds = []uint64{79, 14, 55, 13}

// canonicalTables lists the canonical almanac maps in chain order.
var canonicalTables = []struct {
	from, to string
	rows     [][3]uint64
}{
	{"seed", "soil", [][3]uint64{{50, 98, 2}, {52, 50, 48}}},
	{"soil", "fertilizer", [][3]uint64{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}}},
	{"fertilizer", "water", [][3]uint64{{49, 53, 8}, {0, 11, 42}, {42, 0, 7}, {57, 7, 4}}},
	{"water", "light", [][3]uint64{{88, 18, 7}, {18, 25, 70}}},
	{"light", "temperature", [][3]uint64{{45, 77, 23}, {81, 45, 19}, {68, 64, 13}}},
	{"temperature", "humidity", [][3]uint64{{0, 69, 1}, {1, 0, 69}}},
	{"humidity", "location", [][3]uint64{{60, 56, 37}, {56, 93, 4}}},
}

// canonicalStages builds the labelled Stages of the canonical almanac.
func canonicalStages(t testing.TB) []*stage.Stage {
	t.Helper()
	stages := make([]*stage.Stage, 0, len(canonicalTables))
	for _, tb := range canonicalTables {
		st, err := stage.FromRows(tb.rows, stage.WithCategories(tb.from, tb.to))
		require.NoError(t, err)
		stages = append(stages, st)
	}

	return stages
}

// canonicalPipeline builds the canonical seed→location Pipeline.
func canonicalPipeline(t testing.TB) *pipeline.Pipeline {
	t.Helper()
	p, err := pipeline.New(canonicalStages(t)...)
	require.NoError(t, err)

	return p
}

// randomPipeline builds depth unlabelled Stages with up to 6 disjoint
// Mappings each, all inside [0, limit).
func randomPipeline(t testing.TB, rng *rand.Rand, depth int, limit int64) *pipeline.Pipeline {
	t.Helper()
	stages := make([]*stage.Stage, 0, depth)
	for d := 0; d < depth; d++ {
		n := 1 + rng.Intn(6)
		step := limit / int64(2*n+1)
		var ms []stage.Mapping
		cursor := int64(0)
		for i := 0; i < n; i++ {
			cursor += rng.Int63n(step)
			length := 1 + rng.Int63n(step)
			ms = append(ms, stage.Mapping{
				Source: uint64(cursor),
				Dest:   uint64(rng.Int63n(limit)),
				Length: uint64(length),
			})
			cursor += length
		}
		st, err := stage.New(ms)
		require.NoError(t, err)
		stages = append(stages, st)
	}
	p, err := pipeline.New(stages...)
	require.NoError(t, err)

	return p
}
