package pipeline

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rangeflow/interval"
)

// ResolveScalar translates every seed through p and returns the smallest
// result.
//
// Returns ErrNilPipeline, ErrEmptySeedInput for no seeds, or
// ErrOptionViolation for a bad Option.
// Complexity: O(s · Σ log m_i) for s seeds.
func ResolveScalar(seeds []uint64, p *Pipeline, opts ...Option) (uint64, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return 0, err
	}
	if p == nil {
		return 0, ErrNilPipeline
	}
	if len(seeds) == 0 {
		return 0, ErrEmptySeedInput
	}

	return minOver(seeds, o.Workers, func(seed uint64) uint64 {
		return p.Translate(seed)
	}), nil
}

// ResolveRanges pushes every seed range through p and returns the smallest
// value reachable.
//
// Steps:
//  1. Validate options and inputs; build [Start, Start+Length) per range.
//  2. Workers == 1: run the combined Set once and take its Min.
//     Workers > 1: run each range on its own goroutine and reduce with min.
//
// Returns ErrNilPipeline, ErrEmptySeedInput for no ranges, ErrInvalidRange
// for a zero-length or overflowing range, or ErrOptionViolation.
func ResolveRanges(ranges []SeedRange, p *Pipeline, opts ...Option) (uint64, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return 0, err
	}
	if p == nil {
		return 0, ErrNilPipeline
	}
	if len(ranges) == 0 {
		return 0, ErrEmptySeedInput
	}

	ivs := make([]interval.Interval, len(ranges))
	for i, r := range ranges {
		iv, err := interval.FromLength(r.Start, r.Length)
		if err != nil {
			return 0, fmt.Errorf("%w: range %d: %w", ErrInvalidRange, i, err)
		}
		ivs[i] = iv
	}

	lowest := func(set interval.Set) uint64 {
		// Every piece has a non-empty image, so the output is never empty.
		m, _ := p.run(set, o.OnStage).Min()

		return m
	}
	if o.Workers <= 1 {
		return lowest(interval.NewSet(ivs...)), nil
	}

	return minOver(ivs, o.Workers, func(iv interval.Interval) uint64 {
		return lowest(interval.NewSet(iv))
	}), nil
}

// ResolveSeedPairs reads seeds two at a time as (start, length) pairs and
// resolves them with ResolveRanges.
func ResolveSeedPairs(seeds []uint64, p *Pipeline, opts ...Option) (uint64, error) {
	ranges, err := PairSeeds(seeds)
	if err != nil {
		return 0, err
	}

	return ResolveRanges(ranges, p, opts...)
}

// PairSeeds reinterprets a flat seed list as (start, length) pairs.
// Returns ErrEmptySeedInput for no seeds and ErrUnpairedRangeSeeds for an
// odd count.
func PairSeeds(seeds []uint64) ([]SeedRange, error) {
	if len(seeds) == 0 {
		return nil, ErrEmptySeedInput
	}
	if len(seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d values", ErrUnpairedRangeSeeds, len(seeds))
	}
	ranges := make([]SeedRange, 0, len(seeds)/2)
	for i := 0; i < len(seeds); i += 2 {
		ranges = append(ranges, SeedRange{Start: seeds[i], Length: seeds[i+1]})
	}

	return ranges, nil
}

// minOver evaluates fn on every item and returns the smallest result.
// With workers > 1 items are evaluated on an errgroup bounded by workers;
// each goroutine writes only its own slot of results.
// items must be non-empty.
func minOver[T any](items []T, workers int, fn func(T) uint64) uint64 {
	results := make([]uint64, len(items))
	if workers <= 1 {
		for i, it := range items {
			results[i] = fn(it)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(workers)
		for i, it := range items {
			i, it := i, it
			g.Go(func() error {
				results[i] = fn(it)

				return nil
			})
		}
		_ = g.Wait() // workers never fail
	}

	best := uint64(math.MaxUint64)
	for _, r := range results {
		best = min(best, r)
	}

	return best
}
