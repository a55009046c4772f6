// Package pipeline defines Pipeline, resolver options and sentinel errors.
package pipeline

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/rangeflow/interval"
	"github.com/katalvlaran/rangeflow/stage"
)

// Sentinel errors for pipeline construction and resolution.
var (
	// ErrNilPipeline is returned when a resolver receives a nil *Pipeline.
	ErrNilPipeline = errors.New("pipeline: pipeline is nil")

	// ErrNilStage is returned when New receives a nil *stage.Stage.
	ErrNilStage = errors.New("pipeline: stage is nil")

	// ErrStageOrder is returned when labelled Stages do not form a chain.
	ErrStageOrder = errors.New("pipeline: stages out of order")

	// ErrStageIndex is returned by Apply for an index outside [0, Len()).
	ErrStageIndex = errors.New("pipeline: stage index out of range")

	// ErrEmptySeedInput signals that there is nothing to resolve.
	// Callers should report "no result" rather than treat it as fatal.
	ErrEmptySeedInput = errors.New("pipeline: no seeds to resolve")

	// ErrUnpairedRangeSeeds is returned when range mode receives an odd
	// number of seed values.
	ErrUnpairedRangeSeeds = errors.New("pipeline: range seeds must come in (start, length) pairs")

	// ErrInvalidRange is returned for a zero-length or overflowing seed range.
	ErrInvalidRange = errors.New("pipeline: invalid seed range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pipeline: invalid option supplied")
)

// Pipeline is an immutable, ordered list of Stages.
type Pipeline struct {
	stages []*stage.Stage
}

// SeedRange is the range [Start, Start+Length) of initial values.
type SeedRange struct {
	Start  uint64
	Length uint64
}

// StageHook observes the Set produced by the Stage at index i.
type StageHook func(i int, st *stage.Stage, out interval.Set)

// Option configures the resolvers via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds resolver parameters.
type Options struct {
	// Workers bounds the goroutines used to resolve independent seeds or
	// ranges. 1 resolves sequentially (ranges as one combined Set).
	Workers int

	// OnStage is called after every stage application in range mode.
	// With Workers > 1 it may be called concurrently.
	OnStage StageHook

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Workers = 1 (sequential, no goroutines)
//   - no-op OnStage hook
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		OnStage: func(int, *stage.Stage, interval.Set) {},
	}
}

// WithWorkers sets the worker bound.
//
//	n > 0: at most n goroutines
//	n == 0: one per logical CPU (runtime.GOMAXPROCS)
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}

// WithOnStage registers a hook run after each stage application.
func WithOnStage(fn StageHook) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStage = fn
		}
	}
}

// resolveOptions applies opts over the defaults.
func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
