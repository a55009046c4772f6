// Package stage defines Mapping, Stage, options and sentinel errors.
package stage

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rangeflow/interval"
)

// Sentinel errors for Stage construction.
var (
	// ErrMalformedMapping is returned for a zero-length Mapping, one whose
	// source or destination end overflows uint64, or a row that does not
	// describe exactly three non-negative integers.
	ErrMalformedMapping = errors.New("stage: malformed mapping")

	// ErrOverlappingMapping is returned when two Mappings of one Stage share
	// at least one source value.
	ErrOverlappingMapping = errors.New("stage: mappings overlap in source domain")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("stage: invalid option supplied")
)

// Mapping translates [Source, Source+Length) to [Dest, Dest+Length).
// Build it with NewMapping; a Mapping is a plain value and never changes.
type Mapping struct {
	Source uint64
	Dest   uint64
	Length uint64
}

// Piece is one translated fragment produced by Stage.Clip.
// Domain is the covered slice of the input; Image is where it lands.
// Both have the same length.
type Piece struct {
	Domain interval.Interval
	Image  interval.Interval
}

// Option configures Stage construction via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds descriptive metadata attached to a Stage.
type Options struct {
	// From names the category consumed by the Stage (e.g. "seed").
	From string

	// To names the category produced by the Stage (e.g. "soil").
	To string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options for an unlabelled Stage.
func DefaultOptions() Options {
	return Options{}
}

// WithCategories labels the Stage as translating from → to.
// Both names must be non-empty; a pipeline uses them to verify stage order.
func WithCategories(from, to string) Option {
	return func(o *Options) {
		if from == "" || to == "" {
			o.err = fmt.Errorf("%w: categories must be non-empty (from=%q, to=%q)", ErrOptionViolation, from, to)

			return
		}
		o.From, o.To = from, to
	}
}

// Stage is an immutable translation table: Mappings sorted by Source,
// pairwise disjoint, identity everywhere else.
type Stage struct {
	from, to string
	mappings []Mapping
}
