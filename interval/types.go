package interval

import "errors"

// Sentinel errors for interval construction.
var (
	// ErrEmptyInterval indicates a range with no values (End <= Start).
	ErrEmptyInterval = errors.New("interval: interval must contain at least one value")

	// ErrOverflow indicates Start+Length exceeds the uint64 domain.
	ErrOverflow = errors.New("interval: range end overflows uint64")
)

// Interval is the half-open range [Start, End).
// Every Interval produced by this package satisfies End > Start.
type Interval struct {
	Start uint64
	End   uint64
}

// Set is a sorted collection of disjoint, non-touching Intervals.
// The zero value is the empty set. A Set is never mutated after construction;
// all methods return fresh values.
type Set struct {
	ivs []Interval
}
