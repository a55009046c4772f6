package interval

import (
	"fmt"
	"math"
	"math/bits"
)

// New returns the Interval [start, end).
// Returns ErrEmptyInterval if end <= start.
func New(start, end uint64) (Interval, error) {
	if end <= start {
		return Interval{}, fmt.Errorf("%w: [%d, %d)", ErrEmptyInterval, start, end)
	}

	return Interval{Start: start, End: end}, nil
}

// FromLength returns the Interval [start, start+length).
// Returns ErrEmptyInterval for length == 0 and ErrOverflow when the end
// cannot be represented.
func FromLength(start, length uint64) (Interval, error) {
	if length == 0 {
		return Interval{}, fmt.Errorf("%w: start %d with zero length", ErrEmptyInterval, start)
	}
	end, carry := bits.Add64(start, length, 0)
	if carry != 0 {
		return Interval{}, fmt.Errorf("%w: start %d length %d", ErrOverflow, start, length)
	}

	return Interval{Start: start, End: end}, nil
}

// Point returns the single-value Interval [v, v+1).
// Returns ErrOverflow for v == MaxUint64.
func Point(v uint64) (Interval, error) {
	if v == math.MaxUint64 {
		return Interval{}, fmt.Errorf("%w: point %d", ErrOverflow, v)
	}

	return Interval{Start: v, End: v + 1}, nil
}

// Len returns the number of values covered by iv.
func (iv Interval) Len() uint64 {
	if iv.End <= iv.Start {
		return 0
	}

	return iv.End - iv.Start
}

// IsEmpty reports whether iv covers no values.
func (iv Interval) IsEmpty() bool {
	return iv.End <= iv.Start
}

// Contains reports whether v lies in [Start, End).
func (iv Interval) Contains(v uint64) bool {
	return v >= iv.Start && v < iv.End
}

// Intersect returns the overlap of iv and other.
// The boolean is false when they share no value.
func (iv Interval) Intersect(other Interval) (Interval, bool) {
	lo := max(iv.Start, other.Start)
	hi := min(iv.End, other.End)
	if hi <= lo {
		return Interval{}, false
	}

	return Interval{Start: lo, End: hi}, true
}

// String formats iv as "[start, end)".
func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d)", iv.Start, iv.End)
}
