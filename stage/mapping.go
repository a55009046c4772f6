package stage

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/rangeflow/interval"
)

// NewMapping builds a Mapping from a (dest, source, length) triple, the
// order in which almanac rows list them.
// Returns ErrMalformedMapping if length is zero or either end overflows.
func NewMapping(dest, source, length uint64) (Mapping, error) {
	m := Mapping{Source: source, Dest: dest, Length: length}
	if err := m.validate(); err != nil {
		return Mapping{}, err
	}

	return m, nil
}

// validate checks the Mapping invariants. Called again by New so that
// Mapping literals built without NewMapping are held to the same rules.
func (m Mapping) validate() error {
	if m.Length == 0 {
		return fmt.Errorf("%w: zero length (dest=%d, source=%d)", ErrMalformedMapping, m.Dest, m.Source)
	}
	if _, carry := bits.Add64(m.Source, m.Length, 0); carry != 0 {
		return fmt.Errorf("%w: source end overflows (source=%d, length=%d)", ErrMalformedMapping, m.Source, m.Length)
	}
	if _, carry := bits.Add64(m.Dest, m.Length, 0); carry != 0 {
		return fmt.Errorf("%w: dest end overflows (dest=%d, length=%d)", ErrMalformedMapping, m.Dest, m.Length)
	}

	return nil
}

// SourceEnd returns the exclusive end of the source range.
func (m Mapping) SourceEnd() uint64 {
	return m.Source + m.Length
}

// Domain returns the source range as an Interval.
func (m Mapping) Domain() interval.Interval {
	return interval.Interval{Start: m.Source, End: m.SourceEnd()}
}

// Contains reports whether v lies in the source range.
func (m Mapping) Contains(v uint64) bool {
	return v >= m.Source && v < m.SourceEnd()
}

// Translate maps v, which must lie in the source range, to its destination.
func (m Mapping) Translate(v uint64) uint64 {
	return m.Dest + (v - m.Source)
}

// image shifts dom, a sub-range of the source range, into the destination range.
func (m Mapping) image(dom interval.Interval) interval.Interval {
	return interval.Interval{Start: m.Translate(dom.Start), End: m.Dest + (dom.End - m.Source)}
}

// String formats m as "[source, end) -> dest".
func (m Mapping) String() string {
	return fmt.Sprintf("[%d, %d) -> %d", m.Source, m.SourceEnd(), m.Dest)
}
