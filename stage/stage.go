package stage

import (
	"cmp"
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/rangeflow/interval"
)

// New constructs a Stage from mappings in any order.
// The input slice is copied, sorted by Source and checked for overlaps.
// Returns ErrMalformedMapping for an invalid Mapping, ErrOverlappingMapping
// if two Mappings intersect, ErrOptionViolation for a bad Option.
// Complexity: O(m log m) time, O(m) memory.
func New(mappings []Mapping, opts ...Option) (*Stage, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	ms := slices.Clone(mappings)
	for i, m := range ms {
		if err := m.validate(); err != nil {
			return nil, fmt.Errorf("mapping %d: %w", i, err)
		}
	}
	slices.SortFunc(ms, func(a, b Mapping) int { return cmp.Compare(a.Source, b.Source) })

	// After sorting, only neighbours can overlap.
	for i := 1; i < len(ms); i++ {
		if ms[i-1].SourceEnd() > ms[i].Source {
			return nil, fmt.Errorf("%w: %v and %v", ErrOverlappingMapping, ms[i-1], ms[i])
		}
	}

	return &Stage{from: o.From, to: o.To, mappings: ms}, nil
}

// FromRows constructs a Stage from (dest, source, length) triples in parse order.
// Errors are wrapped with the offending row index.
func FromRows(rows [][3]uint64, opts ...Option) (*Stage, error) {
	ms := make([]Mapping, 0, len(rows))
	for i, r := range rows {
		m, err := NewMapping(r[0], r[1], r[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		ms = append(ms, m)
	}

	return New(ms, opts...)
}

// From returns the input category label, or "" for an unlabelled Stage.
func (s *Stage) From() string { return s.from }

// To returns the output category label, or "" for an unlabelled Stage.
func (s *Stage) To() string { return s.to }

// Len returns the number of Mappings.
func (s *Stage) Len() int { return len(s.mappings) }

// Mappings returns a copy of the Mappings sorted by Source.
func (s *Stage) Mappings() []Mapping { return slices.Clone(s.mappings) }

// Lookup returns the Mapping whose source range contains v.
// The boolean is false when v falls through to identity.
// Complexity: O(log m).
func (s *Stage) Lookup(v uint64) (Mapping, bool) {
	// last Mapping starting at or before v
	i := sort.Search(len(s.mappings), func(i int) bool { return s.mappings[i].Source > v }) - 1
	if i >= 0 && s.mappings[i].Contains(v) {
		return s.mappings[i], true
	}

	return Mapping{}, false
}

// Translate maps a single value through the Stage.
func (s *Stage) Translate(v uint64) uint64 {
	if m, ok := s.Lookup(v); ok {
		return m.Translate(v)
	}

	return v
}

// Clip partitions iv by the Stage's Mapping boundaries and translates each
// piece. Pieces are returned in ascending Domain order; their Domains cover
// iv exactly once. An empty iv yields no pieces.
//
// Algorithm:
//  1. Binary-search the first Mapping whose source end lies past iv.Start.
//  2. Walk Mappings while they start before iv.End, keeping a cursor c:
//     emit the identity gap [c, M.Source) if any, then the overlap
//     [max(c, M.Source), min(iv.End, M.SourceEnd)) shifted by M's offset.
//  3. Emit the identity tail [c, iv.End) if any.
//
// Complexity: O(log m + k), k = Mappings intersecting iv.
func (s *Stage) Clip(iv interval.Interval) []Piece {
	if iv.IsEmpty() {
		return nil
	}
	ms := s.mappings
	i := sort.Search(len(ms), func(i int) bool { return ms[i].SourceEnd() > iv.Start })

	var pieces []Piece
	c := iv.Start
	for ; i < len(ms) && ms[i].Source < iv.End; i++ {
		m := ms[i]
		if c < m.Source {
			gap := interval.Interval{Start: c, End: m.Source}
			pieces = append(pieces, Piece{Domain: gap, Image: gap})
			c = m.Source
		}
		dom := interval.Interval{Start: c, End: min(iv.End, m.SourceEnd())}
		pieces = append(pieces, Piece{Domain: dom, Image: m.image(dom)})
		c = dom.End
	}
	if c < iv.End {
		tail := interval.Interval{Start: c, End: iv.End}
		pieces = append(pieces, Piece{Domain: tail, Image: tail})
	}

	return pieces
}

// Map returns the translated images of iv's pieces, in Domain order.
func (s *Stage) Map(iv interval.Interval) []interval.Interval {
	pieces := s.Clip(iv)
	out := make([]interval.Interval, len(pieces))
	for i, p := range pieces {
		out[i] = p.Image
	}

	return out
}

// Apply translates every member of set and returns the union of the images
// as a new Set. set itself is left untouched.
func (s *Stage) Apply(set interval.Set) interval.Set {
	var images []interval.Interval
	for _, iv := range set.Intervals() {
		images = append(images, s.Map(iv)...)
	}

	return interval.NewSet(images...)
}

// String formats the Stage as "from-to-to (m mappings)".
func (s *Stage) String() string {
	if s.from == "" {
		return fmt.Sprintf("stage (%d mappings)", len(s.mappings))
	}

	return fmt.Sprintf("%s-to-%s (%d mappings)", s.from, s.to, len(s.mappings))
}
