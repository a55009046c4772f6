package interval

import (
	"cmp"
	"slices"
	"sort"
	"strings"
)

// NewSet builds a canonical Set from arbitrary Intervals.
// Empty intervals are dropped; overlapping or touching intervals are merged.
// The input slice is not modified.
//
// Complexity: O(n log n) time, O(n) memory.
func NewSet(ivs ...Interval) Set {
	buf := make([]Interval, 0, len(ivs))
	for _, iv := range ivs {
		if !iv.IsEmpty() {
			buf = append(buf, iv)
		}
	}
	if len(buf) == 0 {
		return Set{}
	}
	slices.SortFunc(buf, func(a, b Interval) int { return cmp.Compare(a.Start, b.Start) })

	// Single sweep: extend the last kept interval while the next one touches it.
	out := buf[:1]
	for _, iv := range buf[1:] {
		last := &out[len(out)-1]
		if iv.Start <= last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		out = append(out, iv)
	}

	return Set{ivs: slices.Clip(out)}
}

// Intervals returns a copy of the members in ascending order.
func (s Set) Intervals() []Interval {
	return slices.Clone(s.ivs)
}

// Len returns the number of member intervals.
func (s Set) Len() int {
	return len(s.ivs)
}

// IsEmpty reports whether s covers no values.
func (s Set) IsEmpty() bool {
	return len(s.ivs) == 0
}

// Size returns the total number of values covered by s.
// Members are disjoint subsets of [0, MaxUint64), so the sum cannot overflow.
func (s Set) Size() uint64 {
	var total uint64
	for _, iv := range s.ivs {
		total += iv.Len()
	}

	return total
}

// Contains reports whether v is covered by some member.
// Complexity: O(log n).
func (s Set) Contains(v uint64) bool {
	// first member ending after v
	i := sort.Search(len(s.ivs), func(i int) bool { return s.ivs[i].End > v })

	return i < len(s.ivs) && s.ivs[i].Start <= v
}

// Min returns the smallest covered value.
// The boolean is false for the empty set.
func (s Set) Min() (uint64, bool) {
	if len(s.ivs) == 0 {
		return 0, false
	}

	return s.ivs[0].Start, true
}

// Union returns the set of values covered by s or other.
func (s Set) Union(other Set) Set {
	all := make([]Interval, 0, len(s.ivs)+len(other.ivs))
	all = append(all, s.ivs...)
	all = append(all, other.ivs...)

	return NewSet(all...)
}

// Equal reports whether s and other cover exactly the same values.
// Both sets are canonical, so member-wise comparison suffices.
func (s Set) Equal(other Set) bool {
	return slices.Equal(s.ivs, other.ivs)
}

// String formats s as "{[a, b) [c, d)}".
func (s Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, iv := range s.ivs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(iv.String())
	}
	sb.WriteByte('}')

	return sb.String()
}
