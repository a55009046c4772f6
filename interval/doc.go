// Package interval provides half-open uint64 ranges and sorted, disjoint
// sets of them, the unit of data flowing between translation stages.
//
// What:
//
//   - Interval is a half-open range [Start, End) with End > Start.
//   - Set is an immutable, sorted collection of disjoint Intervals.
//     Construction coalesces overlapping and touching members and drops
//     empty ones, so every Set is in canonical form.
//
// Why:
//
//	Translating billions of individual values one at a time is infeasible.
//	Grouping them into Intervals lets a stage translate a whole contiguous
//	block with two additions, and a Set keeps the blocks in flight ordered
//	so the minimum value is simply the first member's Start.
//
// Domain:
//
//	Values live in [0, MaxUint64). MaxUint64 itself is only ever used as an
//	exclusive bound; Point(MaxUint64) and overflowing lengths are rejected.
//
// Complexity:
//
//   - NewSet:   O(n log n) (sort + single coalescing sweep), Memory: O(n).
//   - Contains: O(log n) binary search.
//   - Min:      O(1).
//
// Errors:
//
//   - ErrEmptyInterval: End <= Start, or zero length.
//   - ErrOverflow:      Start+Length does not fit in uint64.
package interval
