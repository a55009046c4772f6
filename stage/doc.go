// Package stage implements one step of a range-translation pipeline:
// a table of non-overlapping offset Mappings with identity fallback.
//
// 🚀 What is a Stage?
//
//	A Stage is a piecewise-linear function over uint64. Each Mapping sends
//	[Source, Source+Length) to [Dest, Dest+Length) by a fixed offset; every
//	value outside all Mappings maps to itself. Almanac tables such as
//	"seed-to-soil" or "light-to-temperature" are Stages.
//
// ✨ Key features:
//   - Construction-time validation: zero-length, overflowing and
//     overlapping Mappings are rejected before any translation runs.
//   - Lookup/Translate: O(log m) binary search for a single value.
//   - Clip: exact partition of an interval.Interval into translated pieces,
//     however many Mapping boundaries and gaps it straddles.
//   - Apply: lift Clip over a whole interval.Set.
//
// ⚙️ Usage:
//
//	st, err := stage.FromRows([][3]uint64{
//	  {50, 98, 2},  // dest, source, length
//	  {52, 50, 48},
//	}, stage.WithCategories("seed", "soil"))
//	if err != nil {
//	  // handle ErrMalformedMapping / ErrOverlappingMapping
//	}
//	soil := st.Translate(79) // 81
//	next := st.Apply(seeds)  // interval.Set in, interval.Set out
//
// Complexity:
//
//   - New:       O(m log m)
//   - Translate: O(log m)
//   - Clip:      O(log m + k), k = Mappings intersected
//   - Apply:     O(n (log m + k) + r log r), r = output pieces
//
// Errors:
//
//   - ErrMalformedMapping:   zero length or an end past MaxUint64.
//   - ErrOverlappingMapping: two Mappings share a source value.
//   - ErrOptionViolation:    an invalid Option value.
package stage
