// Package almanac reads seed almanacs and turns them into a
// pipeline.Pipeline running from "seed" to "location".
//
// Input text:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Structure comes from the headers only; blank lines are separators and may
// appear anywhere.
//
// What:
//
//   - Parse / ParseFile read the plain-text form above.
//   - LoadYAML / MarshalYAML read and write the same data as a YAML document:
//     {seeds: [...], maps: [{from, to, rows: [[dest, source, length]]}]}.
//   - LoadFile picks the reader by Format or file extension.
//   - (*Almanac).Pipeline follows map categories from SourceCategory to
//     TargetCategory, whatever order the maps were listed in, and builds one
//     labelled Stage per map.
//
// Errors:
//
//   - ErrSyntax:                 unreadable text, with line number.
//   - stage.ErrMalformedMapping: a row is not three non-negative integers
//     (text and YAML), or describes an invalid Mapping.
//   - stage.ErrOverlappingMapping: two rows of one map overlap.
//   - ErrBrokenChain:            maps do not lead from seed to location.
//   - ErrUnknownFormat:          LoadFile cannot tell the file format.
package almanac
