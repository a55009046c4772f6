// Package rangeflow pushes huge batches of integers through chains of
// piecewise-linear translation tables without enumerating them.
//
// 🚀 What is rangeflow?
//
//	A small, pure-Go library for "almanac" style problems: an ordered list
//	of tables, each shifting disjoint source ranges to destination ranges
//	(identity elsewhere), and a question about the lowest value reachable
//	from billions of starting values.
//
// ✨ Why interval clipping?
//
//   - Exact – every interval is split at table boundaries, so no value is
//     lost, duplicated or mistranslated.
//   - Fast – work grows with the number of table boundaries touched, not
//     with the number of values in flight.
//   - Safe – tables are validated once and immutable afterwards; a Pipeline
//     can be shared by any number of goroutines.
//
// Under the hood, everything is organized under four subpackages:
//
//	interval/  - half-open uint64 Interval and canonical, sorted Set
//	stage/     - Mapping and Stage: lookup, clip and apply one table
//	pipeline/  - ordered Stages, scalar and range resolvers (optional workers)
//	almanac/   - text / YAML almanac readers and the seed→location chain
//
// The almanac command (cmd/almanac) wires them together:
//
//	go run ./cmd/almanac -workers 0 inputs/test1.txt
//	part1: 35, time: 12.5µs
//	part2: 46, time: 31.8µs
package rangeflow
