// Package pipeline chains translation Stages and resolves the minimum value
// reachable from a batch of seeds.
//
// What:
//
//   - Pipeline is an ordered, immutable list of *stage.Stage. Run threads an
//     interval.Set through every Stage; Translate is the scalar fast path.
//   - ResolveScalar takes explicit seed values and returns the smallest
//     final value.
//   - ResolveRanges takes (Start, Length) seed ranges, runs their combined
//     Set through the Pipeline once and returns the smallest Start of the
//     result.
//
// Why the minimum is a member Start:
//
//	Every piece produced by a Stage is the identity or a fixed offset, so it
//	preserves order. The smallest value of any translated piece is therefore
//	its left end, and this composes through every Stage. No value inside an
//	interval ever has to be enumerated.
//
// Ordering:
//
//	Stages labelled with categories (stage.WithCategories) must chain:
//	stage i's To equals stage i+1's From. New rejects a broken chain with
//	ErrStageOrder. Unlabelled Stages are applied in the order given.
//
// Concurrency:
//
//	Stages are read-only after construction and a Pipeline may be shared by
//	any number of goroutines. WithWorkers(n) resolves independent seeds or
//	ranges on up to n goroutines (golang.org/x/sync/errgroup) and reduces
//	with min; no locks are involved since each worker owns its input and
//	writes a single result slot.
//
// Errors:
//
//   - ErrNilPipeline, ErrNilStage:  nil inputs.
//   - ErrStageOrder:                labelled Stages do not chain.
//   - ErrStageIndex:                Apply index out of range.
//   - ErrEmptySeedInput:            nothing to resolve; a "no result" condition.
//   - ErrUnpairedRangeSeeds:        odd number of seeds for range mode.
//   - ErrInvalidRange:              zero-length or overflowing seed range.
//   - ErrOptionViolation:           invalid Option value.
package pipeline
