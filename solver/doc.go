// Package solver implements the generic Wave Function Collapse constraint
// engine: a grid of per-cell pattern-possibility sets collapsed to a single
// consistent assignment through observe/ban/propagate cycles.
//
// What:
//
//   - Solver owns the wave (one boolean possibility set per cell over the
//     pattern id space) plus the incremental bookkeeping that makes the
//     algorithm fast: cached possibility counts, running weight sums for
//     O(1) entropy recomputation, and per-(cell,pattern,direction) support
//     counters driving the propagation cascade.
//   - Ban removes one pattern possibility from one cell and enqueues it.
//   - Propagate drains the queue to a fixpoint, cascading removals whenever
//     a neighbor's remaining-support count for some pattern hits zero.
//   - Observe picks the next undecided cell (minimum positional entropy, or
//     scan order) and collapses it to one pattern sampled by weight.
//   - Run wires the loop together: Reset → repeat Observe+Propagate until
//     every cell is decided or a contradiction surfaces.
//
// The solver knows nothing about images or pattern content. It is
// parameterized by a weight table and a per-direction compatibility table
// (see Options), plus an optional pre-solve hook for extra constraints such
// as the overlapping model's ground bias. The grid topology is fixed: four
// cardinal directions, optionally toric.
//
// Why:
//
//   - Texture synthesis: the overlapping package drives this engine.
//   - Tile-map generation: any adjacency model expressible as
//     per-direction pattern compatibility lists fits directly.
//
// Complexity:
//
//   - Ban:       O(1) amortized (plus enqueued work).
//   - Propagate: O(total removals × avg compatibility degree); every
//     (cell, pattern) pair is removed at most once per solve.
//   - Observe:   O(cells) for the entropy scan, O(P) for the weighted draw.
//   - A full solve performs at most Width×Height observe cycles.
//
// Determinism: all randomness flows through the injected *rand.Rand; the
// same seed yields an identical collapse order and identical outcome.
// A Solver must not be shared across goroutines; run independent attempts
// on independent Solver instances instead.
//
// Errors:
//
//   - ErrBadDimensions, ErrNoPatterns, ErrBadWeights, ErrBadPropagator:
//     Options validation failures in New.
//   - ErrContradiction: a cell's possibility set became empty; retry with
//     fresh randomness.
//   - ErrStepLimit: Run exhausted its observation budget before finishing.
package solver
