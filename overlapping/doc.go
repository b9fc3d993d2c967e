// Package overlapping implements the overlapping variant of Wave Function
// Collapse: it synthesizes a new image that locally resembles a small sample
// image, by extracting every NxN window of the sample as a weighted pattern
// and solving the output grid with the generic solver engine.
//
// What:
//
//   - NewModel scans the sample once: color-table indexing, NxN window
//     extraction (toric when PeriodicInput), dihedral symmetry expansion,
//     value deduplication with occurrence weights, and the brute-force
//     per-direction pattern compatibility table (the propagator).
//   - Model.Generate / Model.GenerateWithRNG run one solve attempt on a
//     fresh wave and render the result; retry with a new seed on
//     contradiction.
//   - The optional ground constraint biases generation by pinning the
//     highest-id pattern to the bottom row before the first observation.
//
// Why:
//
//   - Texture synthesis: grow a large tileable texture from a tiny sample.
//   - Level sketching: samples drawn by hand become endless variations.
//
// Complexity:
//
//   - NewModel: O(W×H×symmetry×N²) extraction + O(P²×N²×4) propagator.
//   - Generate: at most waveW×waveH observe/propagate cycles; each
//     (cell, pattern) pair is removed at most once.
//
// A Model is immutable after NewModel and may be shared by concurrent
// Generate calls, each with its own RNG stream (solver.DeriveRNG).
//
// Errors:
//
//   - ErrBadPatternSize, ErrBadSymmetry, ErrBadOutputSize: invalid Options.
//   - ErrNoPatterns: degenerate sample, nothing to extract.
//   - ErrGroundContradiction: the ground constraint is incompatible with the
//     extracted pattern set — a configuration error, not retryable.
//   - solver.ErrContradiction (wrapped): the attempt failed; the returned
//     Result still holds a degraded render flagged Suspect.
package overlapping
