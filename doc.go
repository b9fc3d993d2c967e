// Package wfc is a Wave Function Collapse toolkit — synthesize new raster
// images that locally resemble a small example image by treating generation
// as a constraint-propagation problem over overlapping NxN tiles.
//
// 🚀 What is wfc?
//
//	A small, deterministic, pure-Go implementation of the overlapping
//	Wave Function Collapse algorithm, organized into focused subpackages:
//		• raster/      — packed-RGB images, color-table indexing, stdlib image bridges
//		• solver/      — the generic observe/ban/propagate constraint engine
//		• overlapping/ — pattern extraction, propagator construction, rendering
//		• cmd/wfc      — a CLI that drives the whole pipeline on image files
//
// ✨ Why choose wfc?
//
//   - Deterministic – inject a *rand.Rand; same seed ⇒ same output, always
//   - Inspectable – contradictions are reported, never hidden; degraded
//     renders are flagged, not silently produced
//   - Minimal API – build a Model once, Generate as many times as you like
//   - Concurrent-friendly – a Model is immutable after construction and may
//     be shared by parallel Generate attempts, each with its own RNG stream
//
// Quick sketch of the pipeline:
//
//	sample ──▶ color table ──▶ patterns+weights ──▶ propagator
//	                                                    │
//	    output image ◀── renderer ◀── solved wave (observe/propagate)
//
// Dive into each subpackage's doc.go for contracts, complexity notes and
// worked examples.
//
//	go get github.com/katalvlaran/wfc
package wfc
