// Package linebridge is a 2D continuum-percolation simulator: random line
// segments are dropped onto a canvas until a connected chain of them
// bridges two opposite sides of a target region.
//
// 🚀 What is line-bridge-simulator?
//
//	A small, composable simulation toolkit built from focused packages:
//		• geometry/ — exact segment-intersection predicates & primitives
//		• dsu/      — slice-backed disjoint-set union (path compression + union by size)
//		• boundary/ — wall/corner touch classification for the three bridge modes
//		• sampler/  — rejection-free random segment placement via angle intervals
//		• engine/   — the incremental simulation core: insert, cluster, detect, trace
//		• stats/    — parallel multi-trial batches with reproducible seeding
//		• render/   — SVG snapshots of a simulation frame
//
// ✨ Why this layout?
//
//   - Each concern is test-isolated – the engine is the only package that
//     composes the others
//   - Deterministic by injection – pass your own *rand.Rand to replay a run
//   - Engine instances share nothing, so batches parallelize trivially
//
// Two binaries sit on top:
//
//	cmd/linebridge — headless runs and statistics batches, SVG output
//	cmd/server     — the live viewer: embedded canvas page + websocket stream
//
// Quick ASCII example (left-to-right mode):
//
//	│ \            /│
//	│  \──────\   / │
//	│          \ /  │
//	│           ×───│   ← the chain touching both walls is the bridge
//
// Dive into the per-package doc.go files for algorithms, complexity and
// error contracts.
package linebridge
