// Package lvldag is a minimal embeddable dependency graph for incremental
// and reactive computation — think of a cell in a spreadsheet-like
// recomputation graph, or a node in a build graph.
//
// 🚀 What is lvldag?
//
//	A small, zero-runtime-dependency building block that brings together:
//		• Keyed nodes holding opaque payloads, owned by a single container
//		• Weighted directed edges held as non-owning, identity-based references
//		• A two-phase "mark invalidated, then dispatch" change-propagation sweep
//
// ✨ Why choose lvldag?
//
//   - Sharp ownership model – the Dag is the sole owner of every node; edges
//     never keep a node alive and never silently retarget after a key is reused
//   - Safe traversal – dispatch visits each reachable node at most once per
//     invalidated root, so it terminates even on graphs that are not acyclic
//   - Recoverable errors – dangling references surface as sentinel errors,
//     not process aborts
//   - Pure Go – no cgo, no hidden deps
//
// Everything lives under one subpackage:
//
//	dag/ — the Dag container, Node and Edge types, lifecycle and edge
//	       operations, and the invalidate→traverse→dispatch sweep
//
// Quick ASCII example:
//
//	    A ──▶ B ──▶ C
//
//	Update("A", ...) marks A dirty; Dispatch walks A, B, C and invokes
//	your callback once per node.
//
// Dive into the dag package docs for the full contract, including the
// deliberately preserved asymmetry between AddEdge and EdgeWeight.
//
//	go get github.com/katalvlaran/lvldag/dag
package lvldag
