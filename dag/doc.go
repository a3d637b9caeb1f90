// Package dag implements a keyed dependency graph with a two-phase
// "mark invalidated, then dispatch" change-propagation mechanism.
//
// What:
//
//   - Dag: the container. Sole strong owner of every Node, indexed by key,
//     plus the set of keys marked invalidated since the last dispatch.
//   - Node: a keyed, opaque payload with an ordered, append-only list of
//     outgoing edges. Node identity is pointer identity.
//   - Edge: a weighted, non-owning reference to another node. The reference
//     is identity-based: it resolves only while the container still maps the
//     target's key to the exact node the edge was created against. Removing
//     the target — or replacing it via Add under the same key — leaves the
//     edge dangling; it never retargets.
//   - Dispatch: for every invalidated key, a pre-order depth-first walk over
//     outgoing edges, invoking a caller-supplied callback once per node newly
//     reached from that root, then clearing the invalidated set.
//
// Why:
//   - Incremental recomputation: mark the cells whose inputs changed, then
//     sweep their dependents once, in one place
//   - Build-graph style invalidation without dragging in scheduling or
//     topological machinery
//   - A sharp, small ownership exercise: many edges may reference a node, but
//     only the Dag keeps it alive
//
// Key Types:
//
//   - Dag, Node, Edge
//   - EdgeOption: per-edge configuration for AddEdge (WithEdgeWeight)
//   - Option: dispatch configuration (WithContext, WithLogger)
//   - DispatchResult: diagnostics for one sweep (roots, visits, skips)
//
// Direction note:
//
//	AddEdge(toKey, fromKey) stores the edge on toKey's node, pointing at
//	fromKey's node, while EdgeWeight(toKey, fromKey) searches fromKey's edge
//	list for a target keyed toKey. An edge is therefore generally not found
//	by the lookup that mirrors its creation call. This asymmetry is part of
//	the contract and is preserved deliberately; see the package tests that
//	pin it down.
//
// Complexity:
//
//   - Add / Update / Remove / Get: O(1)
//   - AddEdge: O(1); EdgeWeight: O(deg(from))
//   - Dispatch: O(R · (V + E)) worst case, R invalidated roots — visited
//     sets are per-root, not shared
//
// Errors:
//
//   - ErrNodeNotFound     - AddEdge or EdgeWeight referenced a missing key.
//   - ErrDanglingEdge     - an edge target no longer resolves (removed or
//     replaced node) during EdgeWeight or Dispatch.
//   - context cancellation surfaces as ctx.Err() from Dispatch.
//
// Concurrency: none. Every operation runs to completion on the caller's
// goroutine with no internal locking; embedders sharing a Dag across
// goroutines must synchronize externally.
package dag
