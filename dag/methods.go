// Package dag: Dag method implementations for node lifecycle and edges.
//
// This file provides the O(1) lifecycle operations (Add, Update, Remove,
// Get), the edge operations (AddEdge, EdgeWeight), and small introspection
// helpers. The invalidate→traverse→dispatch sweep lives in dispatch.go.

package dag

import (
	"fmt"
	"sort"
)

// Add inserts a brand-new node owning data under key, replacing any existing
// node under that key outright. Edges elsewhere that referenced the old node
// now dangle — they do not retarget, because edge references are
// identity-based. Always succeeds.
// Complexity: O(1) amortized.
func (d *Dag) Add(key string, data any) {
	d.nodes[key] = &Node{Key: key, Data: data}
}

// Update replaces the payload of the node under key in place, preserving the
// node's identity and edge list, and marks key invalidated. If key resolves
// to no live node this is a silent no-op.
// Complexity: O(1).
func (d *Dag) Update(key string, data any) {
	node, ok := d.nodes[key]
	if !ok {
		return // absent key: silent no-op
	}
	node.Data = data
	d.invalidated[key] = struct{}{}
}

// Remove deletes the node under key from the owning map and reports whether
// a node was actually present. It does not touch the invalidated set, and it
// does not repair edges elsewhere that pointed at the removed node — those
// edges become dangling.
// Complexity: O(1).
func (d *Dag) Remove(key string) bool {
	_, ok := d.nodes[key]
	if ok {
		delete(d.nodes, key)
	}

	return ok
}

// Get returns the live node under key, or (nil, false) when absent.
// The returned pointer is a non-owning handle: it must not be retained past
// the Dag's decision to remove the node. Invalidation state is unaffected.
// Complexity: O(1).
func (d *Dag) Get(key string) (*Node, bool) {
	node, ok := d.nodes[key]

	return node, ok
}

// AddEdge attaches a new edge onto the node identified by toKey, targeting
// the node identified by fromKey, with DefaultEdgeWeight unless overridden
// via WithEdgeWeight.
//
// Note the direction: the edge lives in toKey's edge list but points at
// fromKey's node. This asymmetry with EdgeWeight is part of the contract.
//
// Returns ErrNodeNotFound (wrapped with the offending key) if either key
// resolves to no live node.
// Complexity: O(1) amortized.
func (d *Dag) AddEdge(toKey, fromKey string, opts ...EdgeOption) error {
	// 1. Resolve both endpoints up front: a miss is a precondition violation.
	toNode, ok := d.nodes[toKey]
	if !ok {
		return fmt.Errorf("dag: AddEdge to %q: %w", toKey, ErrNodeNotFound)
	}
	fromNode, ok := d.nodes[fromKey]
	if !ok {
		return fmt.Errorf("dag: AddEdge from %q: %w", fromKey, ErrNodeNotFound)
	}

	// 2. Construct the edge with the default weight, then apply overrides.
	e := Edge{Weight: DefaultEdgeWeight, target: fromNode}
	for _, opt := range opts {
		opt(&e)
	}

	// 3. Append onto toKey's list; edge lists are append-only.
	toNode.edges = append(toNode.edges, e)

	return nil
}

// EdgeWeight scans the edge list of the node identified by fromKey for an
// edge whose target's key equals toKey and returns its weight, or
// WeightNotFound when no such edge exists.
//
// Given AddEdge's direction, an edge created by AddEdge(toKey, fromKey) is
// stored on toKey's node — so this lookup, which searches fromKey's edges,
// generally does not find it.
//
// Returns ErrNodeNotFound if fromKey resolves to no live node, and
// ErrDanglingEdge if any scanned edge's target no longer resolves.
// Complexity: O(deg(from)).
func (d *Dag) EdgeWeight(toKey, fromKey string) (int64, error) {
	fromNode, ok := d.nodes[fromKey]
	if !ok {
		return WeightNotFound, fmt.Errorf("dag: EdgeWeight from %q: %w", fromKey, ErrNodeNotFound)
	}

	for _, e := range fromNode.edges {
		target, err := d.resolve(e)
		if err != nil {
			return WeightNotFound, err
		}
		if target.Key == toKey {
			return e.Weight, nil
		}
	}

	return WeightNotFound, nil
}

// Len returns the number of live nodes. O(1).
func (d *Dag) Len() int {
	return len(d.nodes)
}

// Has reports whether a live node exists under key. O(1).
func (d *Dag) Has(key string) bool {
	_, ok := d.nodes[key]

	return ok
}

// Keys returns all live node keys in sorted order.
// Complexity: O(V·logV).
func (d *Dag) Keys() []string {
	keys := make([]string, 0, len(d.nodes))
	for k := range d.nodes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// InvalidatedKeys returns a sorted snapshot of the keys currently marked
// invalidated. Keys are guaranteed to have been live when Update marked
// them, not to still be live now.
// Complexity: O(R·logR).
func (d *Dag) InvalidatedKeys() []string {
	keys := make([]string, 0, len(d.invalidated))
	for k := range d.invalidated {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// resolve upgrades an edge's non-owning target reference to the live node.
// Resolution is identity-based: it succeeds only while the nodes map still
// holds the exact node the edge was created against, so a later Add under a
// reused key never satisfies an old edge.
func (d *Dag) resolve(e Edge) (*Node, error) {
	if live, ok := d.nodes[e.target.Key]; ok && live == e.target {
		return e.target, nil
	}

	return nil, fmt.Errorf("dag: edge target %q: %w", e.target.Key, ErrDanglingEdge)
}
