// Package dag: central Dag, Node, and Edge types.
//
// This file declares the container and its value types, sentinel errors,
// the EdgeOption configuration hook, and the New constructor.
//
// Ownership model: the Dag's nodes map holds the only strong references.
// Edge targets and pointers handed out by Get are non-owning; their
// validity ends the moment the Dag removes (or replaces) the node.

package dag

import (
	"errors"
	"fmt"
)

// Sentinel errors for dag operations.
var (
	// ErrNodeNotFound indicates an operation referenced a key with no live node.
	ErrNodeNotFound = errors.New("dag: node not found")

	// ErrDanglingEdge indicates an edge target that no longer resolves:
	// the node it was created against has been removed or replaced.
	ErrDanglingEdge = errors.New("dag: dangling edge target")
)

const (
	// DefaultEdgeWeight is the weight assigned by AddEdge when no
	// WithEdgeWeight option is given.
	DefaultEdgeWeight int64 = 1

	// WeightNotFound is the soft-miss sentinel returned by EdgeWeight when
	// the scanned node has no edge targeting the requested key. It is not
	// distinguishable from a legitimately stored weight of -1.
	WeightNotFound int64 = -1
)

// Node is a keyed payload container with an ordered list of outgoing edges.
//
// Key uniquely identifies the node within its Dag. Data is opaque: the Dag
// stores and replaces it but never inspects it beyond its %v debug form.
// Node identity is pointer identity — Update preserves it, Add does not.
type Node struct {
	// Key is the unique identifier for this node within its Dag.
	Key string

	// Data is the opaque payload. Replaced wholesale by Update.
	Data any

	// edges is append-only, insertion order preserved, no dedup.
	edges []Edge
}

// String renders the node in key=payload debug form.
func (n *Node) String() string {
	return fmt.Sprintf("%s=%v", n.Key, n.Data)
}

// Edges returns a copy of the node's outgoing edge list, in insertion order.
// The copy keeps the list append-only from the caller's point of view.
func (n *Node) Edges() []Edge {
	out := make([]Edge, len(n.edges))
	copy(out, n.edges)

	return out
}

// Edge is a weighted, non-owning reference from one node to another.
//
// The target reference is identity-based: it was captured against a specific
// node at creation time and resolves only while the Dag still maps that key
// to that exact node. It never keeps the target alive and never retargets to
// a later node reusing the key.
type Edge struct {
	// Weight is the integer attached to the edge. Defaults to DefaultEdgeWeight.
	Weight int64

	// target is the node this edge pointed at when it was created.
	target *Node
}

// TargetKey returns the key of the node this edge was created against.
// The key alone does not imply the node is still live; see Dag resolution.
func (e Edge) TargetKey() string {
	return e.target.Key
}

// EdgeOption configures properties of an individual edge when added.
type EdgeOption func(*Edge)

// WithEdgeWeight overrides the default weight for this edge.
func WithEdgeWeight(w int64) EdgeOption {
	return func(e *Edge) { e.Weight = w }
}

// Dag is the in-memory dependency graph container.
//
// It is the sole strong owner of every node: a node's lifetime ends exactly
// when it leaves the nodes map. The invalidated set holds keys whose payload
// changed (via Update) since the last successful Dispatch.
//
// Dag is not safe for concurrent use; callers sharing one across goroutines
// must synchronize externally.
type Dag struct {
	// nodes maps key → strongly-owned node.
	nodes map[string]*Node

	// invalidated is the set of keys marked dirty by Update.
	invalidated map[string]struct{}
}

// New creates an empty Dag.
// Complexity: O(1)
func New() *Dag {
	return &Dag{
		nodes:       make(map[string]*Node),
		invalidated: make(map[string]struct{}),
	}
}
