// Package dag: the invalidate→traverse→dispatch propagation sweep.
//
// Dispatch walks the reachable subgraph of every invalidated root, pre-order
// and depth-first, invoking the caller's callback once per node newly reached
// from that root, then clears the invalidated set. The walk uses an explicit
// stack rather than recursion, so deep or accidentally cyclic graphs cannot
// exhaust the call stack; a per-root visited set guarantees termination.

package dag

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Option configures optional behavior of a Dispatch sweep.
// Use with Dispatch(fn, opts...).
type Option func(*DispatchOptions)

// DispatchOptions holds configurable parameters for one Dispatch sweep.
type DispatchOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the sweep with ctx.Err().
	Ctx context.Context

	// Logger receives the incidental progress notice emitted before the
	// sweep. Defaults to a discarding logger, keeping the library silent.
	Logger *slog.Logger
}

// DefaultOptions returns a DispatchOptions struct with:
//   - Background context
//   - A discarding logger
func DefaultOptions() DispatchOptions {
	return DispatchOptions{
		Ctx:    context.Background(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext returns an Option that sets the Context for the sweep.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DispatchOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger returns an Option that directs the progress notice to lg.
// Passing a nil logger has no effect (the discarding default is retained).
func WithLogger(lg *slog.Logger) Option {
	return func(o *DispatchOptions) {
		if lg != nil {
			o.Logger = lg
		}
	}
}

// DispatchResult captures diagnostics for one Dispatch sweep.
type DispatchResult struct {
	// Roots counts invalidated keys that still resolved to a live node and
	// were walked.
	Roots int

	// Visited counts callback invocations across all roots. A node reachable
	// from two roots is counted (and called back) once per root.
	Visited int

	// SkippedRoots counts invalidated keys whose node was removed between
	// Update and Dispatch; these are skipped, not errors.
	SkippedRoots int
}

// dispatchWalker encapsulates state during one sweep.
type dispatchWalker struct {
	dag  *Dag
	opts DispatchOptions
	fn   func(*Node)
	res  *DispatchResult
}

// Dispatch performs the propagation sweep: for each key currently marked
// invalidated (in map iteration order), it resolves the key — skipping roots
// whose node was removed since being marked — and walks every node reachable
// from it over outgoing edges, invoking fn exactly once per node newly
// reached from that root. Visited sets are per-root, so a node reachable
// from several invalidated roots receives one callback per root.
//
// On full success the invalidated set is cleared. On error — a dangling edge
// target (ErrDanglingEdge) or context cancellation — the sweep stops and the
// invalidated set is left intact, so the caller can repair the graph and
// dispatch again. A nil fn walks and clears without calling anything.
//
// Complexity: O(R·(V+E)) worst case, for R invalidated roots.
func (d *Dag) Dispatch(fn func(*Node), opts ...Option) (*DispatchResult, error) {
	// 1. Apply options.
	dopts := DefaultOptions()
	for _, opt := range opts {
		opt(&dopts)
	}

	// 2. Incidental progress notice; not part of the contract.
	dopts.Logger.Info("dag: dispatching", slog.Int("invalidated", len(d.invalidated)))

	res := &DispatchResult{}
	walker := &dispatchWalker{dag: d, opts: dopts, fn: fn, res: res}

	// 3. Sweep every invalidated root.
	for key := range d.invalidated {
		root, ok := d.nodes[key]
		if !ok {
			// Marked dirty, then removed: skip silently.
			res.SkippedRoots++
			continue
		}
		res.Roots++
		if err := walker.walk(root); err != nil {
			return res, err
		}
	}

	// 4. Only a complete sweep clears dirtiness.
	clear(d.invalidated)

	return res, nil
}

// walk visits every node reachable from root, pre-order and depth-first,
// with a visited set scoped to this root. The explicit stack replaces
// recursion; edges are pushed in reverse so insertion order is explored
// first-to-last, matching the recursive formulation.
func (w *dispatchWalker) walk(root *Node) error {
	visited := make(map[string]struct{})
	stack := []*Node{root}

	var node *Node
	for len(stack) > 0 {
		// 1. Cancellation check once per pop.
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		// 2. Pop.
		node = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// 3. Diamond/cycle guard: at most one visit per root.
		if _, seen := visited[node.Key]; seen {
			continue
		}
		visited[node.Key] = struct{}{}

		// 4. Pre-order callback.
		w.res.Visited++
		if w.fn != nil {
			w.fn(node)
		}

		// 5. Resolve and push outgoing edges. A dangling target is a
		//    precondition violation, not something to skip.
		for i := len(node.edges) - 1; i >= 0; i-- {
			target, err := w.dag.resolve(node.edges[i])
			if err != nil {
				return fmt.Errorf("dag: dispatch from %q: %w", node.Key, err)
			}
			stack = append(stack, target)
		}
	}

	return nil
}
