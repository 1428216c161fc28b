// Package traverse provides a single reusable breadth-first /
// depth-first traversal engine over any core.Graph, steered by
// caller-supplied hooks.
//
// The engine is parametric over the frontier container: a FIFO queue
// yields BFS, a LIFO stack yields DFS. Everything else (termination,
// per-node and per-edge processing, frontier admission, reverse edges
// on directed graphs, revisiting) is configured with functional
// options:
//
//	tr := traverse.New(g, traverse.BFS,
//		traverse.WithProcessNeighbour(func(t *traverse.Traversal, u, v int, natural bool) {
//			// (u,v) is being examined; natural is false on reversed
//			// directed edges
//		}),
//		traverse.WithShouldTerminate(func(t *traverse.Traversal, u int) bool {
//			return u == target
//		}),
//	)
//	tr.StartAt(0)
//
// Termination is checked after the current node has been processed.
// One Traversal value is reusable: Reset clears the visited set and
// the frontier while keeping the hooks.
//
// The tree structural queries of this library (centre, centroid,
// diameter) are specialized loops in the core package; this engine is
// the general-purpose surface for callers composing their own
// traversals.
package traverse
