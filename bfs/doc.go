// Package bfs provides breadth-first search over implicit graphs, returning
// hop-minimal paths, parent links, depths, and visit order.
//
// What
//
//   - The graph is never materialised. A Graph yields the finite set of
//     successors of any node on demand, so the search works equally well
//     on grids, puzzle states or any other comparable value.
//   - Search(g, start, goal) returns the shortest path start → … → goal,
//     or false when goal is not reachable from start.
//   - Walk(g, start, opts...) explores everything reachable from start and
//     returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Walk supports a visit hook, a depth limit and successor filtering.
//
// Determinism
//
//	Successors are enqueued in the order the Graph yields them, so ties
//	between equally short paths are always broken the same way.
//
// Complexity (V = nodes reached, E = aggregate fan-out among them)
//
//   - Time:   O(V + E)
//   - Memory: O(V)     (frontier, visited set, precursor table)
//
// Usage
//
//	g := bfs.GraphFunc[int](func(n int) []int { return next[n] })
//	path, ok := bfs.Search[int](g, 0, 4)
//
//	res, err := bfs.Walk[int](g, 0, bfs.WithMaxDepth[int](3))
//	if err != nil {
//	    // ErrOptionViolation or an error returned by the OnVisit hook
//	}
//
// Errors
//
//   - ErrOptionViolation  if an invalid Option is supplied (e.g. negative MaxDepth).
//   - ErrNoPath           from Result.PathTo when the node was not reached.
//   - Wrapped errors returned from OnVisit.
package bfs
