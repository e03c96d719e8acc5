// Package dijkstra implements Dijkstra's shortest-path algorithm on implicit
// weighted graphs.
//
// It is the weighted sibling of package bfs: instead of a successor list,
// the graph yields outgoing edges with a non-negative cost, and nodes are
// processed out of a priority queue in order of increasing distance.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)   (lazy decrease-key keeps stale entries in the heap)
//
// Notes on implementation choices:
//
//   - Stale heap entries are skipped on pop instead of decreasing keys in place.
//   - Search stops as soon as the goal is popped; SearchAll drains the heap.
//   - A negative cost aborts the search with ErrNegativeWeight.
package dijkstra
