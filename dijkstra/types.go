package dijkstra

import "errors"

// ErrNegativeWeight indicates that a negative edge cost was encountered.
var ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

// Edge is an outgoing edge of an implicit weighted graph.
type Edge[N comparable] struct {
	To   N
	Cost int64
}

// Graph is an implicit weighted graph.
type Graph[N comparable] interface {
	Edges(n N) []Edge[N]
}

// GraphFunc adapts an ordinary function to the Graph interface.
type GraphFunc[N comparable] func(n N) []Edge[N]

// Edges calls f(n).
func (f GraphFunc[N]) Edges(n N) []Edge[N] { return f(n) }

// Result holds distances and predecessors of every settled node.
type Result[N comparable] struct {
	Start N
	Dist  map[N]int64
	Prev  map[N]N
}

// PathTo reconstructs the cheapest path from the start to dest.
func (r *Result[N]) PathTo(dest N) ([]N, bool) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, false
	}
	path := []N{dest}
	for cur := dest; cur != r.Start; {
		cur = r.Prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
