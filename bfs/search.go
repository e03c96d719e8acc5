package bfs

import (
	"slices"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// Search returns a hop-minimal path start → … → goal, or false when goal
// cannot be reached from start. It stops as soon as goal is dequeued.
//
// The precursor table maps every discovered node (except start) to the
// node that first discovered it; each key is enqueued exactly once.
func Search[N comparable](g Graph[N], start, goal N) ([]N, bool) {
	queue := linkedlistqueue.New()
	queue.Enqueue(start)
	visited := map[N]struct{}{start: {}}
	precursors := make(map[N]N)

	for !queue.Empty() {
		v, _ := queue.Dequeue()
		node := v.(N)
		if node == goal {
			return buildPath(goal, start, precursors), true
		}
		for _, next := range g.Successors(node) {
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			precursors[next] = node
			queue.Enqueue(next)
		}
	}

	return nil, false
}

// buildPath walks precursors from goal back to start and reverses the result.
func buildPath[N comparable](goal, start N, precursors map[N]N) []N {
	path := []N{goal}
	for cur := goal; cur != start; {
		prev, ok := precursors[cur]
		if !ok {
			panic("bfs: precursor chain broken")
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)

	return path
}
