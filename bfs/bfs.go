package bfs

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// queueItem pairs a node with its BFS depth.
type queueItem[N comparable] struct {
	node  N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N comparable] struct {
	graph   Graph[N]
	opts    Options[N]
	queue   *linkedlistqueue.Queue
	visited map[N]struct{}
	res     *Result[N]
}

// Walk runs breadth-first search on g starting from start, applying any
// number of functional Options. Everything reachable from start (within
// MaxDepth) ends up in the returned Result.
// Returns ErrOptionViolation for bad options or any user-supplied hook error.
func Walk[N comparable](g Graph[N], start N, opts ...Option[N]) (*Result[N], error) {
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[N]{
		graph:   g,
		opts:    o,
		queue:   linkedlistqueue.New(),
		visited: make(map[N]struct{}),
		res: &Result[N]{
			Start:  start,
			Depth:  make(map[N]int),
			Parent: make(map[N]N),
		},
	}

	w.enqueue(start, 0)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// enqueue marks n visited at depth d and adds it to the queue.
func (w *walker[N]) enqueue(n N, d int) {
	w.visited[n] = struct{}{}
	w.res.Depth[n] = d
	w.queue.Enqueue(queueItem[N]{node: n, depth: d})
}

// loop processes the queue until it is empty or a hook fails.
func (w *walker[N]) loop() error {
	for !w.queue.Empty() {
		v, _ := w.queue.Dequeue()
		item := v.(queueItem[N])

		w.res.Order = append(w.res.Order, item.node)
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node, err)
		}

		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		for _, next := range w.graph.Successors(item.node) {
			if !w.opts.FilterSuccessor(item.node, next) {
				continue
			}
			if _, seen := w.visited[next]; seen {
				continue
			}
			w.res.Parent[next] = item.node
			w.enqueue(next, nextDepth)
		}
	}

	return nil
}
