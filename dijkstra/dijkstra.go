package dijkstra

import (
	"fmt"

	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/emirpasic/gods/utils"
)

// item is a heap entry; seq keeps pops stable for equal distances.
type item[N comparable] struct {
	node N
	dist int64
	seq  int
}

func byDistance[N comparable](a, b interface{}) int {
	x, y := a.(item[N]), b.(item[N])
	if c := utils.Int64Comparator(x.dist, y.dist); c != 0 {
		return c
	}
	return utils.IntComparator(x.seq, y.seq)
}

// Search returns the cheapest path from start to goal and its cost.
// ok is false when goal is unreachable.
func Search[N comparable](g Graph[N], start, goal N) (path []N, cost int64, ok bool, err error) {
	res, err := run(g, start, &goal)
	if err != nil {
		return nil, 0, false, err
	}
	path, ok = res.PathTo(goal)
	if !ok {
		return nil, 0, false, nil
	}

	return path, res.Dist[goal], true, nil
}

// SearchAll settles every node reachable from start.
func SearchAll[N comparable](g Graph[N], start N) (*Result[N], error) {
	return run(g, start, nil)
}

func run[N comparable](g Graph[N], start N, goal *N) (*Result[N], error) {
	res := &Result[N]{
		Start: start,
		Dist:  make(map[N]int64),
		Prev:  make(map[N]N),
	}
	best := map[N]int64{start: 0}
	pq := priorityqueue.NewWith(byDistance[N])
	seq := 0
	pq.Enqueue(item[N]{node: start})

	for !pq.Empty() {
		v, _ := pq.Dequeue()
		cur := v.(item[N])
		if _, settled := res.Dist[cur.node]; settled {
			continue // stale entry
		}
		res.Dist[cur.node] = cur.dist
		if goal != nil && cur.node == *goal {
			break
		}

		for _, e := range g.Edges(cur.node) {
			if e.Cost < 0 {
				return nil, fmt.Errorf("%w: %v→%v (%d)", ErrNegativeWeight, cur.node, e.To, e.Cost)
			}
			if _, settled := res.Dist[e.To]; settled {
				continue
			}
			nd := cur.dist + e.Cost
			if d, seen := best[e.To]; seen && d <= nd {
				continue
			}
			best[e.To] = nd
			res.Prev[e.To] = cur.node
			seq++
			pq.Enqueue(item[N]{node: e.To, dist: nd, seq: seq})
		}
	}

	return res, nil
}
