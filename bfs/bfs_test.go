package bfs_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Taxel/everybody-codes-2024/bfs"
)

// adjacency is a small explicit graph used to drive the implicit-graph API.
type adjacency map[int][]int

func (a adjacency) Successors(n int) []int { return a[n] }

// TestSearch_Chain covers the directed path 0→1→2→3→4.
func TestSearch_Chain(t *testing.T) {
	g := adjacency{0: {1}, 1: {2}, 2: {3}, 3: {4}}

	path, ok := bfs.Search[int](g, 0, 4)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, path)

	// edges are directed, so the way back does not exist
	path, ok = bfs.Search[int](g, 2, 0)
	assert.False(t, ok)
	assert.Nil(t, path)
}

// TestSearch_Branching checks that ties follow successor order.
func TestSearch_Branching(t *testing.T) {
	g := adjacency{0: {1, 2}, 1: {3}, 2: {3}}
	path, ok := bfs.Search[int](g, 0, 3)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 3}, path)

	g = adjacency{0: {2, 1}, 1: {3}, 2: {3}}
	path, _ = bfs.Search[int](g, 0, 3)
	assert.Equal(t, []int{0, 2, 3}, path)
}

// TestSearch_StartIsGoal returns the single-node path.
func TestSearch_StartIsGoal(t *testing.T) {
	g := adjacency{}
	path, ok := bfs.Search[int](g, 7, 7)
	require.True(t, ok)
	assert.Equal(t, []int{7}, path)
}

// TestSearch_SelfLoopsAndDuplicates ensures the visited set dedups.
func TestSearch_SelfLoopsAndDuplicates(t *testing.T) {
	g := adjacency{0: {0, 1, 1, 0}, 1: {0, 1, 2, 2}}
	path, ok := bfs.Search[int](g, 0, 2)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2}, path)
}

// TestSearch_GraphFunc drives Search over an infinite implicit graph.
func TestSearch_GraphFunc(t *testing.T) {
	// n → n+1 and n → 2n; shortest way from 1 to 10 is 1,2,4,5,10
	g := bfs.GraphFunc[int](func(n int) []int {
		if n > 100 {
			return nil
		}
		return []int{n + 1, 2 * n}
	})
	path, ok := bfs.Search[int](g, 1, 10)
	require.True(t, ok)
	assert.Len(t, path, 5)
	assert.Equal(t, 1, path[0])
	assert.Equal(t, 10, path[len(path)-1])
}

// TestSearch_Optimality compares Search against relaxation distances on random graphs.
func TestSearch_Optimality(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		const n = 30
		g := adjacency{}
		for e := 0; e < 45; e++ {
			u, v := rnd.Intn(n), rnd.Intn(n)
			g[u] = append(g[u], v)
		}
		dist := relaxDistances(g, n, 0)

		for goal := 0; goal < n; goal++ {
			path, ok := bfs.Search[int](g, 0, goal)
			d, reachable := dist[goal]
			require.Equal(t, reachable, ok, "round %d goal %d", round, goal)
			if !ok {
				continue
			}
			assert.Equal(t, d, len(path)-1, "round %d goal %d", round, goal)
			for i := 1; i < len(path); i++ {
				assert.Contains(t, g[path[i-1]], path[i])
			}
		}
	}
}

// relaxDistances computes hop distances by repeated edge relaxation.
func relaxDistances(g adjacency, n, start int) map[int]int {
	dist := map[int]int{start: 0}
	for changed := true; changed; {
		changed = false
		for u := 0; u < n; u++ {
			du, ok := dist[u]
			if !ok {
				continue
			}
			for _, v := range g[u] {
				if dv, seen := dist[v]; !seen || du+1 < dv {
					dist[v] = du + 1
					changed = true
				}
			}
		}
	}
	return dist
}

// TestWalk_Errors verifies that invalid options are rejected.
func TestWalk_Errors(t *testing.T) {
	g := adjacency{0: {1}}
	_, err := bfs.Walk[int](g, 0, bfs.WithMaxDepth[int](-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	boom := errors.New("boom")
	_, err = bfs.Walk[int](g, 0, bfs.WithOnVisit(func(n int, _ int) error {
		if n == 1 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

// TestWalk_CycleAndDepths covers a simple cycle and checks depths.
func TestWalk_CycleAndDepths(t *testing.T) {
	// 0–1–2–3–0 as an undirected cycle
	g := adjacency{0: {1, 3}, 1: {0, 2}, 2: {1, 3}, 3: {2, 0}}
	res, err := bfs.Walk[int](g, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 3, 2}, res.Order)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 3: 1, 2: 2}, res.Depth)
	assert.Equal(t, 1, res.Parent[2])

	path, err := res.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)
}

// TestWalk_MaxDepth verifies positive and zero (no limit) depth limits.
func TestWalk_MaxDepth(t *testing.T) {
	g := adjacency{0: {1}, 1: {2}, 2: {3}}

	res, err := bfs.Walk[int](g, 0, bfs.WithMaxDepth[int](1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)

	res, err = bfs.Walk[int](g, 0, bfs.WithMaxDepth[int](0))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
}

// TestWalk_FilterSuccessor shows how filtering prunes certain edges.
func TestWalk_FilterSuccessor(t *testing.T) {
	g := adjacency{0: {1}, 1: {2}}
	res, err := bfs.Walk[int](g, 0, bfs.WithFilterSuccessor(func(curr, next int) bool {
		return !(curr == 1 && next == 2)
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
	assert.False(t, res.Reached(2))
}

// TestWalk_PathTo covers both trivial (start→start) and unreachable targets.
func TestWalk_PathTo(t *testing.T) {
	res, err := bfs.Walk[string](bfs.GraphFunc[string](func(string) []string { return nil }), "X")
	require.NoError(t, err)

	path, err := res.PathTo("X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, path)

	_, err = res.PathTo("Y")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}
