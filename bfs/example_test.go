package bfs_test

import (
	"fmt"

	"github.com/Taxel/everybody-codes-2024/bfs"
)

type point struct{ x, y int }

// ExampleSearch finds the fewest-step route across a small maze.
func ExampleSearch() {
	maze := []string{
		"S.#.",
		".##.",
		"...G",
	}
	open := func(p point) bool {
		return p.y >= 0 && p.y < len(maze) && p.x >= 0 && p.x < len(maze[p.y]) && maze[p.y][p.x] != '#'
	}
	g := bfs.GraphFunc[point](func(p point) []point {
		var next []point
		for _, d := range []point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
			if q := (point{p.x + d.x, p.y + d.y}); open(q) {
				next = append(next, q)
			}
		}
		return next
	})

	path, ok := bfs.Search[point](g, point{0, 0}, point{3, 2})
	fmt.Println(ok, len(path)-1)
	fmt.Println(path)
	// Output:
	// true 5
	// [{0 0} {0 1} {0 2} {1 2} {2 2} {3 2}]
}

// ExampleWalk shows layering on a chain with a depth limit.
func ExampleWalk() {
	g := bfs.GraphFunc[int](func(n int) []int { return []int{n + 1} })

	res, err := bfs.Walk[int](g, 0, bfs.WithMaxDepth[int](3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0 1 2 3]
}
