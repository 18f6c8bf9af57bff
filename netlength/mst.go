package netlength

import (
	"math"

	"github.com/katalvlaran/rsmt/geometry"
)

// MST returns the length of a minimum spanning tree of pts on the complete
// graph with L1 edge lengths.
// Complexity: O(N²) time, O(N) memory.
func MST(pts []geometry.Point) int {
	length, _ := spanningTree(pts)

	return length
}

// spanningTree runs Prim's algorithm on the complete L1 graph over pts and
// returns the tree length together with the parent of every point (-1 for the
// root, point 0).
//
// Steps:
//  1. Set every best connection cost to +∞ and start from point 0.
//  2. Repeatedly add the cheapest point not yet in the tree.
//  3. Update the best connection of the remaining points through it.
func spanningTree(pts []geometry.Point) (int, []int) {
	n := len(pts)
	if n < 2 {
		return 0, nil
	}

	// 1) Initialization.
	inTree := make([]bool, n)
	best := make([]int, n)
	parent := make([]int, n)
	for v := range best {
		best[v] = math.MaxInt
		parent[v] = -1
	}
	best[0] = 0

	length := 0
	var u, d int
	for it := 0; it < n; it++ {
		// 2) Find the point outside the tree with minimal connection cost.
		u = -1
		for v := 0; v < n; v++ {
			if !inTree[v] && (u < 0 || best[v] < best[u]) {
				u = v
			}
		}
		inTree[u] = true
		length += best[u]

		// 3) Relax the remaining points through u.
		for v := 0; v < n; v++ {
			if inTree[v] {
				continue
			}
			if d = geometry.Dist(pts[u], pts[v]); d < best[v] {
				best[v] = d
				parent[v] = u
			}
		}
	}

	return length, parent
}
