package netlength

import (
	"github.com/katalvlaran/rsmt/geometry"
)

// SteinerApprox returns the length of a rectilinear Steiner tree built by the
// iterated 1-Steiner heuristic restricted to the Hanan grid:
//
//  1. Start from the minimum spanning tree of the terminals.
//  2. Add the Hanan grid point whose insertion shortens the spanning tree the
//     most; stop when no point helps.
//  3. Drop added points of degree ≤ 2, which never shorten the tree.
//
// The result is the length of a real tree, so it is never below the exact
// RSMT length, and never above MST(pts).
//
// Complexity: O(N⁵) worst case (N-2 rounds, N² candidates, O(N²) Prim each).
func SteinerApprox(pts []geometry.Point) int {
	n := len(pts)
	if n < 3 {
		return MST(pts)
	}

	grid, err := geometry.NewHananGrid(pts)
	if err != nil {
		return 0
	}

	// tried holds terminals and every point added so far, pruned or not.
	tried := make(map[geometry.Point]struct{}, grid.Size())
	for _, p := range pts {
		tried[p] = struct{}{}
	}
	current := append(make([]geometry.Point, 0, 2*n), pts...)
	best := MST(current)

	var (
		gain, bestGain int
		pick, p        geometry.Point
		length         int
	)
	for round := 0; round < n-2; round++ {
		// 2) Find the candidate with the largest gain.
		bestGain = 0
		for id := 0; id < grid.Size(); id++ {
			p = grid.Point(id)
			if _, seen := tried[p]; seen {
				continue
			}
			length = MST(append(current, p))
			if gain = best - length; gain > bestGain {
				bestGain, pick = gain, p
			}
		}
		if bestGain == 0 {
			break
		}
		tried[pick] = struct{}{}

		// 3) Insert it and prune useless Steiner points.
		current = pruneSteinerPoints(append(current, pick), n)
		best = MST(current)
	}

	return best
}

// pruneSteinerPoints removes points at index ≥ terminals whose degree in the
// spanning tree is at most 2, until none is left. Terminals are never removed.
func pruneSteinerPoints(pts []geometry.Point, terminals int) []geometry.Point {
	for len(pts) > terminals {
		_, parent := spanningTree(pts)
		degree := make([]int, len(pts))
		for v, p := range parent {
			if p >= 0 {
				degree[v]++
				degree[p]++
			}
		}

		kept := pts[:terminals]
		for i := terminals; i < len(pts); i++ {
			if degree[i] > 2 {
				kept = append(kept, pts[i])
			}
		}
		if len(kept) == len(pts) {
			break
		}
		pts = kept
	}

	return pts
}
