package netlength

import (
	"slices"

	"github.com/katalvlaran/rsmt/geometry"
)

// BoundingBox returns the half-perimeter of the bounding box of pts.
// Complexity: O(N).
func BoundingBox(pts []geometry.Point) int {
	box, err := geometry.Extremes(pts)
	if err != nil {
		return 0
	}

	return box.HalfPerimeter()
}

// CliqueQuadratic returns the clique net length: the sum of L1 distances over
// all pairs, divided by N-1 (each terminal's share of a complete graph).
// Complexity: O(N²).
func CliqueQuadratic(pts []geometry.Point) float64 {
	n := len(pts)
	if n < 2 {
		return 0
	}

	total := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			total += geometry.Dist(pts[i], pts[j])
		}
	}

	return float64(total) / float64(n-1)
}

// Clique returns the same value as CliqueQuadratic from sorted coordinates:
// the gap between the i-th and (i+1)-th smallest coordinate is crossed by
// i·(N-i) pairs.
// Complexity: O(N log N).
func Clique(pts []geometry.Point) float64 {
	n := len(pts)
	if n < 2 {
		return 0
	}

	xs, ys := sortedAxes(pts)
	total := 0
	for i := 1; i < n; i++ {
		total += (xs[i] - xs[i-1]) * i * (n - i)
		total += (ys[i] - ys[i-1]) * i * (n - i)
	}

	return float64(total) / float64(n-1)
}

// Star returns the total L1 distance from every terminal to the point built
// from the median x and the median y coordinate.
// Complexity: O(N log N).
func Star(pts []geometry.Point) int {
	if len(pts) < 2 {
		return 0
	}

	xs, ys := sortedAxes(pts)
	center := geometry.Point{X: xs[len(xs)/2], Y: ys[len(ys)/2]}
	total := 0
	for _, p := range pts {
		total += geometry.Dist(p, center)
	}

	return total
}

// sortedAxes returns the x- and y-coordinates of pts, each sorted ascending
// (duplicates kept).
func sortedAxes(pts []geometry.Point) (xs, ys []int) {
	xs = make([]int, len(pts))
	ys = make([]int, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	slices.Sort(xs)
	slices.Sort(ys)

	return xs, ys
}
