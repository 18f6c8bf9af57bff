package steiner

import "github.com/katalvlaran/rsmt/geometry"

// lowerBounder estimates the cost still needed to turn a label (v, I) into a
// tree spanning every terminal.
type lowerBounder struct {
	terminals []geometry.Point
	grid      *geometry.HananGrid
	enabled   bool
}

// lowerBound returns the half-perimeter of the bounding box of v, the root and
// every terminal not in set. Any tree connecting those points is at least this
// long, so the value is admissible.
//
// Complexity: O(N).
func (lb *lowerBounder) lowerBound(v int, set TerminalSet) int {
	if !lb.enabled {
		return 0
	}

	box := geometry.BoxOf(lb.grid.Point(v)).Extend(lb.terminals[0])
	for i := 1; i < len(lb.terminals); i++ {
		if !set.Has(i) {
			box = box.Extend(lb.terminals[i])
		}
	}

	return box.HalfPerimeter()
}
