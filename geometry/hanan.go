package geometry

import (
	"slices"

	"github.com/emirpasic/gods/sets/treeset"
)

// Direction is a unit step between neighbouring Hanan grid columns or rows.
type Direction struct {
	DX, DY int
}

// Directions lists the four cardinal directions (N, E, S, W) in the order the
// search explores them. Diagonal moves never occur in a rectilinear tree.
var Directions = [4]Direction{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Edge is a step from a Hanan grid vertex to one of its neighbours.
type Edge struct {
	To     int // neighbour vertex ID
	Length int // coordinate gap between the two vertices
}

// HananGrid is the grid formed by crossing every distinct terminal
// x-coordinate with every distinct terminal y-coordinate. It is immutable once
// built. Vertices are addressed by a row-major ID: yi*len(Xs) + xi.
type HananGrid struct {
	Xs, Ys    []int // sorted distinct coordinates
	terminals []int // vertex ID of every terminal, in input order
}

// NewHananGrid builds the Hanan grid of points and locates each terminal on it.
//
// Returns ErrEmptyInstance if points is empty.
//
// Complexity: O(N log N) time, O(N) memory.
func NewHananGrid(points []Point) (*HananGrid, error) {
	if len(points) == 0 {
		return nil, ErrEmptyInstance
	}

	// 1) Collect the distinct coordinates of each axis in ascending order.
	xset := treeset.NewWithIntComparator()
	yset := treeset.NewWithIntComparator()
	for _, p := range points {
		xset.Add(p.X)
		yset.Add(p.Y)
	}
	g := &HananGrid{
		Xs:        axis(xset),
		Ys:        axis(yset),
		terminals: make([]int, len(points)),
	}

	// 2) Map every terminal to its vertex. Axis slices are sorted, so the
	//    position lookup is a binary search.
	var xi, yi int
	for i, p := range points {
		xi, _ = slices.BinarySearch(g.Xs, p.X)
		yi, _ = slices.BinarySearch(g.Ys, p.Y)
		g.terminals[i] = g.VertexID(xi, yi)
	}

	return g, nil
}

// axis flattens an ordered integer set into a slice.
func axis(set *treeset.Set) []int {
	values := set.Values()
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = v.(int)
	}

	return out
}

// Size returns the number of vertices of the grid.
func (g *HananGrid) Size() int {
	return len(g.Xs) * len(g.Ys)
}

// VertexID maps column xi and row yi to a vertex ID.
// Complexity: O(1).
func (g *HananGrid) VertexID(xi, yi int) int {
	return yi*len(g.Xs) + xi
}

// Index splits a vertex ID back into its column and row.
func (g *HananGrid) Index(id int) (xi, yi int) {
	return id % len(g.Xs), id / len(g.Xs)
}

// Point returns the plane coordinates of vertex id.
func (g *HananGrid) Point(id int) Point {
	xi, yi := g.Index(id)

	return Point{X: g.Xs[xi], Y: g.Ys[yi]}
}

// Terminal returns the vertex ID of terminal i (input order).
func (g *HananGrid) Terminal(i int) int {
	return g.terminals[i]
}

// Neighbors appends to buf the grid neighbours of vertex id and returns the
// extended slice. A direction is offered only when the vertex lies strictly
// inside the bounding box on that axis, so a walk never leaves the box.
//
// Complexity: O(1).
func (g *HananGrid) Neighbors(id int, buf []Edge) []Edge {
	xi, yi := g.Index(id)
	var nx, ny int
	for _, d := range Directions {
		nx, ny = xi+d.DX, yi+d.DY
		if nx < 0 || nx >= len(g.Xs) || ny < 0 || ny >= len(g.Ys) {
			continue
		}
		buf = append(buf, Edge{
			To:     g.VertexID(nx, ny),
			Length: abs(g.Xs[nx]-g.Xs[xi]) + abs(g.Ys[ny]-g.Ys[yi]),
		})
	}

	return buf
}
