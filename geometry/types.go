package geometry

import (
	"errors"
	"fmt"
)

// ErrEmptyInstance indicates that a terminal list with no elements was passed
// to an operation that needs at least one terminal.
var ErrEmptyInstance = errors.New("geometry: instance has no terminals")

// Point is an integer terminal (or grid vertex) in the plane.
type Point struct {
	X, Y int
}

// String renders p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Dist returns the rectilinear (L1) distance between p and q.
// Complexity: O(1).
func Dist(p, q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// BoundingBox is the smallest axis-aligned rectangle containing a point set.
type BoundingBox struct {
	MinX, MaxX int
	MinY, MaxY int
}

// BoxOf returns the degenerate box that contains only p.
func BoxOf(p Point) BoundingBox {
	return BoundingBox{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y}
}

// Extend grows b so that it also contains p.
// Complexity: O(1).
func (b BoundingBox) Extend(p Point) BoundingBox {
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}

	return b
}

// Width returns MaxX-MinX.
func (b BoundingBox) Width() int { return b.MaxX - b.MinX }

// Height returns MaxY-MinY.
func (b BoundingBox) Height() int { return b.MaxY - b.MinY }

// HalfPerimeter returns Width()+Height(). It is a lower bound on the length
// of any rectilinear tree connecting the points the box was built from.
func (b BoundingBox) HalfPerimeter() int {
	return b.Width() + b.Height()
}

// Contains reports whether p lies inside b (borders included).
func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
