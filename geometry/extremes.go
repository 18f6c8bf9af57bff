package geometry

// Extremes returns the bounding box (minimum and maximum x and y) of points in
// a single linear scan.
//
// Returns ErrEmptyInstance if points is empty.
//
// Complexity: O(N) time, O(1) memory.
func Extremes(points []Point) (BoundingBox, error) {
	if len(points) == 0 {
		return BoundingBox{}, ErrEmptyInstance
	}

	box := BoxOf(points[0])
	for _, p := range points[1:] {
		box = box.Extend(p)
	}

	return box, nil
}
