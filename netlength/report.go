package netlength

import (
	"fmt"

	"github.com/katalvlaran/rsmt/geometry"
)

// Report gathers every estimator for one instance.
type Report struct {
	Terminals     int
	BoundingBox   int
	Clique        float64
	Star          int
	MST           int
	SteinerApprox int
}

// Estimate evaluates all estimators on pts.
// Complexity: dominated by SteinerApprox.
func Estimate(pts []geometry.Point) Report {
	return Report{
		Terminals:     len(pts),
		BoundingBox:   BoundingBox(pts),
		Clique:        Clique(pts),
		Star:          Star(pts),
		MST:           MST(pts),
		SteinerApprox: SteinerApprox(pts),
	}
}

// String renders the report as space-separated key=value pairs.
func (r Report) String() string {
	return fmt.Sprintf("n=%d bb=%d clique=%.2f star=%d mst=%d approx=%d",
		r.Terminals, r.BoundingBox, r.Clique, r.Star, r.MST, r.SteinerApprox)
}
