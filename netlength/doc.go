// Package netlength implements the quick net-length estimators used to judge
// wiring cost when an exact Steiner tree is too expensive, or to sanity-check
// the exact length.
//
// Estimators (N terminals, L1 metric):
//
//   - BoundingBox:     half-perimeter of the bounding box. O(N).
//     A lower bound on the RSMT length.
//   - CliqueQuadratic: sum of all pairwise distances divided by N-1. O(N²).
//   - Clique:          the same value from sorted coordinates. O(N log N).
//   - Star:            distance sum to the coordinate-wise median. O(N log N).
//   - MST:             minimum spanning tree length (Prim). O(N²).
//     At most 3/2 of the RSMT length.
//   - SteinerApprox:   iterated 1-Steiner on the Hanan grid. Between the RSMT
//     length and MST.
//
// All estimators return 0 for fewer than two terminals and never fail.
package netlength
