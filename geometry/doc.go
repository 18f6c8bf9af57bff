// Package geometry provides the planar primitives shared by the exact Steiner
// search and the net-length estimators: integer terminals, L1 distance,
// bounding boxes and the Hanan grid.
//
// What:
//
//   - Point is an immutable integer terminal; equality is coordinate equality.
//   - Extremes scans a terminal list once and returns its BoundingBox.
//   - HananGrid is the finite grid spanned by the distinct x- and y-coordinates
//     of the terminals. It contains the vertices of some optimal rectilinear
//     Steiner tree, so the exact search never has to leave it.
//
// Why:
//
//   - Walking the integer lattice unit by unit is unbounded for widely
//     separated terminals; the Hanan grid has at most N×N vertices.
//   - The bounding box drives both the lower bound of the search and the rule
//     deciding which cardinal directions a vertex may be left in.
//
// Complexity:
//
//   - Extremes:     O(N) time, O(1) memory.
//   - NewHananGrid: O(N log N) time, O(N) memory (plus O(1) per vertex lookup).
//   - Neighbors:    O(1) per call.
//
// Errors:
//
//   - ErrEmptyInstance: an operation that needs at least one terminal got none.
package geometry
