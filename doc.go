// Package rsmt computes rectilinear Steiner tree lengths: the length of the
// shortest network of horizontal and vertical segments joining a set of
// integer terminals, as used to estimate wiring cost in physical design.
//
// What is inside:
//
//	geometry/  terminals, L1 distance, bounding boxes, Hanan grid
//	steiner/   exact RSMT length (Dijkstra-ordered Dreyfus–Wagner with a
//	           bounding-box lower bound), pluggable frontier backends
//	netlength/ quick estimators: bounding box, clique, star, MST,
//	           iterated 1-Steiner
//	instance/  text instance parser
//	cmd/       the steiner and netlengths command-line tools
//
// Quick example:
//
//	    (5,10)
//	      │
//	      │
//	(0,0)─┴─(10,0)
//
// The three terminals above are joined through the Steiner point (5,0) with
// total length 20, five less than their minimum spanning tree.
//
//	go get github.com/katalvlaran/rsmt/steiner
package rsmt
