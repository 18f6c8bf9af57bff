// Package steiner_test provides runnable examples for the exact search.
package steiner_test

import (
	"fmt"

	"github.com/katalvlaran/rsmt/geometry"
	"github.com/katalvlaran/rsmt/steiner"
)

// ExampleLength computes the RSMT of a triangle. One Steiner point at (5,0)
// joins all three terminals.
func ExampleLength() {
	terminals := []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}}
	length, err := steiner.Length(terminals)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(length)
	// Output: 20
}

// ExampleSolve shows the search statistics and a non-default frontier.
func ExampleSolve() {
	terminals := []geometry.Point{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 0}, {X: 2, Y: 2}}
	res, err := steiner.Solve(terminals, steiner.WithQueue(steiner.QueueHeap))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("length=%d grid=%d\n", res.Length, res.Stats.GridVertices)
	// Output: length=6 grid=4
}

// ExampleWithMaxTerminals rejects an instance above the configured cap.
func ExampleWithMaxTerminals() {
	terminals := []geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	_, err := steiner.Length(terminals, steiner.WithMaxTerminals(2))
	fmt.Println(err)
	// Output: steiner: too many terminals: instance has 3, limit is 2
}
