// Package steiner computes the exact length of a minimum rectilinear Steiner
// tree (RSMT) over a set of integer terminals under the L1 metric.
//
// The search is the Dreyfus–Wagner recurrence driven in Dijkstra order
// ("Dijkstra meets Steiner"): a label (v, I) stands for a cheapest tree that
// contains vertex v and exactly the terminals of I. Labels are finalized in
// non-decreasing order of cost + lower bound, and a finalized label is
// extended in two ways:
//
//   - relax: move v one Hanan grid step in a cardinal direction;
//   - merge: join (v, I) with every finalized (v, J), J ∩ I = ∅, into (v, I ∪ J).
//
// Terminal 0 is the root. The first time (root, all other terminals) is
// finalized its cost is the RSMT length.
//
// Lower bound:
//
//	L(v, I) = half-perimeter of the bounding box of {v, root} ∪ {t ∉ I}.
//
// It never overestimates and it is feasible for both transitions
// (L(v,I) ≤ d(v,w) + L(w,I) and L(v,I) ≤ cost(v,J) + L(v,I ∪ J)), so every label
// is optimal when it is finalized.
//
// Complexity:
//
//   - Labels: O(H · 2^(N-1)), where H ≤ N² is the number of Hanan grid vertices.
//   - Time:   O(H · 3^(N-1) + labels · log labels) in the worst case. A merge
//     scans the finalized labels at v or looks up every subset of the free
//     terminals, whichever is shorter, so each vertex pays O(3^(N-1)) in total.
//   - Memory: O(labels).
//
// Options:
//
//   - WithMaxTerminals(n): cap on instance size (default DefaultMaxTerminals,
//     at most MaxSupportedTerminals).
//   - WithQueue(q):        frontier backend (QueueBTree, QueueHeap, QueueLLRB).
//   - WithoutLowerBound(): plain Dijkstra order (bound ≡ 0), for comparison.
//
// Errors (sentinel):
//
//   - ErrTooManyTerminals   instance exceeds the configured cap.
//   - ErrInvalidOptions     cap outside [1, MaxSupportedTerminals] or unknown queue.
//   - ErrFrontierExhausted  the frontier ran dry before the root label closed;
//     an internal defect, never expected for valid input.
//
// Example usage:
//
//	length, err := steiner.Length([]geometry.Point{{0, 0}, {10, 0}, {5, 10}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(length) // 20
package steiner
