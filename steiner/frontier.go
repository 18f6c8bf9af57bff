package steiner

// key identifies a label by value: the vertex ID in the high 32 bits and the
// terminal set in the low 32 bits.
type key uint64

func makeKey(v int, set TerminalSet) key {
	return key(uint64(v)<<32 | uint64(set))
}

// label is a (vertex, terminal set) pair together with the cheapest cost found
// for it so far.
type label struct {
	vertex int         // Hanan grid vertex ID
	set    TerminalSet // terminals spanned besides the vertex
	cost   int         // best known tree length; final once closed
	bound  int         // lower bound on the remaining length; fixed per (vertex, set)
	seq    uint64      // creation order, breaks priority ties
	index  int         // position inside a heap frontier
}

func (l *label) priority() int { return l.cost + l.bound }

// before orders labels by priority, then by creation order.
func (l *label) before(o *label) bool {
	if p, q := l.priority(), o.priority(); p != q {
		return p < q
	}

	return l.seq < o.seq
}

// frontier is a min-priority structure over open labels with decrease-key.
type frontier interface {
	Len() int
	insert(l *label)
	// decrease lowers l.cost to cost and restores the ordering.
	decrease(l *label, cost int)
	popMin() *label
}

// newFrontier returns the backend selected by q, or nil for an unknown value.
func newFrontier(q Queue) frontier {
	switch q {
	case QueueBTree:
		return newBTreeFrontier()
	case QueueHeap:
		return newHeapFrontier()
	case QueueLLRB:
		return newLLRBFrontier()
	default:
		return nil
	}
}
