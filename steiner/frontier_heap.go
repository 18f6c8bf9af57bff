package steiner

import "container/heap"

// labelPQ is an indexed min-heap of labels. Every label records its position,
// so a cost reduction is a heap.Fix instead of a duplicate entry.
type labelPQ []*label

// Len returns the number of labels in the heap.
func (pq labelPQ) Len() int { return len(pq) }

// Less orders by priority, then creation order.
func (pq labelPQ) Less(i, j int) bool { return pq[i].before(pq[j]) }

// Swap swaps two labels and keeps their indices current.
func (pq labelPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push appends a label. Called by heap.Push.
func (pq *labelPQ) Push(x interface{}) {
	l := x.(*label)
	l.index = len(*pq)
	*pq = append(*pq, l)
}

// Pop removes the last label. Called by heap.Pop.
func (pq *labelPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	l := old[n-1]
	old[n-1] = nil
	l.index = -1
	*pq = old[:n-1]

	return l
}

type heapFrontier struct {
	pq labelPQ
}

func newHeapFrontier() *heapFrontier {
	f := &heapFrontier{pq: make(labelPQ, 0, 64)}
	heap.Init(&f.pq)

	return f
}

func (f *heapFrontier) Len() int { return f.pq.Len() }

func (f *heapFrontier) insert(l *label) { heap.Push(&f.pq, l) }

func (f *heapFrontier) decrease(l *label, cost int) {
	l.cost = cost
	heap.Fix(&f.pq, l.index)
}

func (f *heapFrontier) popMin() *label { return heap.Pop(&f.pq).(*label) }
