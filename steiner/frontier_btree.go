package steiner

import "github.com/google/btree"

// btreeDegree is the B-tree branching factor.
const btreeDegree = 32

// btreeFrontier keeps open labels in a B-tree sorted by (priority, seq). A
// cost reduction removes the label under its old position and reinserts it.
type btreeFrontier struct {
	tree *btree.BTreeG[*label]
}

func newBTreeFrontier() *btreeFrontier {
	return &btreeFrontier{
		tree: btree.NewG[*label](btreeDegree, func(a, b *label) bool { return a.before(b) }),
	}
}

func (f *btreeFrontier) Len() int { return f.tree.Len() }

func (f *btreeFrontier) insert(l *label) { f.tree.ReplaceOrInsert(l) }

func (f *btreeFrontier) decrease(l *label, cost int) {
	// The label must be located with its current ordering key before mutating it.
	f.tree.Delete(l)
	l.cost = cost
	f.tree.ReplaceOrInsert(l)
}

func (f *btreeFrontier) popMin() *label {
	l, _ := f.tree.DeleteMin()

	return l
}
