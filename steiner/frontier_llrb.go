package steiner

import "github.com/petar/GoLLRB/llrb"

// llrbItem adapts a label to llrb.Item.
type llrbItem struct {
	*label
}

// Less implements llrb.Item.
func (it llrbItem) Less(than llrb.Item) bool {
	return it.before(than.(llrbItem).label)
}

// llrbFrontier keeps open labels in a left-leaning red-black tree, with the
// same delete-and-reinsert decrease-key as the B-tree backend.
type llrbFrontier struct {
	tree *llrb.LLRB
}

func newLLRBFrontier() *llrbFrontier {
	return &llrbFrontier{tree: llrb.New()}
}

func (f *llrbFrontier) Len() int { return f.tree.Len() }

func (f *llrbFrontier) insert(l *label) { f.tree.ReplaceOrInsert(llrbItem{l}) }

func (f *llrbFrontier) decrease(l *label, cost int) {
	f.tree.Delete(llrbItem{l})
	l.cost = cost
	f.tree.ReplaceOrInsert(llrbItem{l})
}

func (f *llrbFrontier) popMin() *label {
	item := f.tree.DeleteMin()
	if item == nil {
		return nil
	}

	return item.(llrbItem).label
}
