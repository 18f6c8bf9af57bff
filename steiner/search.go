package steiner

import (
	"github.com/katalvlaran/rsmt/geometry"
)

// runner holds the mutable state of a single search.
type runner struct {
	grid  *geometry.HananGrid // search space; read-only
	store *store              // open and closed labels
	root  int                 // vertex of terminal 0
	full  TerminalSet         // all non-root terminals
	n     int                 // number of terminals
	buf   []geometry.Edge     // scratch for neighbour lists
	stats Stats
}

func newRunner(terminals []geometry.Point, grid *geometry.HananGrid, cfg Options) *runner {
	r := &runner{
		grid: grid,
		root: grid.Terminal(0),
		full: FullSet(len(terminals)),
		n:    len(terminals),
		buf:  make([]geometry.Edge, 0, len(geometry.Directions)),
	}
	r.stats.GridVertices = grid.Size()
	bounds := &lowerBounder{
		terminals: terminals,
		grid:      grid,
		enabled:   cfg.UseLowerBound,
	}
	r.store = newStore(newFrontier(cfg.Queue), grid.Size(), bounds, &r.stats)

	return r
}

// init seeds the frontier with one zero-cost label per non-root terminal.
func (r *runner) init() {
	for i := 1; i < r.n; i++ {
		r.store.push(r.grid.Terminal(i), Singleton(i), 0)
	}
}

// process is the main loop. It repeatedly finalizes the best open label and
// extends it until the root label spanning every terminal is finalized.
//
// Loop termination conditions:
//
//   - (root, full) is closed: its cost is the RSMT length.
//   - The frontier is empty: ErrFrontierExhausted.
func (r *runner) process() (int, error) {
	for {
		// 1) Extract the label with the smallest cost + bound and finalize it.
		//    Labels close in non-decreasing priority, and the bound is feasible,
		//    so l.cost is optimal for (l.vertex, l.set).
		l, err := r.store.popBest()
		if err != nil {
			return 0, err
		}
		r.store.close(l)

		// 2) The first closing of the full root label is the optimum.
		if l.vertex == r.root && l.set == r.full {
			return l.cost, nil
		}

		// 3) Grow the tree along the grid, then join it with disjoint trees
		//    meeting at the same vertex.
		r.relax(l)
		r.merge(l)
	}
}

// relax moves l one Hanan grid step in every allowed cardinal direction,
// keeping its terminal set.
func (r *runner) relax(l *label) {
	r.buf = r.grid.Neighbors(l.vertex, r.buf[:0])
	for _, e := range r.buf {
		r.store.push(e.To, l.set, l.cost+e.Length)
	}
}

// merge combines l with every closed label at the same vertex whose terminal
// set is disjoint from l's. This is the subset step of Dreyfus–Wagner.
func (r *runner) merge(l *label) {
	r.store.eachWithin(l.vertex, r.full&^l.set, func(o *label) {
		r.store.push(l.vertex, l.set.Union(o.set), l.cost+o.cost)
		r.stats.Merges++
	})
}
