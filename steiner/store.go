package steiner

// store owns every label discovered by one search: the open labels in the
// frontier and the finalized labels in the closed set.
//
// Invariants:
//   - a (vertex, set) pair has at most one open label, found through open;
//   - a closed pair is never reopened and its cost never changes;
//   - closed[k] is the finalized label of pair k;
//   - byVertex[v] lists the closed labels at v in closing order.
type store struct {
	queue    frontier
	open     map[key]*label
	closed   map[key]*label
	byVertex [][]*label
	bounds   *lowerBounder
	seq      uint64
	stats    *Stats
}

func newStore(queue frontier, vertices int, bounds *lowerBounder, stats *Stats) *store {
	return &store{
		queue:    queue,
		open:     make(map[key]*label),
		closed:   make(map[key]*label),
		byVertex: make([][]*label, vertices),
		bounds:   bounds,
		stats:    stats,
	}
}

// push offers cost for the pair (v, set). Closed pairs are ignored, an open
// label is lowered in place when cost beats it, otherwise a new label is
// created with a freshly computed lower bound.
func (s *store) push(v int, set TerminalSet, cost int) {
	k := makeKey(v, set)
	if _, done := s.closed[k]; done {
		return
	}
	if l, ok := s.open[k]; ok {
		if cost < l.cost {
			s.queue.decrease(l, cost)
			s.stats.DecreaseKeys++
		}
		return
	}

	l := &label{
		vertex: v,
		set:    set,
		cost:   cost,
		bound:  s.bounds.lowerBound(v, set),
		seq:    s.seq,
		index:  -1,
	}
	s.seq++
	s.open[k] = l
	s.queue.insert(l)
	s.stats.Pushed++
}

// popBest removes the open label with the smallest cost + bound.
func (s *store) popBest() (*label, error) {
	if s.queue.Len() == 0 {
		return nil, ErrFrontierExhausted
	}

	return s.queue.popMin(), nil
}

// close finalizes l. It must be the label just returned by popBest.
func (s *store) close(l *label) {
	k := makeKey(l.vertex, l.set)
	delete(s.open, k)
	s.closed[k] = l
	s.byVertex[l.vertex] = append(s.byVertex[l.vertex], l)
	s.stats.Closed++
}

// closedAt returns the closed labels at vertex v. The slice must not be
// modified by the caller.
func (s *store) closedAt(v int) []*label {
	return s.byVertex[v]
}

// eachWithin calls visit for every closed label at v whose set is a subset of
// within. It either scans closedAt(v) or looks up every non-empty subset of
// within, whichever inspects fewer candidates, and counts the candidates in
// Stats.MergeProbes.
//
// Complexity: O(min(|closedAt(v)|, 2^|within|)).
func (s *store) eachWithin(v int, within TerminalSet, visit func(o *label)) {
	if within == 0 {
		return
	}

	list := s.closedAt(v)
	if subsets := 1<<within.Len() - 1; subsets < len(list) {
		s.stats.MergeProbes += subsets
		for sub := within; sub > 0; sub = (sub - 1) & within {
			if o, ok := s.closed[makeKey(v, sub)]; ok {
				visit(o)
			}
		}
		return
	}

	s.stats.MergeProbes += len(list)
	for _, o := range list {
		if o.set&^within == 0 {
			visit(o)
		}
	}
}
