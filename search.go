package rtree

// Search returns all points p of the tree with r.Contains(p). Rectangles with
// swapped corners are normalized first. The result is materialized at call time
// and is nil if no point matches.
func (t *RTree) Search(r Rectangle) []Point {
	var out []Point
	t.SearchFunc(r, func(p Point) bool {
		out = append(out, p)
		return true
	})
	return out
}

// SearchFunc calls fn for every point p of the tree with r.Contains(p).
// The search stops early if fn returns false. The tree must not be mutated
// from within fn.
func (t *RTree) SearchFunc(r Rectangle, fn func(p Point) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	s := &rangeSearch{
		tree:  t,
		query: r.normalized(),
		emit:  fn,
		obs:   t.cfg.Observer,
	}
	s.visit(t.root)
	s.report(true)
}

type rangeSearch struct {
	tree    *RTree
	query   Rectangle
	emit    func(Point) bool
	stopped bool
	obs     Observer
	visited []Rectangle // collected only if obs != nil
	pruned  []Rectangle
	results []Point
}

// visit searches the subtree at id. A node whose MBR does not intersect the
// query is pruned without looking at its contents.
func (s *rangeSearch) visit(id nodeID) {
	n := s.tree.nodes.node(id)
	h := n.header()
	if !h.hasMBR {
		return
	}
	if !s.query.Intersects(h.mbr) {
		s.prune(h.mbr)
		return
	}
	s.note(&s.visited, h.mbr)
	switch n := n.(type) {
	case *leafNode:
		for _, p := range n.points {
			if s.query.Contains(p) {
				s.match(p)
				if s.stopped {
					return
				}
			}
		}
	case *innerNode:
		for _, c := range n.children {
			s.visit(c)
			if s.stopped {
				return
			}
		}
	}
}

func (s *rangeSearch) match(p Point) {
	if s.obs != nil {
		s.results = append(s.results, p)
		s.report(false)
	}
	if !s.emit(p) {
		s.stopped = true
	}
}

func (s *rangeSearch) prune(r Rectangle) {
	s.note(&s.pruned, r)
}

func (s *rangeSearch) note(list *[]Rectangle, r Rectangle) {
	if s.obs == nil {
		return
	}
	*list = append(*list, r)
	s.report(false)
}

func (s *rangeSearch) report(done bool) {
	if s.obs == nil {
		return
	}
	s.obs.SearchStep(SearchStep{
		Query:   s.query,
		Visited: cloneRects(s.visited),
		Pruned:  cloneRects(s.pruned),
		Results: clonePoints(s.results),
		Done:    done,
	})
}
