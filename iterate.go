package rtree

// ForEachPoint walks all points in tree order.
//
// Iteration stops early if callback returns false. The tree must not be
// mutated during iteration.
func (t *RTree) ForEachPoint(fn func(p Point) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	t.forEachPointNode(t.root, fn)
}

func (t *RTree) forEachPointNode(id nodeID, fn func(p Point) bool) bool {
	switch n := t.nodes.node(id).(type) {
	case *leafNode:
		for _, p := range n.points {
			if !fn(p) {
				return false
			}
		}
	case *innerNode:
		for _, c := range n.children {
			if !t.forEachPointNode(c, fn) {
				return false
			}
		}
	}
	return true
}

// Points returns all points of the tree in tree order.
func (t *RTree) Points() []Point {
	var out []Point
	t.ForEachPoint(func(p Point) bool {
		out = append(out, p)
		return true
	})
	return out
}
