package rtree

// Delete removes p from the tree. Deleting a point which is not stored, or an
// invalid point, is a no-op.
func (t *RTree) Delete(p Point) {
	if t.IsEmpty() || !p.IsValid() {
		return
	}
	id := t.findLeaf(t.root, p)
	if id == noNode {
		return
	}
	leaf := t.nodes.leaf(id)
	for i, q := range leaf.points {
		if q.Equal(p) {
			leaf.points = append(leaf.points[:i], leaf.points[i+1:]...)
			t.size--
			break
		}
	}
	t.condenseTree(id)
	t.shortenTree()
	t.reinsertOrphans()
	t.shortenTree()
	t.notifyTreeChanged(OpDelete, p)
}

// condenseTree walks from a leaf which just lost an entry up to the root.
// Underfull non-root nodes are detached from their parent and the points of
// their subtree are collected for reinsertion. MBRs along the path are
// recomputed.
func (t *RTree) condenseTree(id nodeID) {
	t.nodes.updateMBR(id)
	for id != t.root {
		parent := t.nodes.parent(id)
		assert(parent != noNode, "condenseTree found non-root node without parent")
		if t.nodes.node(id).entryCount() < MinEntries {
			t.nodes.removeChild(parent, id)
			t.orphan(id)
		}
		t.nodes.updateMBR(parent)
		id = parent
	}
	t.nodes.updateMBR(t.root)
}

// orphan moves all points below id to the reinsertion buffer and releases the
// nodes of the subtree.
func (t *RTree) orphan(id nodeID) {
	switch n := t.nodes.node(id).(type) {
	case *leafNode:
		t.reinsert = append(t.reinsert, n.points...)
		t.size -= len(n.points)
		T().P("tree", t.cfg.Name).Debugf("condense: dropped leaf %d, %d points orphaned",
			id, len(n.points))
	case *innerNode:
		for _, c := range n.children {
			t.orphan(c)
		}
		T().P("tree", t.cfg.Name).Debugf("condense: dropped internal node %d", id)
	}
	t.nodes.release(id)
}

// shortenTree promotes the only child of an internal root, repeatedly. An
// internal root without children is replaced by an empty leaf.
func (t *RTree) shortenTree() {
	for {
		root, ok := t.nodes.node(t.root).(*innerNode)
		if !ok {
			return
		}
		switch len(root.children) {
		case 0:
			t.nodes.release(t.root)
			t.root = t.nodes.newLeaf(noNode)
			return
		case 1:
			child := root.children[0]
			t.nodes.release(t.root)
			t.nodes.node(child).header().parent = noNode
			t.root = child
			T().P("tree", t.cfg.Name).Debugf("root collapsed to node %d", child)
		default:
			return
		}
	}
}

// reinsertOrphans drains the reinsertion buffer through the ordinary insert path.
func (t *RTree) reinsertOrphans() {
	if len(t.reinsert) == 0 {
		return
	}
	orphans := t.reinsert
	t.reinsert = nil
	for _, p := range orphans {
		t.insert(p)
	}
}
