package rtree

import "math"

// Add inserts p into the tree. Adding a point which is already stored, or an
// invalid point, leaves the tree unchanged.
func (t *RTree) Add(p Point) {
	if t == nil || !p.IsValid() {
		return
	}
	t.ensureRoot()
	if t.insert(p) {
		t.notifyTreeChanged(OpAdd, p)
	}
}

// insert stores p and reports whether the tree changed.
func (t *RTree) insert(p Point) bool {
	if t.findLeaf(t.root, p) != noNode {
		T().P("tree", t.cfg.Name).Debugf("insert: %v already present", p)
		return false
	}
	id := t.chooseLeaf(p)
	leaf := t.nodes.leaf(id)
	leaf.points = append(leaf.points, p)
	t.size++
	t.adjustMBR(id)
	if len(leaf.points) > MaxEntries {
		sibling := t.splitLeaf(id)
		t.adjustParentAfterSplit(id, sibling)
	}
	return true
}

// chooseLeaf descends from the root to the leaf whose MBR needs the least
// enlargement to include p. Ties go to the first child encountered.
func (t *RTree) chooseLeaf(p Point) nodeID {
	pr := PointRect(p)
	id := t.root
	for {
		inner, ok := t.nodes.node(id).(*innerNode)
		if !ok {
			return id
		}
		best, bestDelta := noNode, math.Inf(+1)
		for _, c := range inner.children {
			h := t.nodes.node(c).header()
			if !h.hasMBR {
				continue
			}
			if delta := h.mbr.Enlargement(pr); delta < bestDelta {
				best, bestDelta = c, delta
			}
		}
		if best == noNode {
			assert(len(inner.children) > 0, "chooseLeaf reached internal node without children")
			best = inner.children[0]
		}
		id = best
	}
}

// splitLeaf splits an overflowing leaf into two siblings. The leaf keeps the
// first group, the second group is moved to a new leaf, which is returned.
// The new leaf is not yet linked into the parent.
func (t *RTree) splitLeaf(id nodeID) nodeID {
	leaf := t.nodes.leaf(id)
	points := leaf.points
	assert(len(points) >= 2, "splitLeaf called with fewer than 2 points")
	boxes := make([]Rectangle, len(points))
	for i, p := range points {
		boxes[i] = PointRect(p)
	}
	seed1, seed2 := farthestPair(points)
	second := distribute(boxes, seed1, seed2)

	siblingID := t.nodes.newLeaf(leaf.parent)
	sibling := t.nodes.leaf(siblingID)
	leaf.points = make([]Point, 0, MaxEntries+1)
	leaf.points = append(leaf.points, points[seed1])
	sibling.points = append(sibling.points, points[seed2])
	for i, p := range points {
		if i == seed1 || i == seed2 {
			continue
		}
		if second[i] {
			sibling.points = append(sibling.points, p)
		} else {
			leaf.points = append(leaf.points, p)
		}
	}
	t.nodes.updateMBR(id)
	t.nodes.updateMBR(siblingID)
	T().P("tree", t.cfg.Name).Debugf("split leaf %d: %d + %d points",
		id, len(leaf.points), len(sibling.points))
	return siblingID
}

// splitInternal splits an overflowing internal node into two siblings, the same
// way splitLeaf does for leaves. Children moved to the new node are reparented.
func (t *RTree) splitInternal(id nodeID) nodeID {
	node := t.nodes.inner(id)
	children := node.children
	assert(len(children) >= 2, "splitInternal called with fewer than 2 children")
	boxes := make([]Rectangle, len(children))
	for i, c := range children {
		h := t.nodes.node(c).header()
		assert(h.hasMBR, "splitInternal found child without MBR")
		boxes[i] = h.mbr
	}
	seed1, seed2 := mostDivergentPair(boxes)
	second := distribute(boxes, seed1, seed2)

	siblingID := t.nodes.newInner(node.parent)
	node.children = make([]nodeID, 0, MaxEntries+1)
	t.nodes.appendChild(id, children[seed1])
	t.nodes.appendChild(siblingID, children[seed2])
	for i, c := range children {
		if i == seed1 || i == seed2 {
			continue
		}
		if second[i] {
			t.nodes.appendChild(siblingID, c)
		} else {
			t.nodes.appendChild(id, c)
		}
	}
	t.nodes.updateMBR(id)
	t.nodes.updateMBR(siblingID)
	T().P("tree", t.cfg.Name).Debugf("split internal node %d: %d + %d children",
		id, len(node.children), t.nodes.node(siblingID).entryCount())
	return siblingID
}

// adjustParentAfterSplit links the new sibling n2 of a split node n1 into the
// tree. Splitting the root grows the tree by one level; an overflowing parent
// is split in turn, up to the root.
func (t *RTree) adjustParentAfterSplit(n1, n2 nodeID) {
	for {
		parent := t.nodes.parent(n1)
		if parent == noNode {
			root := t.nodes.newInner(noNode)
			t.nodes.appendChild(root, n1)
			t.nodes.appendChild(root, n2)
			t.nodes.updateMBR(root)
			t.root = root
			T().P("tree", t.cfg.Name).Debugf("root split, new root %d", root)
			return
		}
		t.nodes.appendChild(parent, n2)
		if t.nodes.node(parent).entryCount() <= MaxEntries {
			t.adjustMBR(parent)
			return
		}
		n1, n2 = parent, t.splitInternal(parent)
	}
}

// farthestPair returns the indices of the two points with maximum distance.
func farthestPair(points []Point) (int, int) {
	seed1, seed2 := 0, 1
	maxDist := -1.0
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if d := points[i].Distance(points[j]); d > maxDist {
				maxDist = d
				seed1, seed2 = i, j
			}
		}
	}
	return seed1, seed2
}

// mostDivergentPair returns the indices of the two rectangles whose areas
// differ most.
func mostDivergentPair(boxes []Rectangle) (int, int) {
	seed1, seed2 := 0, 1
	maxDiff := -1.0
	for i := 0; i < len(boxes); i++ {
		for j := i + 1; j < len(boxes); j++ {
			if d := math.Abs(boxes[i].Area() - boxes[j].Area()); d > maxDiff {
				maxDiff = d
				seed1, seed2 = i, j
			}
		}
	}
	return seed1, seed2
}

// distribute assigns entries to two groups seeded by seed1 and seed2. An entry
// joins the group whose MBR grows less by absorbing it, ties go to the first
// group. A group which needs all remaining entries to reach MinEntries gets
// them. The result flags entries of the second group.
func distribute(boxes []Rectangle, seed1, seed2 int) []bool {
	second := make([]bool, len(boxes))
	second[seed2] = true
	mbr1, mbr2 := boxes[seed1], boxes[seed2]
	n1, n2 := 1, 1
	remaining := len(boxes) - 2
	for i, b := range boxes {
		if i == seed1 || i == seed2 {
			continue
		}
		var toSecond bool
		switch {
		case n1+remaining <= MinEntries:
			toSecond = false
		case n2+remaining <= MinEntries:
			toSecond = true
		default:
			toSecond = mbr2.Enlargement(b) < mbr1.Enlargement(b)
		}
		if toSecond {
			mbr2 = mbr2.Union(b)
			n2++
		} else {
			mbr1 = mbr1.Union(b)
			n1++
		}
		second[i] = toSecond
		remaining--
	}
	return second
}
