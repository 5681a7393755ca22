package rtree

import "fmt"

// Check validates the structural invariants of the tree:
//
//   - parent references agree with child lists,
//   - every node but the root holds between MinEntries and MaxEntries entries,
//     an internal root holds at least two children,
//   - every cached MBR equals the union of the node's direct contents,
//   - all leaves are at the same depth,
//   - no point is stored twice, and the point count matches Len.
//
// Check is meant for tests and debugging. It returns an error wrapping
// ErrInvariant for the first violation found.
func (t *RTree) Check() error {
	if t.isVoid() {
		return nil
	}
	if p := t.nodes.parent(t.root); p != noNode {
		return fmt.Errorf("%w: root %d has parent %d", ErrInvariant, t.root, p)
	}
	if inner, ok := t.nodes.node(t.root).(*innerNode); ok && len(inner.children) < 2 {
		return fmt.Errorf("%w: internal root has %d children", ErrInvariant, len(inner.children))
	}
	seen := make(map[Point]bool, t.size)
	leafDepth := -1
	if err := t.checkNode(t.root, 0, &leafDepth, seen); err != nil {
		return err
	}
	if len(seen) != t.size {
		return fmt.Errorf("%w: tree holds %d points, size is %d", ErrInvariant, len(seen), t.size)
	}
	if len(t.reinsert) != 0 {
		return fmt.Errorf("%w: %d points left in reinsertion buffer", ErrInvariant, len(t.reinsert))
	}
	return nil
}

func (t *RTree) checkNode(id nodeID, depth int, leafDepth *int, seen map[Point]bool) error {
	n := t.nodes.node(id)
	count := n.entryCount()
	if count > MaxEntries {
		return fmt.Errorf("%w: node %d holds %d entries", ErrInvariant, id, count)
	}
	if id != t.root && count < MinEntries {
		return fmt.Errorf("%w: non-root node %d holds %d entries", ErrInvariant, id, count)
	}
	h := n.header()
	var mbr Rectangle
	hasMBR := false
	switch n := n.(type) {
	case *leafNode:
		if *leafDepth < 0 {
			*leafDepth = depth
		} else if *leafDepth != depth {
			return fmt.Errorf("%w: leaf %d at depth %d, expected %d", ErrInvariant, id, depth, *leafDepth)
		}
		for _, p := range n.points {
			if seen[p] {
				return fmt.Errorf("%w: duplicate point %v", ErrInvariant, p)
			}
			seen[p] = true
			if hasMBR {
				mbr = mbr.extend(p)
			} else {
				mbr, hasMBR = PointRect(p), true
			}
		}
	case *innerNode:
		for _, c := range n.children {
			if p := t.nodes.parent(c); p != id {
				return fmt.Errorf("%w: child %d of node %d has parent %d", ErrInvariant, c, id, p)
			}
			if err := t.checkNode(c, depth+1, leafDepth, seen); err != nil {
				return err
			}
			ch := t.nodes.node(c).header()
			if hasMBR {
				mbr = mbr.Union(ch.mbr)
			} else {
				mbr, hasMBR = ch.mbr, true
			}
		}
	}
	if hasMBR != h.hasMBR || (hasMBR && mbr != h.mbr) {
		return fmt.Errorf("%w: node %d caches MBR %v, contents span %v", ErrInvariant, id, h.mbr, mbr)
	}
	return nil
}
