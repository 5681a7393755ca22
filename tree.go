package rtree

// RTree is a 4-way R-tree over points. Its zero value is an empty tree without
// an observer; use New to configure one.
type RTree struct {
	cfg      Config
	nodes    arena
	root     nodeID
	size     int     // number of stored points
	reinsert []Point // points orphaned by a delete, drained before Delete returns
}

// New creates an empty tree with validated configuration.
func New(cfg Config) (*RTree, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	t := &RTree{cfg: cfg.normalized()}
	t.ensureRoot()
	return t, nil
}

// NewTree creates an empty tree with default configuration.
func NewTree() *RTree {
	t, err := New(Config{})
	assert(err == nil, "default configuration is invalid")
	return t
}

// Config returns a copy of the effective tree configuration.
func (t *RTree) Config() Config {
	return t.cfg.normalized()
}

// SetObserver installs o as the tree's observer, replacing any previous one.
// A nil observer switches reporting off.
func (t *RTree) SetObserver(o Observer) {
	t.cfg.Observer = o
}

// ensureRoot makes a zero-value tree usable. An empty tree is represented by
// an empty leaf root.
func (t *RTree) ensureRoot() {
	if len(t.nodes.slots) == 0 {
		t.root = t.nodes.newLeaf(noNode)
	}
}

func (t *RTree) isVoid() bool {
	return t == nil || len(t.nodes.slots) == 0
}

// IsEmpty reports whether the tree holds no points.
func (t *RTree) IsEmpty() bool {
	return t.isVoid() || t.size == 0
}

// Len returns the number of points in the tree.
func (t *RTree) Len() int {
	if t.isVoid() {
		return 0
	}
	return t.size
}

// Height returns the number of levels of the tree, where a leaf root has
// height 1. The empty tree has height 0.
func (t *RTree) Height() int {
	if t.IsEmpty() {
		return 0
	}
	h := 1
	for id := t.root; ; h++ {
		inner, ok := t.nodes.node(id).(*innerNode)
		if !ok {
			return h
		}
		id = inner.children[0]
	}
}

// Bounds returns the MBR of all points in the tree. The second return value is
// false for an empty tree.
func (t *RTree) Bounds() (Rectangle, bool) {
	if t.IsEmpty() {
		return Rectangle{}, false
	}
	h := t.nodes.node(t.root).header()
	return h.mbr, h.hasMBR
}

// Contains reports whether p is stored in the tree.
func (t *RTree) Contains(p Point) bool {
	if t.IsEmpty() || !p.IsValid() {
		return false
	}
	return t.findLeaf(t.root, p) != noNode
}

// findLeaf returns the leaf below id holding p, or noNode. It descends only
// into children whose MBR contains p.
func (t *RTree) findLeaf(id nodeID, p Point) nodeID {
	switch n := t.nodes.node(id).(type) {
	case *leafNode:
		for _, q := range n.points {
			if q.Equal(p) {
				return id
			}
		}
	case *innerNode:
		for _, c := range n.children {
			h := t.nodes.node(c).header()
			if !h.hasMBR || !h.mbr.Contains(p) {
				continue
			}
			if found := t.findLeaf(c, p); found != noNode {
				return found
			}
		}
	}
	return noNode
}

// adjustMBR recomputes MBRs from node id up to the root.
func (t *RTree) adjustMBR(id nodeID) {
	for id != noNode {
		t.nodes.updateMBR(id)
		id = t.nodes.parent(id)
	}
}
