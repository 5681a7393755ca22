package rtree

// Op names the mutation which triggered a TreeSnapshot.
type Op int8

// Mutating operations reported to observers.
const (
	OpNone Op = iota
	OpAdd
	OpDelete
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpDelete:
		return "delete"
	}
	return "none"
}

// Observer receives read-only reports from a tree. Calls are synchronous and
// happen on the goroutine operating the tree; reports are copies and may be
// retained.
type Observer interface {
	// TreeChanged is called after Add or Delete changed the tree.
	TreeChanged(TreeSnapshot)
	// SearchStep is called for every node visited or pruned and every point
	// matched by a range search, and once more with Done set.
	SearchStep(SearchStep)
	// KNNStep is called whenever a nearest-neighbor search pops a candidate
	// node or changes its result set, and once more with Done set.
	KNNStep(KNNStep)
}

// NodeBox describes a node of the tree in a snapshot.
type NodeBox struct {
	MBR   Rectangle
	Depth int // 0 for the root
	Leaf  bool
}

// TreeSnapshot is a copy of the tree's contents and node MBRs.
type TreeSnapshot struct {
	Op     Op
	Point  Point     // the point added or deleted
	Points []Point   // all points, in tree order
	Nodes  []NodeBox // all nodes with an MBR, pre-order
}

// MBRs returns the rectangles of all nodes of the snapshot.
func (s TreeSnapshot) MBRs() []Rectangle {
	r := make([]Rectangle, len(s.Nodes))
	for i, n := range s.Nodes {
		r[i] = n.MBR
	}
	return r
}

// SearchStep reports the state of a range search.
type SearchStep struct {
	Query   Rectangle
	Visited []Rectangle // MBRs of nodes descended into so far
	Pruned  []Rectangle // MBRs of nodes skipped so far
	Results []Point     // matches so far
	Done    bool
}

// KNNStep reports the state of a nearest-neighbor search.
type KNNStep struct {
	Source     Point
	K          int
	Active     []Rectangle // MBR of the candidate node being processed
	Pruned     []Rectangle // MBRs of candidate nodes discarded by the distance bound
	Candidates []Point     // points of the leaf being processed
	Results    []Point     // accepted points, unordered until Done
	Evicted    []Point     // points pushed out of the result set so far
	Done       bool
}

// Snapshot returns a copy of the tree's points and node MBRs.
func (t *RTree) Snapshot() TreeSnapshot {
	s := TreeSnapshot{}
	if t.isVoid() {
		return s
	}
	s.Points = t.Points()
	var walk func(id nodeID, depth int)
	walk = func(id nodeID, depth int) {
		n := t.nodes.node(id)
		if h := n.header(); h.hasMBR {
			s.Nodes = append(s.Nodes, NodeBox{MBR: h.mbr, Depth: depth, Leaf: n.isLeaf()})
		}
		if inner, ok := n.(*innerNode); ok {
			for _, c := range inner.children {
				walk(c, depth+1)
			}
		}
	}
	walk(t.root, 0)
	return s
}

// MBRs returns the rectangles of all nodes holding entries, pre-order.
func (t *RTree) MBRs() []Rectangle {
	return t.Snapshot().MBRs()
}

func (t *RTree) notifyTreeChanged(op Op, p Point) {
	if t.cfg.Observer == nil {
		return
	}
	s := t.Snapshot()
	s.Op, s.Point = op, p
	t.cfg.Observer.TreeChanged(s)
}

func clonePoints(points []Point) []Point {
	if len(points) == 0 {
		return nil
	}
	return append([]Point(nil), points...)
}

func cloneRects(rects []Rectangle) []Rectangle {
	if len(rects) == 0 {
		return nil
	}
	return append([]Rectangle(nil), rects...)
}
