package rtree

// nodeID addresses a node in the arena.
type nodeID int32

// noNode is the parent of the root.
const noNode nodeID = -1

type treeNode interface {
	isLeaf() bool
	header() *nodeHeader
	entryCount() int
}

// nodeHeader carries the state common to leaves and internal nodes.
type nodeHeader struct {
	parent nodeID    // non-owning back-reference, noNode for the root
	mbr    Rectangle // valid only if hasMBR
	hasMBR bool      // false iff the node has no entries
}

type leafNode struct {
	nodeHeader
	points []Point
}

func (l *leafNode) isLeaf() bool        { return true }
func (l *leafNode) header() *nodeHeader { return &l.nodeHeader }
func (l *leafNode) entryCount() int     { return len(l.points) }

type innerNode struct {
	nodeHeader
	children []nodeID
}

func (n *innerNode) isLeaf() bool        { return false }
func (n *innerNode) header() *nodeHeader { return &n.nodeHeader }
func (n *innerNode) entryCount() int     { return len(n.children) }

// arena owns all nodes of a tree. Released slots are recycled by later
// allocations.
type arena struct {
	slots []treeNode // nil for released slots
	free  []nodeID
}

func (a *arena) put(n treeNode) nodeID {
	if k := len(a.free); k > 0 {
		id := a.free[k-1]
		a.free = a.free[:k-1]
		a.slots[id] = n
		return id
	}
	a.slots = append(a.slots, n)
	return nodeID(len(a.slots) - 1)
}

func (a *arena) newLeaf(parent nodeID) nodeID {
	return a.put(&leafNode{
		nodeHeader: nodeHeader{parent: parent},
		points:     make([]Point, 0, MaxEntries+1),
	})
}

func (a *arena) newInner(parent nodeID) nodeID {
	return a.put(&innerNode{
		nodeHeader: nodeHeader{parent: parent},
		children:   make([]nodeID, 0, MaxEntries+1),
	})
}

// release drops a single node. Children of an internal node are not touched.
func (a *arena) release(id nodeID) {
	assert(a.slots[id] != nil, "arena: double release")
	a.slots[id] = nil
	a.free = append(a.free, id)
}

// live returns the number of allocated nodes.
func (a *arena) live() int {
	return len(a.slots) - len(a.free)
}

func (a *arena) node(id nodeID) treeNode {
	assert(id >= 0 && int(id) < len(a.slots), "arena: node id out of range")
	n := a.slots[id]
	assert(n != nil, "arena: access to released node")
	return n
}

func (a *arena) leaf(id nodeID) *leafNode {
	l, ok := a.node(id).(*leafNode)
	assert(ok, "arena: expected leaf node")
	return l
}

func (a *arena) inner(id nodeID) *innerNode {
	n, ok := a.node(id).(*innerNode)
	assert(ok, "arena: expected internal node")
	return n
}

func (a *arena) parent(id nodeID) nodeID {
	return a.node(id).header().parent
}

// appendChild makes child the last child of parent.
func (a *arena) appendChild(parent, child nodeID) {
	p := a.inner(parent)
	p.children = append(p.children, child)
	a.node(child).header().parent = parent
}

// removeChild detaches child from parent. The child keeps its contents.
func (a *arena) removeChild(parent, child nodeID) {
	p := a.inner(parent)
	for i, c := range p.children {
		if c == child {
			p.children = append(p.children[:i], p.children[i+1:]...)
			a.node(child).header().parent = noNode
			return
		}
	}
	panic("arena: child not found in parent")
}

// updateMBR recomputes the MBR of a single node from its direct contents.
// Children without an MBR are skipped.
func (a *arena) updateMBR(id nodeID) {
	switch n := a.node(id).(type) {
	case *leafNode:
		n.hasMBR = false
		for _, p := range n.points {
			if n.hasMBR {
				n.mbr = n.mbr.extend(p)
			} else {
				n.mbr, n.hasMBR = PointRect(p), true
			}
		}
	case *innerNode:
		n.hasMBR = false
		for _, c := range n.children {
			ch := a.node(c).header()
			if !ch.hasMBR {
				continue
			}
			if n.hasMBR {
				n.mbr = n.mbr.Union(ch.mbr)
			} else {
				n.mbr, n.hasMBR = ch.mbr, true
			}
		}
	default:
		panic("unknown tree node type")
	}
}
