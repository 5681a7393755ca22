package rtree

import (
	"sort"

	"github.com/tidwall/tinyqueue"
)

// candidate is a node waiting to be examined by a nearest-neighbor search,
// keyed by the distance from the source to the node's MBR.
type candidate struct {
	id   nodeID
	dist float64
}

func (c *candidate) Less(other tinyqueue.Item) bool {
	return c.dist < other.(*candidate).dist
}

// Neighbor is a point found by a nearest-neighbor search together with its
// distance from the source.
type Neighbor struct {
	Point    Point
	Distance float64
}

// worseNeighbor orders neighbors worst first: by descending distance, then by
// descending coordinates.
type worseNeighbor Neighbor

func (n *worseNeighbor) Less(other tinyqueue.Item) bool {
	m := other.(*worseNeighbor)
	if n.Distance != m.Distance {
		return n.Distance > m.Distance
	}
	return pointLess(m.Point, n.Point)
}

// Nearest returns up to k points of the tree closest to source, ordered by
// ascending distance. Points at equal distance are ordered by coordinates.
// The result is nil for k <= 0, an empty tree or an invalid source.
func (t *RTree) Nearest(source Point, k int) []Point {
	neighbors := t.NearestWithDistance(source, k)
	if len(neighbors) == 0 {
		return nil
	}
	out := make([]Point, len(neighbors))
	for i, n := range neighbors {
		out[i] = n.Point
	}
	return out
}

// NearestWithDistance is like Nearest, but returns the distances as well.
func (t *RTree) NearestWithDistance(source Point, k int) []Neighbor {
	if t.IsEmpty() || k <= 0 || !source.IsValid() {
		return nil
	}
	s := &knnSearch{
		tree:    t,
		source:  source,
		k:       k,
		obs:     t.cfg.Observer,
		results: tinyqueue.New(nil),
		queue:   tinyqueue.New(nil),
	}
	return s.run()
}

type knnSearch struct {
	tree    *RTree
	source  Point
	k       int
	obs     Observer
	results *tinyqueue.Queue // accepted points, worst on top
	queue   *tinyqueue.Queue // candidate nodes, nearest on top

	// mirrors of the result set, of evicted points and of pruned candidates,
	// kept only if obs != nil
	accepted []Point
	evicted  []Point
	pruned   []Rectangle
}

// run performs a best-first branch-and-bound search. A candidate's distance
// is a lower bound for every point below it, so once k points are accepted
// and the nearest candidate is farther away than the worst of them, no
// remaining candidate can improve the result.
func (s *knnSearch) run() []Neighbor {
	root := s.tree.nodes.node(s.tree.root).header()
	s.queue.Push(&candidate{id: s.tree.root, dist: root.mbr.DistanceTo(s.source)})
	s.report([]Rectangle{root.mbr}, nil)
	for s.queue.Len() > 0 {
		c := s.queue.Pop().(*candidate)
		n := s.tree.nodes.node(c.id)
		active := []Rectangle{n.header().mbr}
		if s.results.Len() == s.k && c.dist > s.worst() {
			T().P("tree", s.tree.cfg.Name).Debugf("knn: pruned at bound %g, %d candidates left",
				c.dist, s.queue.Len())
			s.prune(c)
			s.report(active, leafPoints(n))
			break
		}
		switch n := n.(type) {
		case *leafNode:
			s.report(active, n.points)
			for _, p := range n.points {
				s.offer(p)
				s.report(active, n.points)
			}
		case *innerNode:
			for _, id := range n.children {
				h := s.tree.nodes.node(id).header()
				if !h.hasMBR {
					continue
				}
				s.queue.Push(&candidate{id: id, dist: h.mbr.DistanceTo(s.source)})
			}
			s.report(active, nil)
		}
	}
	out := make([]Neighbor, 0, s.results.Len())
	for s.results.Len() > 0 {
		out = append(out, Neighbor(*s.results.Pop().(*worseNeighbor)))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return pointLess(out[i].Point, out[j].Point)
	})
	if s.obs != nil {
		sorted := make([]Point, len(out))
		for i, n := range out {
			sorted[i] = n.Point
		}
		s.obs.KNNStep(KNNStep{
			Source:  s.source,
			K:       s.k,
			Results: sorted,
			Evicted: clonePoints(s.evicted),
			Pruned:  cloneRects(s.pruned),
			Done:    true,
		})
	}
	return out
}

// offer adds p to the result set, evicting the worst point if the set grows
// beyond k.
func (s *knnSearch) offer(p Point) {
	s.results.Push(&worseNeighbor{Point: p, Distance: p.Distance(s.source)})
	if s.obs != nil {
		s.accepted = append(s.accepted, p)
	}
	if s.results.Len() > s.k {
		worst := s.results.Pop().(*worseNeighbor)
		if s.obs != nil {
			s.accepted = removePoint(s.accepted, worst.Point)
			s.evicted = append(s.evicted, worst.Point)
		}
	}
}

func (s *knnSearch) worst() float64 {
	return s.results.Peek().(*worseNeighbor).Distance
}

func (s *knnSearch) report(active []Rectangle, candidates []Point) {
	if s.obs == nil {
		return
	}
	s.obs.KNNStep(KNNStep{
		Source:     s.source,
		K:          s.k,
		Active:     cloneRects(active),
		Candidates: clonePoints(candidates),
		Results:    clonePoints(s.accepted),
		Evicted:    clonePoints(s.evicted),
		Pruned:     cloneRects(s.pruned),
	})
}

// prune records c and every candidate still queued as discarded. The queue is
// emptied.
func (s *knnSearch) prune(c *candidate) {
	if s.obs == nil {
		return
	}
	s.pruned = append(s.pruned, s.tree.nodes.node(c.id).header().mbr)
	for s.queue.Len() > 0 {
		rest := s.queue.Pop().(*candidate)
		s.pruned = append(s.pruned, s.tree.nodes.node(rest.id).header().mbr)
	}
}

func removePoint(points []Point, p Point) []Point {
	for i, q := range points {
		if q.Equal(p) {
			return append(points[:i], points[i+1:]...)
		}
	}
	return points
}

func leafPoints(n treeNode) []Point {
	if leaf, ok := n.(*leafNode); ok {
		return leaf.points
	}
	return nil
}
