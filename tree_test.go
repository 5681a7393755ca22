package rtree

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// traceToTest routes tracing to t for the duration of the test and restores
// the previous tracer afterwards.
func traceToTest(t *testing.T) {
	t.Helper()
	saved := gtrace.CoreTracer
	teardown := gotestingadapter.QuickConfig(t, "rtree")
	t.Cleanup(func() {
		teardown()
		gtrace.CoreTracer = saved
	})
}

func mustCheck(t *testing.T, tree *RTree) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func sortPoints(points []Point) []Point {
	sort.Slice(points, func(i, j int) bool { return pointLess(points[i], points[j]) })
	return points
}

func samePoints(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	a = sortPoints(append([]Point(nil), a...))
	b = sortPoints(append([]Point(nil), b...))
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{Name: "my tree"})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestNewNormalizesConfig(t *testing.T) {
	tree, err := New(Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Config().Name != "rtree" {
		t.Errorf("expected default name, got %q", tree.Config().Name)
	}
	if !tree.IsEmpty() || tree.Len() != 0 || tree.Height() != 0 {
		t.Errorf("unexpected state of new tree: len=%d height=%d", tree.Len(), tree.Height())
	}
	mustCheck(t, tree)
}

func TestZeroValueTree(t *testing.T) {
	var tree RTree
	if !tree.IsEmpty() {
		t.Fatalf("zero tree should be empty")
	}
	if got := tree.Search(Rect(0, 0, 10, 10)); got != nil {
		t.Fatalf("expected no results from zero tree, got %v", got)
	}
	tree.Delete(Pt(1, 1))
	tree.Add(Pt(1, 1))
	if tree.Len() != 1 || !tree.Contains(Pt(1, 1)) {
		t.Fatalf("expected zero tree to accept a point")
	}
	mustCheck(t, &tree)
}

func TestAddFourPointsNoSplit(t *testing.T) {
	traceToTest(t)

	tree := NewTree()
	points := []Point{Pt(1, 1), Pt(2, 2), Pt(3, 3), Pt(4, 4)}
	for _, p := range points {
		tree.Add(p)
	}
	mustCheck(t, tree)
	if tree.IsEmpty() {
		t.Fatalf("tree should not be empty")
	}
	if !tree.nodes.node(tree.root).isLeaf() {
		t.Fatalf("expected root to still be a leaf")
	}
	if got := tree.Search(Rect(0, 0, 5, 5)); !samePoints(got, points) {
		t.Errorf("expected all four points, got %v", got)
	}
}

func TestAddFifthPointSplitsRoot(t *testing.T) {
	traceToTest(t)

	tree := NewTree()
	points := []Point{Pt(1, 1), Pt(2, 2), Pt(3, 3), Pt(4, 4), Pt(5, 5)}
	for _, p := range points {
		tree.Add(p)
	}
	mustCheck(t, tree)
	root, ok := tree.nodes.node(tree.root).(*innerNode)
	if !ok {
		t.Fatalf("expected internal root after overflow")
	}
	if len(root.children) != 2 {
		t.Fatalf("expected root with 2 children, has %d", len(root.children))
	}
	a := tree.nodes.leaf(root.children[0])
	b := tree.nodes.leaf(root.children[1])
	if !samePoints(a.points, []Point{Pt(1, 1), Pt(2, 2), Pt(3, 3)}) ||
		!samePoints(b.points, []Point{Pt(4, 4), Pt(5, 5)}) {
		t.Errorf("unexpected split: %v | %v", a.points, b.points)
	}
	if a.mbr.Intersects(b.mbr) {
		t.Errorf("leaf MBRs overlap: %v, %v", a.mbr, b.mbr)
	}
	if a.mbr.Union(b.mbr) != root.mbr {
		t.Errorf("root MBR %v is not union of %v and %v", root.mbr, a.mbr, b.mbr)
	}
	if tree.Height() != 2 {
		t.Errorf("expected height 2, got %d", tree.Height())
	}
	if got := tree.Search(Rect(1, 1, 5, 5)); !samePoints(got, points) {
		t.Errorf("expected all five points, got %v", got)
	}
}

func TestAddIsIdempotent(t *testing.T) {
	tree := NewTree()
	for i := 0; i < 20; i++ {
		tree.Add(Pt(float64(i%7), float64(i%5)))
	}
	n := tree.Len()
	for i := 0; i < 20; i++ {
		tree.Add(Pt(float64(i%7), float64(i%5)))
	}
	mustCheck(t, tree)
	if tree.Len() != n {
		t.Errorf("re-adding points changed size from %d to %d", n, tree.Len())
	}
	if got := tree.Search(Rect(-1, -1, 10, 10)); len(got) != n {
		t.Errorf("expected %d points from search, got %d", n, len(got))
	}
}

func TestAddIgnoresInvalidPoints(t *testing.T) {
	tree := NewTree()
	tree.Add(Pt(math.NaN(), 1))
	tree.Add(Pt(1, math.Inf(1)))
	if !tree.IsEmpty() {
		t.Fatalf("invalid points must not be stored")
	}
	var nilTree *RTree
	nilTree.Add(Pt(1, 1))
	nilTree.Delete(Pt(1, 1))
	if !nilTree.IsEmpty() || nilTree.Len() != 0 {
		t.Fatalf("nil tree should behave as empty")
	}
}

func TestDeleteFromLeafRoot(t *testing.T) {
	tree := NewTree()
	tree.Add(Pt(1, 1))
	tree.Add(Pt(2, 2))
	tree.Delete(Pt(1, 1))
	mustCheck(t, tree)
	if got := tree.Search(Rect(0, 0, 3, 3)); !samePoints(got, []Point{Pt(2, 2)}) {
		t.Fatalf("expected only (2,2), got %v", got)
	}
	if tree.Len() != 1 {
		t.Errorf("expected size 1, got %d", tree.Len())
	}
}

func TestDeleteMissingPointIsNoOp(t *testing.T) {
	tree := NewTree()
	tree.Delete(Pt(1, 1))
	for i := 0; i < 10; i++ {
		tree.Add(Pt(float64(i), float64(i)))
	}
	tree.Delete(Pt(100, 100))
	tree.Delete(Pt(1.5, 1.5))
	tree.Delete(Pt(math.NaN(), 1))
	mustCheck(t, tree)
	if tree.Len() != 10 {
		t.Errorf("expected size 10, got %d", tree.Len())
	}
}

func TestDeleteCollapsesRoot(t *testing.T) {
	traceToTest(t)

	tree := NewTree()
	for i := 1; i <= 5; i++ {
		tree.Add(Pt(float64(i), float64(i)))
	}
	if tree.Height() != 2 {
		t.Fatalf("expected height 2, got %d", tree.Height())
	}
	tree.Delete(Pt(5, 5)) // leaves {4,4} underfull
	mustCheck(t, tree)
	if tree.Height() != 1 {
		t.Errorf("expected root collapse to height 1, got %d", tree.Height())
	}
	want := []Point{Pt(1, 1), Pt(2, 2), Pt(3, 3), Pt(4, 4)}
	if got := tree.Points(); !samePoints(got, want) {
		t.Errorf("expected %v after delete, got %v", want, got)
	}
}

func TestInsertDeleteRoundTrip(t *testing.T) {
	traceToTest(t)

	tree := NewTree()
	var points []Point
	for i := 0; i < 200; i++ {
		p := Pt(float64((i*37)%101), float64((i*53)%97))
		points = append(points, p)
		tree.Add(p)
	}
	mustCheck(t, tree)
	if tree.Height() < 3 {
		t.Errorf("expected a tree of height >= 3, got %d", tree.Height())
	}
	for i, p := range points {
		tree.Delete(p)
		if tree.Contains(p) {
			t.Fatalf("point %v still present after delete", p)
		}
		if i%17 == 0 {
			mustCheck(t, tree)
		}
	}
	mustCheck(t, tree)
	if !tree.IsEmpty() {
		t.Fatalf("expected empty tree, has %d points", tree.Len())
	}
	if got := tree.Search(Rect(-1000, -1000, 1000, 1000)); len(got) != 0 {
		t.Errorf("expected empty search result, got %v", got)
	}
	if tree.nodes.live() != 1 {
		t.Errorf("expected arena to hold only the root, holds %d nodes", tree.nodes.live())
	}
}

func TestArenaReusesReleasedNodes(t *testing.T) {
	tree := NewTree()
	for round := 0; round < 20; round++ {
		for i := 0; i < 50; i++ {
			tree.Add(Pt(float64(i), float64(round)))
		}
		for i := 0; i < 50; i++ {
			tree.Delete(Pt(float64(i), float64(round)))
		}
	}
	mustCheck(t, tree)
	if len(tree.nodes.slots) > 100 {
		t.Errorf("arena grew to %d slots under churn", len(tree.nodes.slots))
	}
}

func TestSearchTouchingBoundary(t *testing.T) {
	tree := NewTree()
	tree.Add(Pt(3, 3))
	tree.Add(Pt(7, 7))
	got := tree.Search(Rect(0, 0, 3, 3))
	if !samePoints(got, []Point{Pt(3, 3)}) {
		t.Errorf("expected boundary point to be found, got %v", got)
	}
	got = tree.Search(Rectangle{Min: Pt(7, 7), Max: Pt(3, 3)})
	if !samePoints(got, []Point{Pt(3, 3), Pt(7, 7)}) {
		t.Errorf("expected swapped query corners to be normalized, got %v", got)
	}
}

func TestSearchFuncStopsEarly(t *testing.T) {
	tree := NewTree()
	for i := 0; i < 30; i++ {
		tree.Add(Pt(float64(i), 0))
	}
	n := 0
	tree.SearchFunc(Rect(0, 0, 30, 0), func(p Point) bool {
		n++
		return n < 5
	})
	if n != 5 {
		t.Errorf("expected search to stop after 5 points, visited %d", n)
	}
}

func TestBoundsAndMBRs(t *testing.T) {
	tree := NewTree()
	if _, ok := tree.Bounds(); ok {
		t.Fatalf("empty tree must not have bounds")
	}
	for i := 0; i < 12; i++ {
		tree.Add(Pt(float64(i), float64(-i)))
	}
	b, ok := tree.Bounds()
	if !ok || b != Rect(0, -11, 11, 0) {
		t.Errorf("unexpected bounds %v", b)
	}
	mbrs := tree.MBRs()
	if len(mbrs) < 4 || mbrs[0] != b {
		t.Errorf("expected root MBR first among %d MBRs, got %v", len(mbrs), mbrs)
	}
}

func TestTracingEndsWithTest(t *testing.T) {
	t.Run("traced", func(t *testing.T) {
		traceToTest(t)
		tree := NewTree()
		for i := 1; i <= 5; i++ {
			tree.Add(Pt(float64(i), float64(i)))
		}
	})
	// splits trace again; this must not log into the finished subtest
	tree := NewTree()
	for i := 1; i <= 5; i++ {
		tree.Add(Pt(float64(i), float64(i)))
	}
	mustCheck(t, tree)
}
