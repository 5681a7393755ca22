package rtree

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestOrbConversion(t *testing.T) {
	p := FromOrb(orb.Point{3, -4})
	if p != Pt(3, -4) {
		t.Fatalf("unexpected point %v", p)
	}
	if o := p.Orb(); o.X() != 3 || o.Y() != -4 {
		t.Errorf("unexpected orb point %v", o)
	}
	b := orb.Bound{Min: orb.Point{1, 2}, Max: orb.Point{5, 7}}
	r := RectangleFromBound(b)
	if r != Rect(1, 2, 5, 7) {
		t.Fatalf("unexpected rectangle %v", r)
	}
	if r.Bound() != b {
		t.Errorf("round trip changed bound to %v", r.Bound())
	}
}

func TestSearchWithOrbBound(t *testing.T) {
	tree := NewTree()
	for _, p := range []orb.Point{{0, 0}, {1, 1}, {2, 2}, {8, 8}} {
		tree.Add(FromOrb(p))
	}
	b := orb.Bound{Min: orb.Point{0.5, 0.5}, Max: orb.Point{3, 3}}
	got := tree.Search(RectangleFromBound(b))
	if !samePoints(got, []Point{Pt(1, 1), Pt(2, 2)}) {
		t.Errorf("expected (1,1) and (2,2), got %v", got)
	}
}
