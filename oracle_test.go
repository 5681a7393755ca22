package rtree

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/dhconnelly/rtreego"
)

const oracleTolerance = 1e-6

type oraclePoint struct {
	p Point
}

func (o oraclePoint) Bounds() rtreego.Rect {
	return rtreego.Point{o.p.X, o.p.Y}.ToRect(oracleTolerance)
}

func oracleRect(t *testing.T, r Rectangle) rtreego.Rect {
	t.Helper()
	rect, err := rtreego.NewRect(rtreego.Point{r.Min.X, r.Min.Y}, []float64{r.Width(), r.Height()})
	if err != nil {
		t.Fatalf("cannot convert %v: %v", r, err)
	}
	return rect
}

// Queries use half-integer corners over integer points, so both trees agree
// regardless of how they treat boundaries.
func TestSearchAgainstRtreego(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	tree := NewTree()
	oracle := rtreego.NewTree(2, 2, 4)
	for i := 0; i < 800; i++ {
		p := Pt(float64(rnd.Intn(100)), float64(rnd.Intn(100)))
		if tree.Contains(p) {
			continue
		}
		tree.Add(p)
		oracle.Insert(oraclePoint{p})
	}
	for i := 0; i < 100; i++ {
		x, y := float64(rnd.Intn(100))+0.5, float64(rnd.Intn(100))+0.5
		w, h := float64(rnd.Intn(30)+1), float64(rnd.Intn(30)+1)
		r := Rect(x, y, x+w, y+h)
		var want []Point
		for _, s := range oracle.SearchIntersect(oracleRect(t, r)) {
			want = append(want, s.(oraclePoint).p)
		}
		if got := tree.Search(r); !samePoints(got, want) {
			t.Fatalf("search %v: rtreego found %d points, tree %d", r, len(want), len(got))
		}
	}
}

func TestNearestAgainstRtreego(t *testing.T) {
	rnd := rand.New(rand.NewSource(13))
	tree := NewTree()
	oracle := rtreego.NewTree(2, 2, 4)
	for i := 0; i < 400; i++ {
		p := Pt(float64(rnd.Intn(50)), float64(rnd.Intn(50)))
		if tree.Contains(p) {
			continue
		}
		tree.Add(p)
		oracle.Insert(oraclePoint{p})
	}
	for i := 0; i < 100; i++ {
		q := Pt(rnd.Float64()*50, rnd.Float64()*50)
		k := 1 + rnd.Intn(10)
		got := tree.NearestWithDistance(q, k)
		var want []float64
		for _, s := range oracle.NearestNeighbors(k, rtreego.Point{q.X, q.Y}) {
			if s == nil {
				continue
			}
			want = append(want, s.(oraclePoint).p.Distance(q))
		}
		sort.Float64s(want)
		if len(got) != len(want) {
			t.Fatalf("nearest(%v, %d): rtreego found %d, tree %d", q, k, len(want), len(got))
		}
		for j := range want {
			if math.Abs(got[j].Distance-want[j]) > 1e-3 {
				t.Fatalf("nearest(%v, %d) at %d: distance %g, rtreego %g",
					q, k, j, got[j].Distance, want[j])
			}
		}
	}
}
