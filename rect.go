package rtree

import (
	"fmt"
	"math"
)

// Rectangle is an axis-aligned rectangle given by its lower-left corner Min and
// its upper-right corner Max (mathematical orientation: y grows upwards).
// Well-formed rectangles satisfy Min.X <= Max.X and Min.Y <= Max.Y; use
// NewRectangle to construct one from arbitrary corners.
//
// All predicates use closed intervals, i.e. the boundary belongs to the
// rectangle.
type Rectangle struct {
	Min, Max Point
}

// NewRectangle creates the smallest rectangle having a and b as opposite corners.
func NewRectangle(a, b Point) Rectangle {
	return Rectangle{
		Min: Point{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		Max: Point{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
	}
}

// Rect is shorthand for NewRectangle(Pt(x0, y0), Pt(x1, y1)).
func Rect(x0, y0, x1, y1 float64) Rectangle {
	return NewRectangle(Pt(x0, y0), Pt(x1, y1))
}

// PointRect returns the degenerate (zero-area) rectangle holding just p.
func PointRect(p Point) Rectangle {
	return Rectangle{Min: p, Max: p}
}

// normalized swaps corner coordinates where they are out of order.
func (r Rectangle) normalized() Rectangle {
	return NewRectangle(r.Min, r.Max)
}

// Width is the extent along the x-axis.
func (r Rectangle) Width() float64 { return r.Max.X - r.Min.X }

// Height is the extent along the y-axis.
func (r Rectangle) Height() float64 { return r.Max.Y - r.Min.Y }

// Area returns Width·Height.
func (r Rectangle) Area() float64 {
	return (r.Max.X - r.Min.X) * (r.Max.Y - r.Min.Y)
}

// Center returns the midpoint of r.
func (r Rectangle) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Contains reports whether p lies inside r or on its boundary.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Intersects reports whether r and other share at least one point.
// Rectangles which merely touch intersect.
func (r Rectangle) Intersects(other Rectangle) bool {
	return r.Min.X <= other.Max.X && r.Max.X >= other.Min.X &&
		r.Min.Y <= other.Max.Y && r.Max.Y >= other.Min.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rectangle) Union(other Rectangle) Rectangle {
	return Rectangle{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Enlargement returns how much additional area r would have to grow by to
// accommodate other.
func (r Rectangle) Enlargement(other Rectangle) float64 {
	return r.Union(other).Area() - r.Area()
}

// DistanceTo returns the Euclidean distance from p to the closest point of r.
// It is 0 for points inside r or on its boundary, and a lower bound for the
// distance from p to anything contained in r.
func (r Rectangle) DistanceTo(p Point) float64 {
	dx := math.Max(0, math.Max(r.Min.X-p.X, p.X-r.Max.X))
	dy := math.Max(0, math.Max(r.Min.Y-p.Y, p.Y-r.Max.Y))
	return math.Hypot(dx, dy)
}

// extend returns r grown to include p.
func (r Rectangle) extend(p Point) Rectangle {
	return Rectangle{
		Min: Point{X: math.Min(r.Min.X, p.X), Y: math.Min(r.Min.Y, p.Y)},
		Max: Point{X: math.Max(r.Max.X, p.X), Y: math.Max(r.Max.Y, p.Y)},
	}
}

func (r Rectangle) String() string {
	return fmt.Sprintf("[%g,%g %g,%g]", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}
