package rtree

import "github.com/paulmach/orb"

// FromOrb converts an orb point.
func FromOrb(p orb.Point) Point {
	return Point{X: p.X(), Y: p.Y()}
}

// Orb converts p to an orb point.
func (p Point) Orb() orb.Point {
	return orb.Point{p.X, p.Y}
}

// RectangleFromBound converts an orb bound.
func RectangleFromBound(b orb.Bound) Rectangle {
	return NewRectangle(FromOrb(b.Min), FromOrb(b.Max))
}

// Bound converts r to an orb bound.
func (r Rectangle) Bound() orb.Bound {
	return orb.Bound{Min: r.Min.Orb(), Max: r.Max.Orb()}
}
