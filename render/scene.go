package render

import (
	"github.com/npillmayer/rtree"
)

// Role tells what a box or mark stands for. Roles with higher values are
// drawn on top.
type Role int8

// Roles of scene elements.
const (
	RoleNode      Role = iota // MBR of a tree node
	RolePruned                // node skipped by a search
	RoleVisited               // node descended into by a search
	RoleActive                // node currently processed by a nearest-neighbor search
	RoleQuery                 // query rectangle of a range search
	RolePoint                 // stored point
	RoleCandidate             // point examined by a nearest-neighbor search
	RoleEvicted               // point pushed out of a nearest-neighbor result
	RoleResult                // point found by a search
	RoleSource                // source point of a nearest-neighbor search
)

var roleNames = [...]string{"node", "pruned", "visited", "active", "query",
	"point", "candidate", "evicted", "result", "source"}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return "unknown"
	}
	return roleNames[r]
}

// Box is a rectangle of a scene.
type Box struct {
	Rect  rtree.Rectangle
	Role  Role
	Depth int // tree depth for RoleNode, 0 otherwise
}

// Mark is a point of a scene.
type Mark struct {
	Point rtree.Point
	Role  Role
}

// Scene is a renderer-independent description of a drawing.
type Scene struct {
	Title string
	Boxes []Box
	Marks []Mark
}

// TreeScene shows all nodes and points of a snapshot.
func TreeScene(s rtree.TreeSnapshot) Scene {
	sc := Scene{Title: "tree"}
	if s.Op != rtree.OpNone {
		sc.Title = s.Op.String() + " " + s.Point.String()
	}
	for _, n := range s.Nodes {
		sc.Boxes = append(sc.Boxes, Box{Rect: n.MBR, Role: RoleNode, Depth: n.Depth})
	}
	for _, p := range s.Points {
		sc.Marks = append(sc.Marks, Mark{Point: p, Role: RolePoint})
	}
	return sc
}

// SearchScene shows the state of a range search.
func SearchScene(step rtree.SearchStep) Scene {
	sc := Scene{Title: "search " + step.Query.String()}
	for _, r := range step.Pruned {
		sc.Boxes = append(sc.Boxes, Box{Rect: r, Role: RolePruned})
	}
	for _, r := range step.Visited {
		sc.Boxes = append(sc.Boxes, Box{Rect: r, Role: RoleVisited})
	}
	sc.Boxes = append(sc.Boxes, Box{Rect: step.Query, Role: RoleQuery})
	for _, p := range step.Results {
		sc.Marks = append(sc.Marks, Mark{Point: p, Role: RoleResult})
	}
	return sc
}

// KNNScene shows the state of a nearest-neighbor search.
func KNNScene(step rtree.KNNStep) Scene {
	sc := Scene{Title: "nearest " + step.Source.String()}
	for _, r := range step.Pruned {
		sc.Boxes = append(sc.Boxes, Box{Rect: r, Role: RolePruned})
	}
	for _, r := range step.Active {
		sc.Boxes = append(sc.Boxes, Box{Rect: r, Role: RoleActive})
	}
	for _, p := range step.Candidates {
		sc.Marks = append(sc.Marks, Mark{Point: p, Role: RoleCandidate})
	}
	for _, p := range step.Evicted {
		sc.Marks = append(sc.Marks, Mark{Point: p, Role: RoleEvicted})
	}
	for _, p := range step.Results {
		sc.Marks = append(sc.Marks, Mark{Point: p, Role: RoleResult})
	}
	sc.Marks = append(sc.Marks, Mark{Point: step.Source, Role: RoleSource})
	return sc
}

// Overlay returns a scene drawing top over sc. The title of top wins if set.
func (sc Scene) Overlay(top Scene) Scene {
	out := Scene{Title: sc.Title}
	if top.Title != "" {
		out.Title = top.Title
	}
	out.Boxes = append(append(out.Boxes, sc.Boxes...), top.Boxes...)
	out.Marks = append(append(out.Marks, sc.Marks...), top.Marks...)
	return out
}

// IsEmpty reports whether sc has nothing to draw.
func (sc Scene) IsEmpty() bool {
	return len(sc.Boxes) == 0 && len(sc.Marks) == 0
}

// Bounds returns the rectangle enclosing all boxes and marks of sc.
func (sc Scene) Bounds() (rtree.Rectangle, bool) {
	var r rtree.Rectangle
	ok := false
	add := func(b rtree.Rectangle) {
		if ok {
			r = r.Union(b)
		} else {
			r, ok = b, true
		}
	}
	for _, b := range sc.Boxes {
		add(b.Rect)
	}
	for _, m := range sc.Marks {
		add(rtree.PointRect(m.Point))
	}
	return r, ok
}

// viewport maps scene coordinates to a target area of w × h units with the
// origin at the top left corner.
type viewport struct {
	world rtree.Rectangle
	w, h  float64
}

func newViewport(world rtree.Rectangle, w, h float64) viewport {
	return viewport{world: world, w: w, h: h}
}

func (v viewport) x(x float64) float64 {
	span := v.world.Width()
	if span == 0 {
		return v.w / 2
	}
	return (x - v.world.Min.X) / span * v.w
}

func (v viewport) y(y float64) float64 {
	span := v.world.Height()
	if span == 0 {
		return v.h / 2
	}
	return v.h - (y-v.world.Min.Y)/span*v.h
}
