package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"golang.org/x/net/html"
)

const svgMargin = 10

var svgColors = map[Role]string{
	RolePruned:    "#b0b0b0",
	RoleVisited:   "#e0a000",
	RoleActive:    "#e0a000",
	RoleQuery:     "#d02020",
	RolePoint:     "#303030",
	RoleCandidate: "#e0a000",
	RoleEvicted:   "#b0b0b0",
	RoleResult:    "#20a020",
	RoleSource:    "#d02020",
}

var svgDepthColors = []string{"#2050c0", "#20a0c0", "#20a060", "#a040a0"}

func svgColor(role Role, depth int) string {
	if role == RoleNode {
		return svgDepthColors[depth%len(svgDepthColors)]
	}
	return svgColors[role]
}

// element creates an element node with attributes given as key/value pairs.
func element(tag string, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func num(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}

// SVG writes sc to w as a standalone SVG document. It returns ErrEmptySnapshot
// for a scene without content.
func SVG(w io.Writer, sc Scene, opts Options) error {
	world, ok := sc.Bounds()
	if !ok {
		return ErrEmptySnapshot
	}
	opts = opts.svg()
	vp := newViewport(world, float64(opts.Width-2*svgMargin), float64(opts.Height-2*svgMargin))
	root := element("svg",
		"xmlns", "http://www.w3.org/2000/svg",
		"width", strconv.Itoa(opts.Width),
		"height", strconv.Itoa(opts.Height),
		"viewBox", fmt.Sprintf("0 0 %d %d", opts.Width, opts.Height))
	if sc.Title != "" {
		title := element("title")
		title.AppendChild(&html.Node{Type: html.TextNode, Data: sc.Title})
		root.AppendChild(title)
	}
	g := element("g", "transform", fmt.Sprintf("translate(%d,%d)", svgMargin, svgMargin))
	root.AppendChild(g)
	boxes := append([]Box(nil), sc.Boxes...)
	sort.SliceStable(boxes, func(i, j int) bool { return boxes[i].Role < boxes[j].Role })
	for _, b := range boxes {
		x0, x1 := vp.x(b.Rect.Min.X), vp.x(b.Rect.Max.X)
		y0, y1 := vp.y(b.Rect.Max.Y), vp.y(b.Rect.Min.Y)
		g.AppendChild(element("rect",
			"class", b.Role.String(),
			"x", num(x0), "y", num(y0),
			"width", num(x1-x0), "height", num(y1-y0),
			"fill", "none",
			"stroke", svgColor(b.Role, b.Depth)))
	}
	marks := append([]Mark(nil), sc.Marks...)
	sort.SliceStable(marks, func(i, j int) bool { return marks[i].Role < marks[j].Role })
	for _, m := range marks {
		radius := "3"
		if m.Role == RoleSource {
			radius = "5"
		}
		g.AppendChild(element("circle",
			"class", m.Role.String(),
			"cx", num(vp.x(m.Point.X)), "cy", num(vp.y(m.Point.Y)),
			"r", radius,
			"fill", svgColor(m.Role, 0)))
	}
	if err := html.Render(w, root); err != nil {
		tracer().Errorf("render SVG: %s", err.Error())
		return err
	}
	return nil
}
