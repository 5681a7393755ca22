package render

import (
	"io"
	"math"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/rtree"
)

// Console draws scenes as character plots, for terminals with a fixed-width
// font.
type Console struct {
	opts    Options
	palette map[Role]*color.Color
	depths  []*color.Color // node colors, cycled by depth
}

// NewConsole creates a console renderer. Zero options are replaced by
// defaults derived from the terminal.
func NewConsole(opts Options) *Console {
	return &Console{
		opts:    opts.console(),
		palette: makeDefaultPalette(),
		depths: []*color.Color{
			color.New(color.FgBlue),
			color.New(color.FgCyan),
			color.New(color.FgGreen),
			color.New(color.FgMagenta),
		},
	}
}

func makeDefaultPalette() map[Role]*color.Color {
	palette := map[Role]*color.Color{
		RolePruned:    color.New(color.FgHiBlack),
		RoleVisited:   color.New(color.FgYellow),
		RoleActive:    color.New(color.FgYellow, color.Bold),
		RoleQuery:     color.New(color.FgRed),
		RolePoint:     color.New(color.FgWhite),
		RoleCandidate: color.New(color.FgYellow),
		RoleEvicted:   color.New(color.FgHiBlack),
		RoleResult:    color.New(color.FgGreen, color.Bold),
		RoleSource:    color.New(color.FgRed, color.Bold),
	}
	return palette
}

var markRunes = map[Role]rune{
	RolePoint:     '•',
	RoleCandidate: 'o',
	RoleEvicted:   'x',
	RoleResult:    '*',
	RoleSource:    '@',
}

type cell struct {
	r     rune
	role  Role
	depth int
	set   bool
}

type grid struct {
	cells [][]cell
	vp    viewport
}

func newGrid(width, height int, world rtree.Rectangle) *grid {
	g := &grid{
		cells: make([][]cell, height),
		vp:    newViewport(world, float64(width-1), float64(height-1)),
	}
	for i := range g.cells {
		g.cells[i] = make([]cell, width)
	}
	return g
}

func (g *grid) put(col, row int, c cell) {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= len(g.cells[row]) {
		return
	}
	g.cells[row][col] = c
}

func (g *grid) col(x float64) int { return int(math.Round(g.vp.x(x))) }
func (g *grid) row(y float64) int { return int(math.Round(g.vp.y(y))) }

func (g *grid) box(b Box) {
	c0, c1 := g.col(b.Rect.Min.X), g.col(b.Rect.Max.X)
	r0, r1 := g.row(b.Rect.Max.Y), g.row(b.Rect.Min.Y)
	edge := func(r rune) cell { return cell{r: r, role: b.Role, depth: b.Depth, set: true} }
	for c := c0; c <= c1; c++ {
		g.put(c, r0, edge('-'))
		g.put(c, r1, edge('-'))
	}
	for r := r0; r <= r1; r++ {
		g.put(c0, r, edge('|'))
		g.put(c1, r, edge('|'))
	}
	for _, c := range []int{c0, c1} {
		g.put(c, r0, edge('+'))
		g.put(c, r1, edge('+'))
	}
}

func (g *grid) mark(m Mark) {
	r, ok := markRunes[m.Role]
	if !ok {
		r = '•'
	}
	g.put(g.col(m.Point.X), g.row(m.Point.Y), cell{r: r, role: m.Role, set: true})
}

// Draw writes sc to w. It returns ErrEmptySnapshot for a scene without content.
func (c *Console) Draw(w io.Writer, sc Scene) error {
	world, ok := sc.Bounds()
	if !ok {
		return ErrEmptySnapshot
	}
	g := newGrid(c.opts.Width, c.opts.Height, world)
	boxes := append([]Box(nil), sc.Boxes...)
	sort.SliceStable(boxes, func(i, j int) bool { return boxes[i].Role < boxes[j].Role })
	for _, b := range boxes {
		g.box(b)
	}
	marks := append([]Mark(nil), sc.Marks...)
	sort.SliceStable(marks, func(i, j int) bool { return marks[i].Role < marks[j].Role })
	for _, m := range marks {
		g.mark(m)
	}
	var err error
	write := func(s string, col *color.Color) {
		if err != nil || s == "" {
			return
		}
		if col != nil && c.opts.Colors {
			_, err = col.Fprint(w, s)
			return
		}
		_, err = io.WriteString(w, s)
	}
	if sc.Title != "" {
		write(sc.Title+"\n", nil)
	}
	for _, row := range g.cells {
		last := len(row) - 1
		for last >= 0 && !row[last].set {
			last--
		}
		var run strings.Builder
		var runColor *color.Color
		for i := 0; i <= last; i++ {
			col, r := c.colorOf(row[i]), ' '
			if row[i].set {
				r = row[i].r
			}
			if col != runColor && run.Len() > 0 {
				write(run.String(), runColor)
				run.Reset()
			}
			runColor = col
			run.WriteRune(r)
		}
		write(run.String(), runColor)
		write("\n", nil)
	}
	if err != nil {
		tracer().Errorf("render console: %s", err.Error())
	}
	return err
}

func (c *Console) colorOf(x cell) *color.Color {
	if !x.set {
		return nil
	}
	if x.role == RoleNode {
		return c.depths[x.depth%len(c.depths)]
	}
	return c.palette[x.role]
}
