package render

import (
	"os"

	"golang.org/x/term"
)

// Options configure renderers. Console measures Width and Height in character
// cells, SVG in pixels. Zero values select defaults.
type Options struct {
	Width, Height int
	Colors        bool // colored console output, ignored by SVG
}

const defaultWidth = 72

// TerminalWidth returns a drawing width suitable for stdout. If stdout is not
// a terminal, a default width is returned.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return defaultWidth
	}
	switch {
	case w > 80:
		w -= 8
	case w < 20:
		w = 20
	}
	tracer().Debugf("render: terminal width %d", w)
	return w
}

// console returns the options with defaults for character output. Character
// cells are about twice as high as wide.
func (o Options) console() Options {
	if o.Width <= 0 {
		o.Width = TerminalWidth()
	}
	if o.Width < 8 {
		o.Width = 8
	}
	if o.Height <= 0 {
		o.Height = o.Width / 3
	}
	if o.Height < 4 {
		o.Height = 4
	}
	return o
}

// svg returns the options with defaults for SVG output.
func (o Options) svg() Options {
	if o.Width <= 0 {
		o.Width = 480
	}
	if o.Height <= 0 {
		o.Height = o.Width
	}
	return o
}
