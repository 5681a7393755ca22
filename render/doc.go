/*
Package render draws R-tree reports.

Reports from package rtree (tree snapshots, range search steps and
nearest-neighbor steps) are first turned into a Scene, a flat list of boxes
and point marks, each tagged with the Role it plays. A Scene may then be
drawn to a terminal by a Console, or written as an SVG document by SVG.

Renderers use the mathematical orientation: y grows upwards.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package render

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rtree'
func tracer() tracing.Trace {
	return tracing.Select("rtree")
}

// ErrEmptySnapshot is returned when asked to draw a scene without content.
var ErrEmptySnapshot = errors.New("render: nothing to draw")
