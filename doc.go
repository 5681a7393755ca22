/*
Package rtree implements a 4-way R-tree, a balanced spatial index over points
in the plane.

Every node of the tree caches its minimum bounding rectangle (MBR). Leaves hold
up to MaxEntries points, internal nodes hold up to MaxEntries child nodes, and
every node except the root holds at least MinEntries entries. All leaves live at
the same depth.

Insertion descends to the leaf whose MBR needs the least enlargement and splits
overflowing nodes into two groups seeded by the most distant entries. Deletion
condenses the path to the root, removing underfull nodes and reinserting their
points. Range search and k-nearest-neighbor search prune subtrees by their MBR;
for nearest neighbors the distance from the query point to an MBR is a lower
bound for any point stored below it, which makes best-first branch-and-bound
search exact.

Nodes live in an arena and refer to each other by index. A node's parent is a
plain index used for walking upwards only; ownership is expressed by the child
lists alone.

A tree is not safe for concurrent use. Clients which share a tree between
goroutines have to serialize access themselves.

Observers

Clients may install an Observer to receive read-only reports after structural
changes and for every step of a range search or nearest-neighbor search. Reports
are deep copies, observers have no way of influencing the algorithms.
Sub-package observe offers fan-out to asynchronous subscribers, sub-package
render draws reports to a terminal or to SVG.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.

*/
package rtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
