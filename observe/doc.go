/*
Package observe connects R-tree observers to the outside world.

A tree reports every mutation and every search step synchronously to its
rtree.Observer. Recorder keeps these reports for later inspection. Broadcaster
publishes them to any number of subscribers, each running on its own goroutine,
so that a visualizer may consume reports at its own pace:

	b := observe.NewBroadcaster(ctx)
	tree, _ := rtree.New(rtree.Config{Observer: b})
	done := b.Subscribe(ctx, 16, observe.Pace(ctx, 200*time.Millisecond, draw))
	...
	b.Close()
	<-done

Pacing happens in the subscriber. The tree never waits for anything but the
hand-over of a report.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package observe

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rtree'
func tracer() tracing.Trace {
	return tracing.Select("rtree")
}
