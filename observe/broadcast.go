package observe

import (
	"context"
	"time"

	"github.com/guiguan/caster"
	"github.com/npillmayer/rtree"
)

// Broadcaster is an rtree.Observer which publishes every report as an Event
// to all current subscribers. Events are delivered to each subscriber in
// the order they were reported.
//
// A plain Broadcaster blocks the reporting tree until every subscriber has
// room for the event. A lossy Broadcaster drops events instead.
type Broadcaster struct {
	cast  *caster.Caster // fan-out to subscriber channels
	lossy bool
}

// NewBroadcaster creates a broadcaster which stops publishing when ctx is done.
func NewBroadcaster(ctx context.Context) *Broadcaster {
	return &Broadcaster{cast: caster.New(ctx)}
}

// NewLossyBroadcaster creates a broadcaster which never blocks the tree.
// Events which cannot be handed over immediately are dropped.
func NewLossyBroadcaster(ctx context.Context) *Broadcaster {
	return &Broadcaster{cast: caster.New(ctx), lossy: true}
}

func (b *Broadcaster) publish(e Event) {
	if b.lossy {
		if !b.cast.TryPub(e) {
			tracer().Debugf("observe: dropped %s event", e.Kind)
		}
		return
	}
	b.cast.Pub(e)
}

// TreeChanged is part of interface rtree.Observer.
func (b *Broadcaster) TreeChanged(s rtree.TreeSnapshot) { b.publish(Event{Kind: KindTree, Tree: s}) }

// SearchStep is part of interface rtree.Observer.
func (b *Broadcaster) SearchStep(s rtree.SearchStep) { b.publish(Event{Kind: KindSearch, Search: s}) }

// KNNStep is part of interface rtree.Observer.
func (b *Broadcaster) KNNStep(s rtree.KNNStep) { b.publish(Event{Kind: KindKNN, KNN: s}) }

// Subscribe starts a goroutine calling fn for every event published from now
// on. capacity is the number of events buffered for this subscriber.
// The subscription ends when ctx is done or the broadcaster is closed; fn is
// not called any more once ctx is done. The returned channel is closed after
// fn has returned for the last time.
func (b *Broadcaster) Subscribe(ctx context.Context, capacity uint, fn func(Event)) <-chan struct{} {
	done := make(chan struct{})
	ch, ok := b.cast.Sub(ctx, capacity)
	if !ok {
		tracer().Infof("observe: subscribe to closed broadcaster")
		close(done)
		return done
	}
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				b.unsubscribe(ch)
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				if ctx.Err() != nil {
					b.unsubscribe(ch)
					return
				}
				if e, ok := msg.(Event); ok {
					fn(e)
				}
			}
		}
	}()
	return done
}

// unsubscribe removes ch from the caster. ch is drained meanwhile, so that a
// publisher blocked on it cannot hold up the removal.
func (b *Broadcaster) unsubscribe(ch chan interface{}) {
	go func() {
		for range ch {
		}
	}()
	b.cast.Unsub(ch)
	tracer().Debugf("observe: subscriber left")
}

// Close ends all subscriptions. Events reported after Close are dropped.
func (b *Broadcaster) Close() {
	b.cast.Close()
}

// Done is closed when the broadcaster has been closed or its context is done.
func (b *Broadcaster) Done() <-chan struct{} {
	return b.cast.Done()
}

// Pace wraps fn to wait for delay after every event, giving viewers time to
// follow. Waiting stops early when ctx is done, and fn is not called any more.
func Pace(ctx context.Context, delay time.Duration, fn func(Event)) func(Event) {
	return func(e Event) {
		if ctx.Err() != nil {
			return
		}
		fn(e)
		if delay <= 0 {
			return
		}
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
		}
	}
}
