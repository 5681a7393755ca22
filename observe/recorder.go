package observe

import (
	"sync"

	"github.com/npillmayer/rtree"
)

// Recorder is an rtree.Observer which keeps every report it receives.
// It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// TreeChanged is part of interface rtree.Observer.
func (r *Recorder) TreeChanged(s rtree.TreeSnapshot) { r.record(Event{Kind: KindTree, Tree: s}) }

// SearchStep is part of interface rtree.Observer.
func (r *Recorder) SearchStep(s rtree.SearchStep) { r.record(Event{Kind: KindSearch, Search: s}) }

// KNNStep is part of interface rtree.Observer.
func (r *Recorder) KNNStep(s rtree.KNNStep) { r.record(Event{Kind: KindKNN, KNN: s}) }

// Events returns a copy of all recorded events, oldest first.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Last returns the most recent event of kind k.
func (r *Recorder) Last(k Kind) (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Kind == k {
			return r.events[i], true
		}
	}
	return Event{}, false
}

// Snapshots returns all recorded tree snapshots, oldest first.
func (r *Recorder) Snapshots() []rtree.TreeSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	var s []rtree.TreeSnapshot
	for _, e := range r.events {
		if e.Kind == KindTree {
			s = append(s, e.Tree)
		}
	}
	return s
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
