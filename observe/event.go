package observe

import "github.com/npillmayer/rtree"

// Kind tells which report an Event carries.
type Kind int8

// Kinds of events.
const (
	KindTree Kind = iota
	KindSearch
	KindKNN
)

func (k Kind) String() string {
	switch k {
	case KindTree:
		return "tree"
	case KindSearch:
		return "search"
	case KindKNN:
		return "knn"
	}
	return "unknown"
}

// Event wraps a single observer report. Only the field matching Kind is set.
type Event struct {
	Kind   Kind
	Tree   rtree.TreeSnapshot
	Search rtree.SearchStep
	KNN    rtree.KNNStep
}

// Done reports whether e is the final step of a search. Tree events are
// always complete.
func (e Event) Done() bool {
	switch e.Kind {
	case KindSearch:
		return e.Search.Done
	case KindKNN:
		return e.KNN.Done
	}
	return true
}

// Sink adapts a function to rtree.Observer.
type Sink func(Event)

// TreeChanged is part of interface rtree.Observer.
func (fn Sink) TreeChanged(s rtree.TreeSnapshot) { fn(Event{Kind: KindTree, Tree: s}) }

// SearchStep is part of interface rtree.Observer.
func (fn Sink) SearchStep(s rtree.SearchStep) { fn(Event{Kind: KindSearch, Search: s}) }

// KNNStep is part of interface rtree.Observer.
func (fn Sink) KNNStep(s rtree.KNNStep) { fn(Event{Kind: KindKNN, KNN: s}) }

// Tee returns an observer forwarding every report to all of observers, in
// order. Nil observers are skipped.
func Tee(observers ...rtree.Observer) rtree.Observer {
	var obs []rtree.Observer
	for _, o := range observers {
		if o != nil {
			obs = append(obs, o)
		}
	}
	return Sink(func(e Event) {
		for _, o := range obs {
			deliver(o, e)
		}
	})
}

func deliver(o rtree.Observer, e Event) {
	switch e.Kind {
	case KindTree:
		o.TreeChanged(e.Tree)
	case KindSearch:
		o.SearchStep(e.Search)
	case KindKNN:
		o.KNNStep(e.KNN)
	}
}
