package gesture

import "github.com/vovakirdan/tui-dragswap/internal/core"

// Event is something the tracker decided happened during a drag.
// Concrete types are Selected, Hovering, Dropped and Cancelled.
type Event interface {
	gestureEvent()
}

// Selected is emitted when a drag starts over a tile.
type Selected struct {
	At    core.Point
	Index int // Tile being dragged
}

func (Selected) gestureEvent() {}

// Hovering is emitted when the pointer enters a tile other than the source.
type Hovering struct {
	At     core.Point
	Source int
	Index  int // Tile under the pointer
}

func (Hovering) gestureEvent() {}

// Dropped is emitted when the pointer is released over a tile other than the
// source. The consumer is expected to swap Source and Target.
type Dropped struct {
	At     core.Point
	Source int
	Target int
}

func (Dropped) gestureEvent() {}

// Cancelled is emitted when a drag ends without a swap.
type Cancelled struct {
	Source int
}

func (Cancelled) gestureEvent() {}

// Handler receives events in the order they are emitted.
type Handler func(Event)

// Subscription is returned by Subscribe. Call Remove to stop receiving events.
type Subscription struct {
	id      uint32
	tracker *Tracker
}

// Remove unsubscribes the handler. Removing during dispatch takes effect for
// the next event. Calling Remove more than once is safe.
func (s Subscription) Remove() {
	if s.tracker == nil {
		return
	}
	s.tracker.unsubscribe(s.id)
}
