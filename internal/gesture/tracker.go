// Package gesture implements the drag-to-swap state machine.
//
// A Tracker consumes pointer down/move/up events, resolves them to tiles with
// the rectangles supplied by the presentation layer, and publishes what
// happened (Selected, Hovering, Dropped, Cancelled). It never touches the
// image store and never renders; subscribers decide how to react.
package gesture

import (
	"slices"

	"github.com/vovakirdan/tui-dragswap/internal/core"
	"github.com/vovakirdan/tui-dragswap/internal/grid"
)

// State is the tracker's drag state.
type State int

const (
	StateIdle State = iota
	StateDragging
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateDragging:
		return "Dragging"
	default:
		return "Unknown"
	}
}

// RectProvider supplies the current on-screen rectangles of the tiles,
// indexed by tile position.
type RectProvider interface {
	TileRects() []core.Rect
}

// RectsFunc adapts a function to RectProvider.
type RectsFunc func() []core.Rect

// TileRects calls f.
func (f RectsFunc) TileRects() []core.Rect {
	return f()
}

const none = -1

type subscriber struct {
	id uint32
	fn Handler
}

// Tracker is the drag gesture state machine.
// It is driven from a single event loop and is not safe for concurrent use.
type Tracker struct {
	rects  RectProvider
	source int
	hover  int

	subs   []subscriber
	nextID uint32
}

// NewTracker creates an idle tracker that hit-tests against rects.
func NewTracker(rects RectProvider) *Tracker {
	return &Tracker{
		rects:  rects,
		source: none,
		hover:  none,
	}
}

// Subscribe registers fn for every event emitted from now on.
func (t *Tracker) Subscribe(fn Handler) Subscription {
	t.nextID++
	t.subs = append(t.subs, subscriber{id: t.nextID, fn: fn})
	return Subscription{id: t.nextID, tracker: t}
}

func (t *Tracker) unsubscribe(id uint32) {
	// Copy so a dispatch in progress keeps iterating its own snapshot.
	t.subs = slices.DeleteFunc(slices.Clone(t.subs), func(s subscriber) bool {
		return s.id == id
	})
}

func (t *Tracker) emit(ev Event) Event {
	for _, s := range t.subs {
		s.fn(ev)
	}
	return ev
}

// State returns Idle or Dragging.
func (t *Tracker) State() State {
	if t.source == none {
		return StateIdle
	}
	return StateDragging
}

// Source returns the tile being dragged.
func (t *Tracker) Source() (int, bool) {
	return t.source, t.source != none
}

// Hover returns the tile currently hovered during a drag.
// It is never the source tile.
func (t *Tracker) Hover() (int, bool) {
	return t.hover, t.hover != none
}

func (t *Tracker) tileAt(p core.Point) (int, bool) {
	if t.rects == nil {
		return none, false
	}
	return grid.TileAt(p, t.rects.TileRects())
}

// PointerDown starts a drag when p is over a tile.
// A down received mid-drag cancels that drag first, then is handled as if
// the tracker were idle. Returns the last emitted event, or nil.
func (t *Tracker) PointerDown(p core.Point) Event {
	var last Event
	if t.State() == StateDragging {
		last = t.Cancel()
	}

	index, ok := t.tileAt(p)
	if !ok {
		return last
	}
	t.source = index
	t.hover = none
	return t.emit(Selected{At: p, Index: index})
}

// PointerMove updates the hovered tile during a drag.
// Hovering is emitted only when the pointer enters a new non-source tile;
// leaving all tiles or returning to the source clears the hover silently.
func (t *Tracker) PointerMove(p core.Point) Event {
	if t.State() != StateDragging {
		return nil
	}

	target, ok := t.tileAt(p)
	if !ok || target == t.source {
		t.hover = none
		return nil
	}
	if target == t.hover {
		return nil
	}
	t.hover = target
	return t.emit(Hovering{At: p, Source: t.source, Index: target})
}

// PointerUp ends a drag. Over a tile other than the source it emits Dropped,
// otherwise Cancelled. The tracker is idle afterwards either way.
func (t *Tracker) PointerUp(p core.Point) Event {
	if t.State() != StateDragging {
		return nil
	}

	source := t.source
	t.reset()

	target, ok := t.tileAt(p)
	if !ok || target == source {
		return t.emit(Cancelled{Source: source})
	}
	return t.emit(Dropped{At: p, Source: source, Target: target})
}

// Cancel aborts an active drag and emits Cancelled. It does nothing when idle.
func (t *Tracker) Cancel() Event {
	if t.State() != StateDragging {
		return nil
	}
	source := t.source
	t.reset()
	return t.emit(Cancelled{Source: source})
}

func (t *Tracker) reset() {
	t.source = none
	t.hover = none
}
