// Package coordinator wires the image store to the drag gesture tracker.
//
// The tracker decides what a gesture means; the coordinator applies Dropped
// decisions to the store and tells subscribers the order changed. Rendering
// and animation stay with whoever subscribes.
package coordinator

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dragswap/internal/core"
	"github.com/vovakirdan/tui-dragswap/internal/gallery"
	"github.com/vovakirdan/tui-dragswap/internal/gesture"
)

// SwapRecord describes a completed swap.
type SwapRecord struct {
	Session string
	Source  int
	Target  int
	Order   []gallery.Image // Order after the swap
}

// SwapRecorder persists completed swaps. Failures are logged and ignored.
type SwapRecorder interface {
	RecordSwap(rec SwapRecord) error
}

// ImagesHandler receives the new image order after it changes.
type ImagesHandler func(images []gallery.Image)

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRecorder records every completed swap under the given session name.
func WithRecorder(rec SwapRecorder, session string) Option {
	return func(c *Coordinator) {
		c.recorder = rec
		c.session = session
	}
}

type imagesSub struct {
	id uint32
	fn ImagesHandler
}

// Coordinator owns one grid screen's store and tracker.
// Like the tracker it runs on a single event loop.
type Coordinator struct {
	store    *gallery.Store
	tracker  *gesture.Tracker
	logger   *log.Logger
	recorder SwapRecorder
	session  string

	changed []imagesSub
	nextID  uint32
	swaps   int
}

// New creates a coordinator over store, hit-testing against rects.
func New(store *gallery.Store, rects gesture.RectProvider, opts ...Option) *Coordinator {
	c := &Coordinator{
		store:   store,
		tracker: gesture.NewTracker(rects),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tracker exposes the gesture state for read-only queries.
func (c *Coordinator) Tracker() *gesture.Tracker {
	return c.tracker
}

// Images returns the current order.
func (c *Coordinator) Images() []gallery.Image {
	return c.store.List()
}

// Tiles returns the current grid as index/image pairs.
func (c *Coordinator) Tiles() []gallery.Tile {
	return c.store.Tiles()
}

// Swaps returns how many swaps were applied since the coordinator started.
func (c *Coordinator) Swaps() int {
	return c.swaps
}

// Subscribe registers fn for gesture events.
func (c *Coordinator) Subscribe(fn gesture.Handler) gesture.Subscription {
	return c.tracker.Subscribe(fn)
}

// OnImagesChanged registers fn to run after every change of order.
// The returned func unsubscribes.
func (c *Coordinator) OnImagesChanged(fn ImagesHandler) (remove func()) {
	c.nextID++
	id := c.nextID
	c.changed = append(c.changed, imagesSub{id: id, fn: fn})
	return func() {
		c.changed = slices.DeleteFunc(slices.Clone(c.changed), func(s imagesSub) bool {
			return s.id == id
		})
	}
}

// PointerDown forwards a press at (x, y).
func (c *Coordinator) PointerDown(x, y int) gesture.Event {
	ev := c.tracker.PointerDown(core.Pt(x, y))
	if sel, ok := ev.(gesture.Selected); ok {
		c.logger.Debug("tile selected", "index", sel.Index, "x", x, "y", y)
	}
	return ev
}

// PointerMove forwards pointer motion to (x, y).
func (c *Coordinator) PointerMove(x, y int) gesture.Event {
	return c.tracker.PointerMove(core.Pt(x, y))
}

// PointerUp forwards a release at (x, y) and applies a resulting drop.
func (c *Coordinator) PointerUp(x, y int) gesture.Event {
	ev := c.tracker.PointerUp(core.Pt(x, y))
	switch e := ev.(type) {
	case gesture.Dropped:
		c.applyDrop(e)
	case gesture.Cancelled:
		c.logger.Debug("drag cancelled", "source", e.Source)
	}
	return ev
}

// Cancel aborts an active drag.
func (c *Coordinator) Cancel() {
	if ev := c.tracker.Cancel(); ev != nil {
		c.logger.Debug("drag aborted")
	}
}

// Reset aborts any drag and restores the initial order.
func (c *Coordinator) Reset() {
	c.Cancel()
	c.store.Reset()
	c.logger.Info("grid reset")
	c.publish()
}

func (c *Coordinator) applyDrop(d gesture.Dropped) {
	if err := c.store.Swap(d.Source, d.Target); err != nil {
		// Rects and store disagree on the grid size: a wiring bug.
		c.logger.Error("swap rejected", "source", d.Source, "target", d.Target, "error", err)
		return
	}
	c.swaps++
	order := c.store.List()
	c.logger.Debug("tiles swapped", "source", d.Source, "target", d.Target)

	c.publish()

	if c.recorder != nil {
		rec := SwapRecord{Session: c.session, Source: d.Source, Target: d.Target, Order: order}
		if err := c.recorder.RecordSwap(rec); err != nil {
			c.logger.Warn("could not record swap", "error", err)
		}
	}
}

func (c *Coordinator) publish() {
	images := c.store.List()
	for _, s := range c.changed {
		s.fn(slices.Clone(images))
	}
}
