package coordinator

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-dragswap/internal/core"
	"github.com/vovakirdan/tui-dragswap/internal/gallery"
	"github.com/vovakirdan/tui-dragswap/internal/gesture"
)

var (
	rects = gesture.RectsFunc(func() []core.Rect {
		return []core.Rect{
			core.NewRect(0, 0, 10, 5),
			core.NewRect(12, 0, 10, 5),
			core.NewRect(0, 7, 10, 5),
			core.NewRect(12, 7, 10, 5),
		}
	})
	centers = []core.Point{core.Pt(5, 2), core.Pt(17, 2), core.Pt(5, 9), core.Pt(17, 9)}
)

type fakeRecorder struct {
	records []SwapRecord
	err     error
}

func (f *fakeRecorder) RecordSwap(rec SwapRecord) error {
	f.records = append(f.records, rec)
	return f.err
}

func names(imgs []gallery.Image) []string {
	out := make([]string, len(imgs))
	for i, img := range imgs {
		out[i] = img.Name
	}
	return out
}

func newCoordinator(t *testing.T, opts ...Option) *Coordinator {
	t.Helper()
	store, err := gallery.NewStore([]gallery.Image{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}})
	require.NoError(t, err)
	return New(store, rects, opts...)
}

// timeline records gesture events and image changes in one ordered list.
type timeline struct {
	entries []string
}

func watch(c *Coordinator) *timeline {
	tl := &timeline{}
	c.Subscribe(func(ev gesture.Event) {
		switch ev.(type) {
		case gesture.Selected:
			tl.entries = append(tl.entries, "Selected")
		case gesture.Hovering:
			tl.entries = append(tl.entries, "Hovering")
		case gesture.Dropped:
			tl.entries = append(tl.entries, "Dropped")
		case gesture.Cancelled:
			tl.entries = append(tl.entries, "Cancelled")
		}
	})
	c.OnImagesChanged(func(images []gallery.Image) {
		tl.entries = append(tl.entries, fmt.Sprintf("ImagesChanged%v", names(images)))
	})
	return tl
}

func TestDragFirstOntoLast(t *testing.T) {
	c := newCoordinator(t)

	c.PointerDown(centers[0].X, centers[0].Y)
	c.PointerUp(centers[3].X, centers[3].Y)

	assert.Equal(t, []string{"D", "B", "C", "A"}, names(c.Images()))
	assert.Equal(t, 1, c.Swaps())
}

func TestDropEmitsEventsThenImagesChanged(t *testing.T) {
	c := newCoordinator(t)
	tl := watch(c)

	c.PointerDown(centers[0].X, centers[0].Y)
	c.PointerMove(centers[1].X, centers[1].Y)
	c.PointerMove(centers[1].X+1, centers[1].Y)
	c.PointerUp(centers[1].X, centers[1].Y)

	assert.Equal(t, []string{
		"Selected",
		"Hovering",
		"Dropped",
		"ImagesChanged[B A C D]",
	}, tl.entries)
}

func TestSameTileReleaseDoesNotChangeImages(t *testing.T) {
	c := newCoordinator(t)
	tl := watch(c)

	c.PointerDown(centers[2].X, centers[2].Y)
	c.PointerUp(centers[2].X, centers[2].Y)

	assert.Equal(t, []string{"Selected", "Cancelled"}, tl.entries)
	assert.Equal(t, []string{"A", "B", "C", "D"}, names(c.Images()))
	assert.Zero(t, c.Swaps())
}

func TestPressOutsideGridDoesNothing(t *testing.T) {
	c := newCoordinator(t)
	tl := watch(c)

	assert.Nil(t, c.PointerDown(100, 100))
	assert.Nil(t, c.PointerUp(centers[1].X, centers[1].Y))

	assert.Empty(t, tl.entries)
	assert.Equal(t, gesture.StateIdle, c.Tracker().State())
}

func TestImagesChangedGetsACopy(t *testing.T) {
	c := newCoordinator(t)
	c.OnImagesChanged(func(images []gallery.Image) {
		images[0] = gallery.Image{Name: "Z"}
	})

	c.PointerDown(centers[0].X, centers[0].Y)
	c.PointerUp(centers[1].X, centers[1].Y)

	assert.Equal(t, []string{"B", "A", "C", "D"}, names(c.Images()))
}

func TestOnImagesChangedRemove(t *testing.T) {
	c := newCoordinator(t)
	calls := 0
	remove := c.OnImagesChanged(func([]gallery.Image) { calls++ })

	c.PointerDown(centers[0].X, centers[0].Y)
	c.PointerUp(centers[1].X, centers[1].Y)
	remove()
	c.PointerDown(centers[0].X, centers[0].Y)
	c.PointerUp(centers[1].X, centers[1].Y)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, c.Swaps())
}

func TestRecorderReceivesSwaps(t *testing.T) {
	rec := &fakeRecorder{}
	c := newCoordinator(t, WithRecorder(rec, "alice-1"))

	c.PointerDown(centers[0].X, centers[0].Y)
	c.PointerUp(centers[3].X, centers[3].Y)
	c.PointerDown(centers[1].X, centers[1].Y)
	c.PointerUp(centers[1].X, centers[1].Y)

	require.Len(t, rec.records, 1)
	got := rec.records[0]
	assert.Equal(t, "alice-1", got.Session)
	assert.Equal(t, 0, got.Source)
	assert.Equal(t, 3, got.Target)
	assert.Equal(t, []string{"D", "B", "C", "A"}, names(got.Order))
}

func TestRecorderFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	rec := &fakeRecorder{err: errors.New("disk full")}
	c := newCoordinator(t, WithRecorder(rec, "s"), WithLogger(logger))

	c.PointerDown(centers[0].X, centers[0].Y)
	c.PointerUp(centers[1].X, centers[1].Y)

	assert.Equal(t, []string{"B", "A", "C", "D"}, names(c.Images()), "swap must still apply")
	assert.Contains(t, buf.String(), "could not record swap")
	assert.Contains(t, buf.String(), "disk full")
}

func TestCancelAndReset(t *testing.T) {
	c := newCoordinator(t)
	tl := watch(c)

	c.PointerDown(centers[0].X, centers[0].Y)
	c.PointerUp(centers[2].X, centers[2].Y)
	c.PointerDown(centers[1].X, centers[1].Y)
	c.Reset()

	assert.Equal(t, []string{
		"Selected",
		"Dropped",
		"ImagesChanged[C B A D]",
		"Selected",
		"Cancelled",
		"ImagesChanged[A B C D]",
	}, tl.entries)
	assert.Equal(t, gesture.StateIdle, c.Tracker().State())
}

func TestDropOutsideStoreRangeIsRejected(t *testing.T) {
	wide := gesture.RectsFunc(func() []core.Rect {
		return []core.Rect{
			core.NewRect(0, 0, 5, 5),
			core.NewRect(5, 0, 5, 5),
			core.NewRect(10, 0, 5, 5),
			core.NewRect(15, 0, 5, 5),
			core.NewRect(20, 0, 5, 5),
		}
	})
	store, err := gallery.NewStore([]gallery.Image{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}})
	require.NoError(t, err)
	var buf bytes.Buffer
	c := New(store, wide, WithLogger(log.New(&buf)))

	c.PointerDown(1, 1)
	c.PointerUp(21, 1)

	assert.Equal(t, []string{"A", "B", "C", "D"}, names(c.Images()))
	assert.Zero(t, c.Swaps())
	assert.Contains(t, buf.String(), "swap rejected")
}
