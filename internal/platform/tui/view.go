package tui

import (
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tui-dragswap/internal/config"
	"github.com/vovakirdan/tui-dragswap/internal/core"
	"github.com/vovakirdan/tui-dragswap/internal/gallery"
	"github.com/vovakirdan/tui-dragswap/internal/gesture"
	"github.com/vovakirdan/tui-dragswap/internal/grid"
)

// Colors for images that do not configure one.
var fallbackColors = []string{"#3b82f6", "#f59e0b", "#22c55e", "#ef4444"}

const (
	ghostMaxW = 16
	ghostH    = 3
)

// gridView draws the tiles and runs their animations.
// Bubble Tea copies the Model on every update, so the view lives behind a
// pointer and subscribes to the coordinator once.
type gridView struct {
	cfg    config.Config
	rects  []core.Rect
	images []gallery.Image
	tiles  [gallery.GridSize]tileFx
	ghost  ghostFx

	pointer core.Point
	status  string
}

func newGridView(cfg config.Config, images []gallery.Image) *gridView {
	v := &gridView{
		cfg:    cfg,
		images: images,
		rects:  make([]core.Rect, gallery.GridSize),
	}
	for i := range v.tiles {
		v.tiles[i].prev = v.colorOf(i)
	}
	return v
}

// TileRects implements gesture.RectProvider.
func (v *gridView) TileRects() []core.Rect {
	return v.rects
}

// relayout recomputes the tile rectangles for a screen of the given size.
func (v *gridView) relayout(w, h int) {
	v.rects = grid.Layout(w, h, v.cfg.Layout.Grid())
}

func (v *gridView) colorOf(i int) string {
	if i < 0 || i >= len(v.images) {
		return v.cfg.Theme.Background
	}
	if c := v.images[i].Color; c != "" {
		return c
	}
	return fallbackColors[i%len(fallbackColors)]
}

func (v *gridView) seconds(ms int) float32 {
	return config.Seconds(ms)
}

// setFilter animates the highlight of tile i on or off.
func (v *gridView) setFilter(i int, on bool) {
	if i < 0 || i >= len(v.tiles) {
		return
	}
	t := &v.tiles[i]
	if t.filterOn == on && t.filter != nil {
		return
	}
	var to float32
	if on {
		to = 1
	}
	t.filterOn = on
	t.filter = newTween(t.filter.value(0), to, v.seconds(v.cfg.Animation.ColorFilter), ease.OutQuad)
}

func (v *gridView) clearFilters(keep ...int) {
	for i := range v.tiles {
		on := false
		for _, k := range keep {
			if k == i {
				on = true
			}
		}
		v.setFilter(i, on)
	}
}

// handleGesture turns tracker events into animations.
func (v *gridView) handleGesture(ev gesture.Event) {
	anim := v.cfg.Animation
	switch e := ev.(type) {
	case gesture.Selected:
		v.pointer = e.At
		v.ghost = ghostFx{
			visible: true,
			index:   e.Index,
			label:   v.images[e.Index].Title(),
			color:   v.colorOf(e.Index),
			scale:   newTween(0, 1, v.seconds(anim.BounceIn), ease.OutBounce),
		}
		v.clearFilters(e.Index)

	case gesture.Hovering:
		v.pointer = e.At
		v.clearFilters(e.Source, e.Index)

	case gesture.Dropped:
		v.clearFilters()
		if e.Target >= 0 && e.Target < len(v.rects) {
			tx, ty := v.rects[e.Target].Center()
			move := v.seconds(anim.Move)
			v.ghost.moveX = newTween(float32(e.At.X), float32(tx), move, ease.OutQuad)
			v.ghost.moveY = newTween(float32(e.At.Y), float32(ty), move, ease.OutQuad)
			v.tiles[e.Target].pop = newTween(0, 1, v.seconds(anim.Swap), ease.OutBack)
		}
		if e.Source >= 0 && e.Source < len(v.tiles) {
			v.tiles[e.Source].fadeIn = newTween(0, 1, v.seconds(anim.FadeIn), ease.Linear)
		}

	case gesture.Cancelled:
		v.ghost.hide()
		v.clearFilters()
	}
}

// handleImages starts a cross-fade on every tile whose image changed.
func (v *gridView) handleImages(images []gallery.Image) {
	old := make([]string, len(v.tiles))
	for i := range v.tiles {
		old[i] = v.colorOf(i)
	}
	v.images = images
	for i := range v.tiles {
		if v.colorOf(i) == old[i] {
			continue
		}
		v.tiles[i].prev = old[i]
		v.tiles[i].fade = newTween(0, 1, v.seconds(v.cfg.Animation.CrossFade), ease.Linear)
	}
}

// abort drops every drag-related effect, keeping swap animations.
func (v *gridView) abort() {
	if !v.ghost.moving() {
		v.ghost.hide()
	}
	v.clearFilters()
}

func (v *gridView) update(dt float32) {
	for i := range v.tiles {
		v.tiles[i].update(dt)
	}
	if v.ghost.visible {
		v.ghost.update(dt)
	}
}

func (v *gridView) animating() bool {
	for i := range v.tiles {
		if v.tiles[i].animating() {
			return true
		}
	}
	return v.ghost.visible
}

// tileColor returns the fill color of tile i with every effect applied.
func (v *gridView) tileColor(i int) string {
	t := &v.tiles[i]
	theme := v.cfg.Theme

	c := v.colorOf(i)
	if t.fade.running() {
		c = blend(t.prev, c, t.fade.value(1))
	}
	if t.fadeIn.running() {
		c = blend(theme.Background, c, t.fadeIn.value(1))
	}
	if amount := t.filter.value(0); amount > 0 {
		c = blend(c, theme.Filter, amount*float32(theme.FilterStrength))
	}
	return c
}

// draw renders the title, the tiles and the ghost onto s.
func (v *gridView) draw(s *core.Screen) {
	theme := v.cfg.Theme
	s.SetBackground(theme.Background)
	s.Clear()

	s.DrawTextCentered(0, "DRAG SWAP", theme.Foreground, theme.Background)
	status := v.status
	if status == "" {
		status = "drag a tile onto another to swap them"
	}
	s.DrawTextCentered(1, status, theme.Border, theme.Background)

	for i, r := range v.rects {
		if r.Empty() || i >= len(v.images) {
			continue
		}
		t := &v.tiles[i]
		if t.pop.running() {
			r = r.Scale(float64(t.pop.value(1)))
			if r.Empty() {
				continue
			}
		}
		v.drawTile(s, r, v.images[i], v.tileColor(i))
	}

	if v.ghost.visible {
		v.drawGhost(s)
	}
}

func (v *gridView) drawTile(s *core.Screen, r core.Rect, img gallery.Image, color string) {
	fg := contrast(color)
	s.FillRect(r, core.Cell{Rune: ' ', FG: fg, BG: color})
	s.DrawBox(r, v.cfg.Theme.Border)

	mid := r.Y + r.H/2
	inner := core.NewRect(r.X+1, r.Y, r.W-2, r.H)
	s.DrawTextIn(inner, mid, img.Title(), fg, color)
	if r.H >= 5 {
		s.DrawTextIn(inner, mid+1, img.Path(v.cfg.AssetDir), fg, color)
	}
}

func (v *gridView) drawGhost(s *core.Screen) {
	g := &v.ghost
	x := float32(v.pointer.X)
	y := float32(v.pointer.Y)
	if g.moving() {
		x = g.moveX.value(x)
		y = g.moveY.value(y)
	}

	w := ghostMaxW
	if g.index >= 0 && g.index < len(v.rects) && !v.rects[g.index].Empty() {
		w = core.Clamp(v.rects[g.index].W/2, 4, ghostMaxW)
	}
	r := core.NewRect(int(x)-w/2, int(y)-ghostH/2, w, ghostH).Scale(float64(g.scale.value(1)))
	if r.Empty() {
		return
	}

	fg := contrast(g.color)
	s.FillRect(r, core.Cell{Rune: ' ', FG: fg, BG: g.color})
	s.DrawTextIn(r, r.Y+r.H/2, g.label, fg, g.color)
}
