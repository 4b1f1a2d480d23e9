package tui

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// tween animates one value. A nil tween is finished and reports its fallback.
type tween struct {
	tw   *gween.Tween
	val  float32
	done bool
}

// newTween starts an animation from -> to over the given seconds.
// A non-positive duration jumps straight to the end value.
func newTween(from, to, seconds float32, fn ease.TweenFunc) *tween {
	t := &tween{tw: gween.New(from, to, seconds, fn), val: from}
	if seconds <= 0 {
		t.val, t.done = to, true
	}
	return t
}

// update advances the tween by dt seconds.
func (t *tween) update(dt float32) {
	if t == nil || t.done {
		return
	}
	t.val, t.done = t.tw.Update(dt)
}

// value returns the current value, or fallback for a nil tween.
func (t *tween) value(fallback float32) float32 {
	if t == nil {
		return fallback
	}
	return t.val
}

func (t *tween) running() bool {
	return t != nil && !t.done
}

// tileFx holds the animations applied to one grid position.
type tileFx struct {
	filter   *tween // Highlight amount, 0..1
	filterOn bool   // Where filter is heading
	pop      *tween // Scale while popping back in after a swap
	fadeIn   *tween // Opacity against the background
	fade     *tween // Cross-fade progress from prev to the current image
	prev     string // Color shown before the last change
}

func (f *tileFx) update(dt float32) {
	f.filter.update(dt)
	f.pop.update(dt)
	f.fadeIn.update(dt)
	f.fade.update(dt)
}

func (f *tileFx) animating() bool {
	return f.filter.running() || f.pop.running() || f.fadeIn.running() || f.fade.running()
}

// ghostFx is the copy of the dragged image that follows the pointer.
type ghostFx struct {
	visible bool
	index   int
	label   string
	color   string
	scale   *tween // Bounce-in on select
	moveX   *tween // Travel to the drop target
	moveY   *tween
}

func (g *ghostFx) update(dt float32) {
	g.scale.update(dt)
	g.moveX.update(dt)
	g.moveY.update(dt)
	if g.moveX != nil && !g.moveX.running() && !g.moveY.running() {
		g.hide()
	}
}

func (g *ghostFx) hide() {
	*g = ghostFx{}
}

// moving reports whether the ghost is travelling to a drop target.
func (g *ghostFx) moving() bool {
	return g.moveX != nil
}

// blend mixes two hex colors; t=0 is a, t=1 is b.
// Malformed colors fall back to the other side.
func blend(a, b string, t float32) string {
	ca, errA := colorful.Hex(a)
	cb, errB := colorful.Hex(b)
	switch {
	case errA != nil && errB != nil:
		return ""
	case errA != nil:
		return b
	case errB != nil:
		return a
	}
	if t <= 0 {
		return ca.Hex()
	}
	if t >= 1 {
		return cb.Hex()
	}
	return ca.BlendRgb(cb, float64(t)).Clamped().Hex()
}

// contrast picks a readable text color for the given background.
func contrast(bg string) string {
	c, err := colorful.Hex(bg)
	if err != nil {
		return ""
	}
	if _, _, l := c.Hsl(); l > 0.55 {
		return "#111111"
	}
	return "#f9fafb"
}
