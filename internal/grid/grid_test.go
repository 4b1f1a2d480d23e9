package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-dragswap/internal/core"
	"github.com/vovakirdan/tui-dragswap/internal/gallery"
)

// fixedRects is a 2x2 grid of 10x5 tiles with a 2-cell gap.
var fixedRects = []core.Rect{
	core.NewRect(0, 0, 10, 5),
	core.NewRect(12, 0, 10, 5),
	core.NewRect(0, 7, 10, 5),
	core.NewRect(12, 7, 10, 5),
}

func TestTileAt(t *testing.T) {
	tests := []struct {
		name   string
		p      core.Point
		want   int
		wantOK bool
	}{
		{"tile 0 origin", core.Pt(0, 0), 0, true},
		{"tile 1", core.Pt(15, 2), 1, true},
		{"tile 2", core.Pt(3, 9), 2, true},
		{"tile 3 last cell", core.Pt(21, 11), 3, true},
		{"horizontal gap", core.Pt(11, 2), -1, false},
		{"vertical gap", core.Pt(3, 6), -1, false},
		{"right of grid", core.Pt(22, 2), -1, false},
		{"negative", core.Pt(-1, -1), -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TileAt(tt.p, fixedRects)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTileAtOverlapPrefersLowestIndex(t *testing.T) {
	rects := []core.Rect{
		core.NewRect(0, 0, 10, 10),
		core.NewRect(5, 5, 10, 10),
	}
	got, ok := TileAt(core.Pt(7, 7), rects)
	require.True(t, ok)
	assert.Equal(t, 0, got)
}

func TestTileAtNoRects(t *testing.T) {
	_, ok := TileAt(core.Pt(1, 1), nil)
	assert.False(t, ok)
}

func TestLayoutProducesDisjointGrid(t *testing.T) {
	rects := Layout(80, 24, DefaultOptions())
	require.Len(t, rects, gallery.GridSize)

	for i, r := range rects {
		assert.False(t, r.Empty(), "tile %d should not be empty", i)
		assert.GreaterOrEqual(t, r.X, 0)
		assert.LessOrEqual(t, r.Right(), 80)
		assert.GreaterOrEqual(t, r.Y, DefaultOptions().MarginTop)
		assert.LessOrEqual(t, r.Bottom(), 24-DefaultOptions().MarginBottom)
		for j := i + 1; j < len(rects); j++ {
			assert.False(t, r.Intersects(rects[j]), "tiles %d and %d overlap", i, j)
		}
	}

	// Row-major order
	assert.Equal(t, rects[0].Y, rects[1].Y)
	assert.Less(t, rects[0].X, rects[1].X)
	assert.Equal(t, rects[0].X, rects[2].X)
	assert.Less(t, rects[0].Y, rects[2].Y)

	// Every tile center resolves to its own index
	for i, r := range rects {
		cx, cy := r.Center()
		got, ok := TileAt(core.Pt(cx, cy), rects)
		require.True(t, ok)
		assert.Equal(t, i, got)
	}
}

func TestLayoutRespectsMaxTileSize(t *testing.T) {
	opt := DefaultOptions()
	opt.MaxTileW = 8
	opt.MaxTileH = 3

	rects := Layout(200, 100, opt)
	for _, r := range rects {
		assert.Equal(t, 8, r.W)
		assert.Equal(t, 3, r.H)
	}
}

func TestLayoutTooSmall(t *testing.T) {
	rects := Layout(4, 4, DefaultOptions())
	require.Len(t, rects, gallery.GridSize)
	for _, r := range rects {
		assert.True(t, r.Empty())
	}
	_, ok := TileAt(core.Pt(1, 1), rects)
	assert.False(t, ok)
}
