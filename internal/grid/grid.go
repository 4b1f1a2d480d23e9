// Package grid maps pointer positions to tiles and lays tiles out on screen.
package grid

import (
	"github.com/vovakirdan/tui-dragswap/internal/core"
	"github.com/vovakirdan/tui-dragswap/internal/gallery"
)

// Columns is the number of tiles per row.
const Columns = 2

// TileAt returns the index of the first rectangle containing p.
// Rectangles are checked in tile-index order, so overlapping rectangles
// resolve to the lowest index. ok is false when p is outside every tile.
func TileAt(p core.Point, rects []core.Rect) (index int, ok bool) {
	for i, r := range rects {
		if r.ContainsPoint(p) {
			return i, true
		}
	}
	return -1, false
}

// Options controls how tiles are placed on the screen.
type Options struct {
	GapX         int // Columns between tiles
	GapY         int // Rows between tiles
	MarginTop    int // Rows reserved above the grid (title)
	MarginBottom int // Rows reserved below the grid (help)
	MarginX      int // Columns reserved on each side
	MaxTileW     int // Upper bound on tile width, 0 = unbounded
	MaxTileH     int // Upper bound on tile height, 0 = unbounded
}

// DefaultOptions returns the layout used when no config is given.
func DefaultOptions() Options {
	return Options{
		GapX:         2,
		GapY:         1,
		MarginTop:    2,
		MarginBottom: 2,
		MarginX:      2,
		MaxTileW:     32,
		MaxTileH:     12,
	}
}

// Layout computes the rectangles of the tiles for a screen of the given size.
// Tiles are ordered row by row. On a screen too small to fit the grid the
// rectangles are empty, which makes every point miss.
func Layout(screenW, screenH int, opt Options) []core.Rect {
	rows := gallery.GridSize / Columns

	availW := screenW - 2*opt.MarginX - (Columns-1)*opt.GapX
	availH := screenH - opt.MarginTop - opt.MarginBottom - (rows-1)*opt.GapY

	tileW := availW / Columns
	tileH := availH / rows
	if opt.MaxTileW > 0 {
		tileW = min(tileW, opt.MaxTileW)
	}
	if opt.MaxTileH > 0 {
		tileH = min(tileH, opt.MaxTileH)
	}

	rects := make([]core.Rect, gallery.GridSize)
	if tileW < 1 || tileH < 1 {
		return rects
	}

	blockW := Columns*tileW + (Columns-1)*opt.GapX
	blockH := rows*tileH + (rows-1)*opt.GapY
	originX := (screenW - blockW) / 2
	originY := opt.MarginTop + (screenH-opt.MarginTop-opt.MarginBottom-blockH)/2

	for i := range rects {
		col := i % Columns
		row := i / Columns
		rects[i] = core.NewRect(
			originX+col*(tileW+opt.GapX),
			originY+row*(tileH+opt.GapY),
			tileW,
			tileH,
		)
	}
	return rects
}
