// Package gallery holds the ordered set of images shown on the grid.
package gallery

import (
	"path"
	"strings"
)

// GridSize is the number of tiles on the grid.
const GridSize = 4

// Image identifies one picture shown on a tile.
// Name is the identifier; Label and Color are display hints for renderers
// that cannot draw the picture itself.
type Image struct {
	Name  string `yaml:"name"`
	Label string `yaml:"label,omitempty"`
	Color string `yaml:"color,omitempty"`
}

// Title returns the label, falling back to the file name without extension.
func (img Image) Title() string {
	if img.Label != "" {
		return img.Label
	}
	return strings.TrimSuffix(img.Name, path.Ext(img.Name))
}

// Path resolves the image inside an asset directory.
func (img Image) Path(assetDir string) string {
	return path.Join(assetDir, img.Name)
}

// Tile is one grid position and the image it currently shows.
type Tile struct {
	Index int
	Image Image
}
