// Package config provides YAML-based configuration loading for dragswap:
// the images on the grid, layout, animation timings and colors.
package config

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-dragswap/internal/gallery"
	"github.com/vovakirdan/tui-dragswap/internal/grid"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config contains all configuration for a grid screen.
type Config struct {
	Images    []gallery.Image `yaml:"images"`
	AssetDir  string          `yaml:"asset_dir"`
	Layout    LayoutConfig    `yaml:"layout"`
	Animation AnimationConfig `yaml:"animation"`
	Theme     ThemeConfig     `yaml:"theme"`
}

// LayoutConfig defines tile placement in terminal cells.
type LayoutConfig struct {
	GapX          int `yaml:"gap_x"`
	GapY          int `yaml:"gap_y"`
	MarginTop     int `yaml:"margin_top"`
	MarginBottom  int `yaml:"margin_bottom"`
	MarginX       int `yaml:"margin_x"`
	MaxTileWidth  int `yaml:"max_tile_width"`
	MaxTileHeight int `yaml:"max_tile_height"`
}

// AnimationConfig defines transition durations in milliseconds.
// Zero disables the corresponding animation.
type AnimationConfig struct {
	BounceIn    int `yaml:"bounce_in"`    // Cursor ghost appearing on select
	ColorFilter int `yaml:"color_filter"` // Highlight fading in on select/hover
	Move        int `yaml:"move"`         // Ghost travelling to the drop target
	Swap        int `yaml:"swap"`         // Target tile popping back in
	FadeIn      int `yaml:"fade_in"`      // Source tile fading in after a drop
	CrossFade   int `yaml:"cross_fade"`   // Tile contents changing
}

// ThemeConfig defines colors as "#rrggbb" strings.
type ThemeConfig struct {
	Background     string  `yaml:"background"`
	Foreground     string  `yaml:"foreground"`
	Border         string  `yaml:"border"`
	Filter         string  `yaml:"filter"`          // Highlight tint for selected/hovered tiles
	FilterStrength float64 `yaml:"filter_strength"` // 0.0 = no tint, 1.0 = solid tint
}

// Grid converts the layout section to grid options.
func (l LayoutConfig) Grid() grid.Options {
	return grid.Options{
		GapX:         l.GapX,
		GapY:         l.GapY,
		MarginTop:    l.MarginTop,
		MarginBottom: l.MarginBottom,
		MarginX:      l.MarginX,
		MaxTileW:     l.MaxTileWidth,
		MaxTileH:     l.MaxTileHeight,
	}
}

// Seconds converts a millisecond duration to the seconds the tweens use.
func Seconds(ms int) float32 {
	return float32(ms) / 1000
}

// Validate checks the config for values the grid cannot work with.
func (c Config) Validate() error {
	if len(c.Images) != gallery.GridSize {
		return fmt.Errorf("%w: need %d images, got %d", ErrInvalidConfig, gallery.GridSize, len(c.Images))
	}
	for i, img := range c.Images {
		if img.Name == "" {
			return fmt.Errorf("%w: image %d has no name", ErrInvalidConfig, i)
		}
		if img.Color != "" {
			if _, err := colorful.Hex(img.Color); err != nil {
				return fmt.Errorf("%w: image %q color %q: %v", ErrInvalidConfig, img.Name, img.Color, err)
			}
		}
	}

	colors := map[string]string{
		"background": c.Theme.Background,
		"foreground": c.Theme.Foreground,
		"border":     c.Theme.Border,
		"filter":     c.Theme.Filter,
	}
	for field, value := range colors {
		if value == "" {
			continue
		}
		if _, err := colorful.Hex(value); err != nil {
			return fmt.Errorf("%w: theme.%s %q: %v", ErrInvalidConfig, field, value, err)
		}
	}
	if c.Theme.FilterStrength < 0 || c.Theme.FilterStrength > 1 {
		return fmt.Errorf("%w: theme.filter_strength must be within [0,1], got %v", ErrInvalidConfig, c.Theme.FilterStrength)
	}

	a := c.Animation
	for field, ms := range map[string]int{
		"bounce_in":    a.BounceIn,
		"color_filter": a.ColorFilter,
		"move":         a.Move,
		"swap":         a.Swap,
		"fade_in":      a.FadeIn,
		"cross_fade":   a.CrossFade,
	} {
		if ms < 0 {
			return fmt.Errorf("%w: animation.%s must not be negative", ErrInvalidConfig, field)
		}
	}

	l := c.Layout
	if l.GapX < 0 || l.GapY < 0 || l.MarginTop < 0 || l.MarginBottom < 0 || l.MarginX < 0 {
		return fmt.Errorf("%w: layout gaps and margins must not be negative", ErrInvalidConfig)
	}
	return nil
}
