package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-dragswap/internal/gallery"
)

//go:embed defaults/dragswap.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Images: []gallery.Image{
			{Name: "image1.jpg", Label: "Mountains", Color: "#3b82f6"},
			{Name: "image2.jpg", Label: "Desert", Color: "#f59e0b"},
			{Name: "image3.jpg", Label: "Forest", Color: "#22c55e"},
			{Name: "image4.jpg", Label: "Sunset", Color: "#ef4444"},
		},
		AssetDir: "assets",
		Layout: LayoutConfig{
			GapX:          2,
			GapY:          1,
			MarginTop:     2,
			MarginBottom:  2,
			MarginX:       2,
			MaxTileWidth:  32,
			MaxTileHeight: 12,
		},
		Animation: AnimationConfig{
			BounceIn:    300,
			ColorFilter: 250,
			Move:        350, // Same as the swap start delay
			Swap:        300,
			FadeIn:      300,
			CrossFade:   200,
		},
		Theme: ThemeConfig{
			Background:     "#1e1b2e",
			Foreground:     "#e5e7eb",
			Border:         "#6b7280",
			Filter:         "#facc15",
			FilterStrength: 0.45,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
