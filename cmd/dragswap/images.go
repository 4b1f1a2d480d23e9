package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "List the configured images in grid order",
	Long: `Shows the four images of the grid in their starting order,
top-left to bottom-right.`,
	Args: cobra.NoArgs,
	RunE: runImages,
}

func runImages(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, img := range cfg.Images {
		maxNameLen = max(maxNameLen, len(img.Name))
	}

	fmt.Println("Grid images:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-4s  %-*s  %-8s  %s\n", "Tile", maxNameLen, "Name", "Color", "Title")
	fmt.Printf("  %-4s  %-*s  %-8s  %s\n", "----", maxNameLen, "----", "-----", "-----")

	for i, img := range cfg.Images {
		color := img.Color
		if color == "" {
			color = "-"
		}
		fmt.Printf("  %-4d  %-*s  %-8s  %s\n", i+1, maxNameLen, img.Name, color, img.Title())
	}

	fmt.Println()
	fmt.Printf("Assets are resolved from %q.\n", cfg.AssetDir)
	return nil
}
