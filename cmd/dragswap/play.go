package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dragswap/internal/core"
	"github.com/vovakirdan/tui-dragswap/internal/platform/tui"
	"github.com/vovakirdan/tui-dragswap/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the grid in this terminal",
	Long: `Open the image grid in the current terminal. The grid always starts
in the configured order.

Controls:
  Mouse drag  - Drag a tile onto another to swap them
  Esc         - Cancel the current drag
  R           - Reset to the configured order
  H           - Toggle the swap history panel
  Ctrl+S      - Save a plain-text screenshot
  ?           - Show all keys
  Q/Ctrl+C    - Quit

Examples:
  dragswap play
  dragswap play --config ./my-grid.yaml
  dragswap play --log-file /tmp/dragswap.log --debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the grid, so logs are dropped unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard, "dragswap")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var store *storage.Store
	if flagDBPath != "" {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
			// Continue without history - the grid still works
			store = nil
		}
	}

	session := fmt.Sprintf("local-%d", time.Now().UnixNano())
	logger.Info("starting grid", "session", session, "width", width, "height", height)

	runErr := tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
		Store:   store,
		Session: session,
		Logger:  logger,
	})

	// Close store before returning
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running grid: %w", runErr)
	}
	return nil
}
