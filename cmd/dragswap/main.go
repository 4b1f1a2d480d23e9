// dragswap is a terminal image grid where tiles are rearranged by dragging
// one onto another with the mouse.
//
// Usage:
//
//	dragswap play            - Open the grid in this terminal
//	dragswap serve           - Start SSH server for remote sessions
//	dragswap images          - List the configured images in grid order
//	dragswap history         - Show recently recorded swaps
//	dragswap config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>       - Set animation frame rate (default: 60)
//	--db <path>        - Set history database path (default: ~/.dragswap/history.db)
//	--config <path>    - Use a custom config YAML
//	--log-file <path>  - Write logs to a file
//	--debug            - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dragswap/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dragswap",
	Short: "Drag Swap - rearrange an image grid with the mouse",
	Long: `Drag Swap shows four images in a 2x2 grid. Press on a tile, drag it
onto another tile and release to swap the two.

Available commands:
  play     - Open the grid in this terminal
  serve    - Start SSH server for remote sessions
  images   - List the configured images
  history  - Show recorded swaps
  config   - Print the effective configuration

Examples:
  dragswap play
  dragswap play --config ./my-grid.yaml
  dragswap serve --ssh :2222
  dragswap history --limit 5`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Animation frame rate")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dragswap/history.db", "Path to swap history database (empty disables history)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(imagesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger for a command. Logs go to --log-file when set,
// otherwise to fallback. The returned func closes the log file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// loadConfig loads the grid config from --config or the default locations.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, fmt.Errorf("cannot load config: %w", err)
	}
	return cfg, nil
}
