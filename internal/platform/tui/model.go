package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dragswap/internal/config"
	"github.com/vovakirdan/tui-dragswap/internal/coordinator"
	"github.com/vovakirdan/tui-dragswap/internal/core"
	"github.com/vovakirdan/tui-dragswap/internal/gallery"
	"github.com/vovakirdan/tui-dragswap/internal/gesture"
	"github.com/vovakirdan/tui-dragswap/internal/storage"
)

// Options configures a grid screen.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig

	// Store records swaps and backs the history panel. Nil disables both.
	Store *storage.Store

	// Session names the swaps this screen records.
	Session string

	Logger *log.Logger

	// ScreenshotDir defaults to ~/.dragswap/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for the drag-to-swap grid.
type Model struct {
	coord   *coordinator.Coordinator
	view    *gridView
	screen  *core.Screen
	runtime core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	history historyPanel
	logger  *log.Logger

	screenshotDir string
	showHistory   bool
	quitting      bool
}

// NewModel creates the grid screen with the configured initial order.
func NewModel(opts Options) (Model, error) {
	images, err := gallery.NewStore(opts.Config.Images)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}

	view := newGridView(opts.Config, images.List())

	coordOpts := []coordinator.Option{coordinator.WithLogger(logger)}
	if opts.Store != nil {
		coordOpts = append(coordOpts, coordinator.WithRecorder(opts.Store, opts.Session))
	}
	coord := coordinator.New(images, view, coordOpts...)
	coord.Subscribe(view.handleGesture)
	coord.OnImagesChanged(view.handleImages)

	m := Model{
		coord:         coord,
		view:          view,
		screen:        core.NewScreen(rt.ScreenW, rt.ScreenH),
		runtime:       rt,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		history:       newHistoryPanel(opts.Store, opts.Session, rt.ScreenH-1),
		logger:        logger,
		screenshotDir: opts.ScreenshotDir,
	}
	m.help.Width = rt.ScreenW
	m.layout()
	return m, nil
}

// Init starts the animation loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		m.view.update(m.runtime.TickSeconds())
		return m, tickCmd(m.runtime.TickRate)
	}

	return m, nil
}

// handleMouse feeds left-button presses, motion and releases to the coordinator.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.view.pointer = core.Pt(msg.X, msg.Y)
		m.coord.PointerDown(msg.X, msg.Y)

	case tea.MouseActionMotion:
		m.view.pointer = core.Pt(msg.X, msg.Y)
		m.coord.PointerMove(msg.X, msg.Y)

	case tea.MouseActionRelease:
		// Some terminals do not report which button was released.
		if _, ok := m.coord.PointerUp(msg.X, msg.Y).(gesture.Dropped); ok {
			m.view.status = fmt.Sprintf("%d swaps", m.coord.Swaps())
			if m.showHistory {
				m.history.reload()
			}
		}
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		m.coord.Cancel()
		m.view.abort()

	case key.Matches(msg, m.keys.Reset):
		m.coord.Reset()
		m.view.abort()
		m.view.status = "order reset"

	case key.Matches(msg, m.keys.History):
		m.showHistory = !m.showHistory
		if m.showHistory {
			m.history.reload()
		}
		m.layout()

	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
			m.view.status = "screenshot failed"
		} else {
			m.view.status = "saved " + path
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	default:
		if m.showHistory {
			var cmd tea.Cmd
			m.history, cmd = m.history.update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// handleResize re-lays out the grid. An active drag is cancelled because its
// tiles have moved.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.history.resize(msg.Height - 1)
	m.layout()
	return m, nil
}

// layout sizes the cell buffer and tiles for the current window and panels.
func (m *Model) layout() {
	w := m.runtime.ScreenW
	if m.showHistory {
		w -= historyWidth
	}
	h := m.runtime.ScreenH - 1 // Help line
	w, h = max(w, 0), max(h, 0)

	m.coord.Cancel()
	m.view.abort()
	m.screen.Resize(w, h)
	m.view.relayout(w, h)
}

// saveScreenshot writes the current grid as plain text.
func (m Model) saveScreenshot() (string, error) {
	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".dragswap", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	m.view.draw(m.screen)

	filename := fmt.Sprintf("dragswap_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.view.draw(m.screen)
	body := RenderScreen(m.screen)
	if m.showHistory {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.history.view())
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return body + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Coordinator exposes the grid's coordinator.
func (m Model) Coordinator() *coordinator.Coordinator {
	return m.coord
}

// Run starts the grid screen in the local terminal.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
