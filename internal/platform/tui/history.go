package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dragswap/internal/storage"
)

// History panel layout constants
const (
	historyWidth = 44  // Total panel width including border
	maxHistory   = 100 // Max swaps to load
)

// historyPanel lists the swaps of the current session next to the grid.
type historyPanel struct {
	store   *storage.Store
	session string
	entries []storage.SwapEntry
	total   int
	table   table.Model
	height  int
	err     error
}

func newHistoryPanel(store *storage.Store, session string, height int) historyPanel {
	p := historyPanel{
		store:   store,
		session: session,
		height:  height,
	}
	p.table = p.createTable()
	return p
}

// createTable creates a new table sized to the panel.
func (p *historyPanel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Swap", Width: 7},
		{Title: "Order", Width: 16},
		{Title: "Time", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(p.height-6, 3)), // Leave room for title and border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload loads the session's swaps from the store.
func (p *historyPanel) reload() {
	p.entries, p.err = nil, nil
	if p.store != nil {
		p.entries, p.err = p.store.SessionSwaps(p.session, maxHistory)
		if st, err := p.store.Stats(); err == nil {
			p.total = st.TotalSwaps
		}
	}
	p.updateRows()
}

func (p *historyPanel) updateRows() {
	rows := make([]table.Row, len(p.entries))
	for i, e := range p.entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", len(p.entries)-i),
			fmt.Sprintf("%d <> %d", e.Source+1, e.Target+1),
			shortOrder(e.Order),
			e.CreatedAt.Local().Format("15:04:05"),
		}
	}
	p.table.SetRows(rows)
	p.table.GotoTop()
}

// shortOrder abbreviates image names to their first letters.
func shortOrder(names []string) string {
	parts := make([]string, len(names))
	for i, n := range names {
		r := []rune(n)
		if len(r) > 3 {
			r = r[:3]
		}
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

func (p *historyPanel) resize(height int) {
	p.height = height
	p.table = p.createTable()
	p.updateRows()
}

func (p historyPanel) update(msg tea.Msg) (historyPanel, tea.Cmd) {
	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return p, cmd
}

func (p historyPanel) view() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(historyWidth-2).
		Height(max(p.height-2, 1)).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString(titleStyle.Render("SWAP HISTORY"))
	b.WriteString("\n")

	switch {
	case p.store == nil:
		b.WriteString(emptyStyle().Render("History is disabled.\nStart with --db to record swaps."))
	case p.err != nil:
		b.WriteString(emptyStyle().Render("Could not load history."))
	case len(p.entries) == 0:
		b.WriteString(emptyStyle().Render("No swaps yet.\nDrag a tile onto another!"))
	default:
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).
			Render(fmt.Sprintf("%d this session, %d overall", len(p.entries), p.total)))
		b.WriteString("\n")
		b.WriteString(p.table.View())
	}

	return panelStyle.Render(b.String())
}

func emptyStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 0)
}
