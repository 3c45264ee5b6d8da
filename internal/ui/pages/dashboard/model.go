// Package dashboard provides the metrics and charts page.
package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/app"
)

// Title is the page heading.
const Title = "Bikeshare Dashboard (2011-2012)"

// Caption is the footer under the charts.
const Caption = "Copyright by Deny Wisnu Saputro Sukisno"

type keyMap struct {
	Reset key.Binding
}

var keys = keyMap{
	Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset date range")),
}

// Model represents the dashboard page. It renders the snapshot carried by
// the latest render pass.
type Model struct {
	state    *app.State
	commands *app.Commands
	width    int
	height   int
}

// New creates a new dashboard page. commands may be nil, which disables the
// range reset key.
func New(state *app.State, commands *app.Commands) *Model {
	return &Model{
		state:    state,
		commands: commands,
	}
}

// Init initializes the dashboard page.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the dashboard page.
func (m *Model) Update(msg tea.Msg) (app.Page, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keys.Reset) && m.commands != nil {
		return m, tea.Batch(
			m.commands.ResetRange(),
			m.commands.NotifyInfo("Date range reset to the full dataset"),
		)
	}
	return m, nil
}

// SetSize sets the available size for the page.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// ShortHelp returns the key bindings for the help overlay.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "edit start/end date")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply date range")),
		keys.Reset,
	}
}
