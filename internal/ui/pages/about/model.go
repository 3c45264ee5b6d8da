// Package about provides the static page describing the dashboard.
package about

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/app"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/config"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/services"
)

// Model represents the about page.
type Model struct {
	state    *app.State
	config   *config.Config
	services *services.Manager
	width    int
	height   int
}

// New creates a new about page. cfg and mgr may be nil, in which case the
// runtime card is omitted.
func New(state *app.State, cfg *config.Config, mgr *services.Manager) *Model {
	return &Model{
		state:    state,
		config:   cfg,
		services: mgr,
	}
}

// Init initializes the about page.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the about page.
func (m *Model) Update(_ tea.Msg) (app.Page, tea.Cmd) {
	return m, nil
}

// SetSize sets the available size for the page.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// ShortHelp returns the key bindings for the help overlay.
func (m *Model) ShortHelp() []key.Binding {
	return nil
}
