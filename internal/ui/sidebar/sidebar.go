// Package sidebar renders the navigation buttons, the date pickers and the
// profile badges shown next to the page content.
package sidebar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/services"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/ui/styles"
)

// Width is the sidebar's outer width in cells.
const Width = 26

// ErrInvalidDate is returned when a picker does not hold a YYYY-MM-DD date.
var ErrInvalidDate = errors.New("invalid date")

// Badge is a profile link shown under the pickers.
type Badge struct {
	Label string
	URL   string
}

// Badges are shown while the dashboard is rendered.
var Badges = []Badge{
	{Label: "GitHub", URL: "https://github.com/DenyWisnuSS"},
	{Label: "LinkedIn", URL: "https://www.linkedin.com/in/denywsnu"},
}

const (
	pickerStart = iota
	pickerEnd
	pickerCount
	noFocus = -1
)

// Model holds the date pickers. Navigation buttons are stateless.
type Model struct {
	pickers [pickerCount]textinput.Model
	focus   int
	bounds  models.DateRange
	height  int
}

// New creates a sidebar whose pickers default to the dataset bounds.
func New(bounds models.DateRange) *Model {
	m := &Model{focus: noFocus, bounds: bounds}
	for i := range m.pickers {
		ti := textinput.New()
		ti.Prompt = "› "
		ti.Placeholder = models.DateLayout
		ti.CharLimit = len(models.DateLayout)
		ti.Width = len(models.DateLayout) + 1
		ti.PromptStyle = styles.BlurredStyle
		m.pickers[i] = ti
	}
	m.SetRange(bounds)
	return m
}

// SetRange writes r into the pickers.
func (m *Model) SetRange(r models.DateRange) {
	m.pickers[pickerStart].SetValue(r.Start.Format(models.DateLayout))
	m.pickers[pickerEnd].SetValue(r.End.Format(models.DateLayout))
}

// SetHeight sets the rendered height.
func (m *Model) SetHeight(h int) {
	m.height = h
}

// Focused reports whether a picker has focus.
func (m *Model) Focused() bool {
	return m.focus != noFocus
}

// FocusNext moves focus to the next picker, starting with the start date.
func (m *Model) FocusNext() tea.Cmd {
	next := pickerStart
	if m.focus != noFocus {
		next = (m.focus + 1) % pickerCount
	}
	return m.focusPicker(next)
}

// Blur removes focus from the pickers.
func (m *Model) Blur() {
	for i := range m.pickers {
		m.pickers[i].Blur()
		m.pickers[i].PromptStyle = styles.BlurredStyle
	}
	m.focus = noFocus
}

func (m *Model) focusPicker(i int) tea.Cmd {
	m.Blur()
	m.focus = i
	m.pickers[i].PromptStyle = styles.FocusedStyle
	m.pickers[i].CursorEnd()
	return m.pickers[i].Focus()
}

// Update forwards input to the focused picker.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.focus == noFocus {
		return nil
	}
	var cmd tea.Cmd
	m.pickers[m.focus], cmd = m.pickers[m.focus].Update(msg)
	return cmd
}

// Values returns the raw picker text.
func (m *Model) Values() (start, end string) {
	return m.pickers[pickerStart].Value(), m.pickers[pickerEnd].Value()
}

// Range parses the pickers into a date range. The range is not clamped.
func (m *Model) Range() (models.DateRange, error) {
	startText, endText := m.Values()

	start, err := models.ParseDay(strings.TrimSpace(startText))
	if err != nil {
		return models.DateRange{}, fmt.Errorf("%w: start date %q, expected %s", ErrInvalidDate, startText, models.DateLayout)
	}
	end, err := models.ParseDay(strings.TrimSpace(endText))
	if err != nil {
		return models.DateRange{}, fmt.Errorf("%w: end date %q, expected %s", ErrInvalidDate, endText, models.DateLayout)
	}

	return models.NewDateRange(start, end), nil
}

// View renders the sidebar for pass. The pickers and badges belong to the
// dashboard and only appear while it is rendered.
func (m *Model) View(pass services.RenderPass) string {
	var b strings.Builder

	b.WriteString(styles.SidebarHeaderStyle.Render("Navigation"))
	b.WriteString("\n")
	for i, v := range services.NavigationViews {
		style := styles.ButtonInactiveStyle
		if pass.Renders(v) {
			style = styles.ButtonActiveStyle
		}
		b.WriteString(style.Render(v.Label()))
		b.WriteString(styles.HelpStyle.Render(fmt.Sprintf(" %d", i+1)))
		b.WriteString("\n")
	}

	if pass.Renders(services.ViewDashboard) {
		b.WriteString("\n")
		b.WriteString(m.pickersView())
		b.WriteString("\n\n")
		b.WriteString(badgesView())
	}

	style := styles.SidebarStyle.Width(Width - styles.SidebarStyle.GetHorizontalFrameSize())
	if m.height > 0 {
		style = style.Height(m.height)
	}
	return style.Render(b.String())
}

func (m *Model) pickersView() string {
	labels := [pickerCount]string{"Start date", "End date"}

	lines := []string{styles.SidebarHeaderStyle.Render("Date Filtering")}
	for i, ti := range m.pickers {
		label := styles.HelpDescStyle.Render(labels[i])
		if i == m.focus {
			label = styles.FocusedStyle.Render(labels[i])
		}
		lines = append(lines, label, ti.View())
	}
	lines = append(lines,
		styles.HelpStyle.Render("min "+m.bounds.Start.Format(models.DateLayout)),
		styles.HelpStyle.Render("max "+m.bounds.End.Format(models.DateLayout)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func badgesView() string {
	parts := make([]string, 0, len(Badges))
	for _, badge := range Badges {
		link := ansi.SetHyperlink(badge.URL) + badge.Label + ansi.ResetHyperlink()
		parts = append(parts, styles.BadgeStyle.Render(link))
	}
	return strings.Join(parts, " ")
}
