package about

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/ui/styles"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/version"
)

// Header is the page subheader.
const Header = "About This Dashboard"

var intro = "This dashboard provides insights into bikeshare data from 2011 to 2012. " +
	"You can use the sidebar to filter the date range and explore various metrics " +
	"and visualizations below."

// Questions the dashboard answers.
var Questions = []string{
	"How is the trend in the number of bicycle users in recent years?",
	"Which season has the most cyclists?",
	"What are the usage patterns of bike-sharing services by day of the week?",
}

// Metrics lists the business metrics shown on the dashboard.
var Metrics = []string{
	"Total Rentals",
	"Average Daily Rentals",
	"Peak Rental Hour",
}

// View renders the about page.
func (m *Model) View() string {
	width := max(m.width-4, 40)
	text := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	b.WriteString(text.Render(intro))
	b.WriteString("\n\n")
	b.WriteString("The dashboard answers three questions:\n")
	for _, q := range Questions {
		b.WriteString(text.Render("  • " + q))
		b.WriteString("\n")
	}
	b.WriteString("\nIt provides several business metrics:\n")
	for i, metric := range Metrics {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, metric)
	}

	sections := []string{
		styles.SubTitleStyle.Render(Header),
		b.String(),
	}
	if card := m.renderRuntimeCard(); card != "" {
		sections = append(sections, card)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderRuntimeCard shows where the data comes from and how it is queried.
func (m *Model) renderRuntimeCard() string {
	if m.config == nil && m.services == nil {
		return ""
	}

	cardWidth := min(max(m.width-6, 50), 80)

	rows := []string{styles.CardTitleStyle.Render("Runtime"), ""}

	if m.config != nil {
		rows = append(rows,
			renderRow("Dataset", m.config.DatasetPath),
			renderRow("Log level", m.config.LogLevel),
		)
	}
	if m.services != nil {
		rows = append(rows,
			renderRow("Engine", m.services.EngineName()),
			renderRow("Rows", humanize.Comma(int64(m.services.Rows()))),
			renderRow("Date range", m.services.Bounds().String()),
			renderRow("Session", m.services.Session().ID()),
			renderRow("Started", m.services.Session().StartedAt().Format("2006-01-02 15:04:05")),
		)
	}
	rows = append(rows,
		renderRow("Version", version.GetVersion()),
		renderRow("Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)),
	)

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func renderRow(label, value string) string {
	labelStyle := lipgloss.NewStyle().
		Width(12).
		Foreground(styles.TextMuted)

	valueStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}
