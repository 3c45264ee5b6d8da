package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/ui/styles"
)

// MetricCard is a labelled headline number with an optional delta line.
type MetricCard struct {
	Label string
	Value string
	Delta string
}

// Render draws the card at the given outer width.
func (c MetricCard) Render(width int) string {
	inner := width - styles.CardStyle.GetHorizontalFrameSize()
	if inner < 8 {
		inner = 8
	}

	lines := []string{
		styles.CardTitleStyle.Render(c.Label),
		styles.MetricValueStyle.Render(c.Value),
	}
	if c.Delta != "" {
		lines = append(lines, styles.MetricDeltaStyle.Render(c.Delta))
	} else {
		lines = append(lines, "")
	}

	return styles.CardStyle.Width(inner).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RenderMetricRow lays cards side by side, sharing width evenly.
func RenderMetricRow(cards []MetricCard, width int) string {
	if len(cards) == 0 {
		return ""
	}

	each := width / len(cards)
	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		rendered = append(rendered, c.Render(each))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
