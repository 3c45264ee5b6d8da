// Package components provides reusable UI components for the TUI.
package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/ui/styles"
)

// NoDataText is shown in place of a chart with nothing to draw.
const NoDataText = "No data for the selected range"

// seriesColors are assigned to yearly series in order.
var seriesColors = []asciigraph.AnsiColor{
	asciigraph.SteelBlue,
	asciigraph.Orange,
	asciigraph.SkyBlue,
	asciigraph.DarkOrange,
}

const (
	minChartWidth  = 48
	minChartHeight = 3
	barLabelGap    = " │"
)

// LegendItem represents a single legend entry.
type LegendItem struct {
	Label string
	Color lipgloss.Color
}

// RenderLegend creates a chart legend.
func RenderLegend(items []LegendItem) string {
	var parts []string
	for _, item := range items {
		colorBox := lipgloss.NewStyle().Foreground(item.Color).Render("■")
		parts = append(parts, fmt.Sprintf("%s %s", colorBox, item.Label))
	}
	return strings.Join(parts, "  ")
}

// RenderMonthlyChart draws the monthly trend as a line chart with one line
// per year and the twelve month names under the x axis.
func RenderMonthlyChart(trend models.MonthlyTrend, width, height int) string {
	if width < minChartWidth {
		width = minChartWidth
	}
	if height < minChartHeight {
		height = minChartHeight
	}

	var (
		series [][]float64
		legend []LegendItem
		colors []asciigraph.AnsiColor
	)
	for i, year := range trend.Years {
		c := seriesColors[i%len(seriesColors)]
		series = append(series, year.Months[:])
		colors = append(colors, c)
		legend = append(legend, LegendItem{
			Label: strconv.Itoa(year.Year),
			Color: lipgloss.Color(strconv.Itoa(int(c))),
		})
	}
	if len(series) == 0 {
		series = [][]float64{trend.Values()}
		colors = []asciigraph.AnsiColor{seriesColors[0]}
	}

	plot := asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(colors...),
	)

	var b strings.Builder
	b.WriteString(plot)
	b.WriteString("\n")
	b.WriteString(styles.HelpDescStyle.Render(monthAxis(plot, width)))

	if len(legend) > 0 {
		b.WriteString("\n\n")
		b.WriteString(RenderLegend(legend))
	}
	if !trend.HasData() {
		b.WriteString("\n")
		b.WriteString(styles.HelpStyle.Render(NoDataText))
	}

	return b.String()
}

// monthAxis lays the month abbreviations out under a plot of width points.
// The plot's first column sits right after the y axis glyph.
func monthAxis(plot string, width int) string {
	first, _, _ := strings.Cut(plot, "\n")
	axis := axisColumn(ansi.Strip(first))

	line := []rune(strings.Repeat(" ", axis+width+2))
	lastEnd := -1
	for i, label := range models.MonthLabels {
		col := axis + 1 + int(float64(i)*float64(width-1)/11+0.5)
		start := col - 1
		if start <= lastEnd {
			start = lastEnd + 1
		}
		if start+len(label) > len(line) {
			break
		}
		copy(line[start:], []rune(label))
		lastEnd = start + len(label)
	}

	return strings.TrimRight(string(line), " ")
}

func axisColumn(row string) int {
	for i, r := range []rune(row) {
		if r == '┤' || r == '┼' {
			return i
		}
	}
	return 0
}

// RenderBarChart draws one horizontal bar per group. The first group holding
// the largest total is drawn in the highlight colour, the rest in the base
// colour.
func RenderBarChart(groups []models.GroupTotal, width int) string {
	if len(groups) == 0 {
		return styles.HelpStyle.Render(NoDataText)
	}

	highlight := models.MaxIndex(groups)
	maxVal := groups[highlight].Total

	labelWidth := 0
	valueWidth := 0
	for _, g := range groups {
		labelWidth = max(labelWidth, lipgloss.Width(g.Label))
		valueWidth = max(valueWidth, len(humanize.Comma(g.Total)))
	}

	barWidth := width - labelWidth - valueWidth - len(barLabelGap) - 2
	if barWidth < 10 {
		barWidth = 10
	}

	lines := make([]string, 0, len(groups))
	for i, g := range groups {
		barLen := 0
		if maxVal > 0 && g.Total > 0 {
			barLen = int(float64(g.Total) / float64(maxVal) * float64(barWidth))
		}

		label := fmt.Sprintf("%*s", labelWidth, g.Label)
		bar := styles.BarStyle(i == highlight).Render(strings.Repeat("█", barLen))
		value := " " + humanize.Comma(g.Total)

		lines = append(lines, label+barLabelGap+bar+value)
	}

	return strings.Join(lines, "\n")
}
