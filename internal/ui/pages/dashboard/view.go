package dashboard

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/logger"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/services"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/ui/components"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/ui/styles"
)

const (
	noValue      = "—"
	noDataDelta  = "no data"
	chartHeight  = 10
	yAxisReserve = 14
)

// Chart subheaders.
const (
	MonthlyHeader = "Monthly Count of Bicycle Users (2011-2012)"
	SeasonHeader  = "Count of Bicycle users by Season"
	WeekdayHeader = "Count of Bicycle users by Weekday"
)

// View renders the dashboard page.
func (m *Model) View() string {
	snap := m.state.Snapshot()

	sections := []string{m.renderTitle(snap)}

	if snap == nil {
		sections = append(sections, styles.HelpStyle.Render("Dashboard data is not available yet."))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	sections = append(sections,
		renderBlock("metrics", func() string { return m.renderMetrics(snap) }),
		styles.SubTitleStyle.Render(MonthlyHeader),
		renderBlock("monthly", func() string { return m.renderMonthly(snap) }),
		styles.SubTitleStyle.Render(SeasonHeader),
		renderBlock("seasons", func() string { return m.renderGroups("seasons", snap.Seasons, snap.SeasonsErr) }),
		styles.SubTitleStyle.Render(WeekdayHeader),
		renderBlock("weekdays", func() string { return m.renderGroups("weekdays", snap.Weekdays, snap.WeekdaysErr) }),
		styles.CaptionStyle.Render(Caption),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderTitle(snap *services.Snapshot) string {
	title := styles.TitleStyle.Render(Title)
	if snap == nil {
		return title
	}

	subtitle := styles.HelpStyle.Render(fmt.Sprintf("%s (%d days)", snap.Range.String(), snap.Range.Days()))
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

// renderBlock renders one dashboard block, turning a panic into an inline
// error line so the remaining blocks still render.
func renderBlock(name string, fn func() string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("dashboard render failed", "block", name, "panic", r)
			out = blockError(name, fmt.Errorf("%v", r))
		}
	}()
	return fn()
}

func blockError(name string, err error) string {
	return styles.ErrorTextStyle.Render(fmt.Sprintf("⚠ %s unavailable: %v", name, err))
}

func (m *Model) renderMetrics(snap *services.Snapshot) string {
	if snap.MetricsErr != nil {
		return blockError("metrics", snap.MetricsErr)
	}
	return components.RenderMetricRow(metricCards(snap.Metrics), max(m.width, 60))
}

// metricCards formats the headline metrics.
func metricCards(mt models.Metrics) []components.MetricCard {
	total := components.MetricCard{
		Label: "Total Rentals",
		Value: humanize.Comma(mt.Total),
	}

	average := components.MetricCard{Label: "Average Daily Rentals", Value: noValue, Delta: noDataDelta}
	if mt.HasData() {
		average.Value = strconv.FormatFloat(mt.Average, 'f', 2, 64)
		average.Delta = ""
	}

	peak := components.MetricCard{Label: "Peak Rental Hour", Value: noValue, Delta: noDataDelta}
	if mt.HasPeak {
		peak.Value = fmt.Sprintf("%d:00", mt.PeakHour)
		peak.Delta = "↑ " + humanize.Comma(mt.PeakCount) + " rentals"
	}

	return []components.MetricCard{total, average, peak}
}

func (m *Model) renderMonthly(snap *services.Snapshot) string {
	if snap.MonthlyErr != nil {
		return blockError("monthly", snap.MonthlyErr)
	}
	return components.RenderMonthlyChart(snap.Monthly, m.width-yAxisReserve, chartHeight)
}

func (m *Model) renderGroups(name string, groups []models.GroupTotal, err error) string {
	if err != nil {
		return blockError(name, err)
	}
	return components.RenderBarChart(groups, m.width-2)
}
