// Package analytics computes the dashboard aggregates in process.
package analytics

import (
	"sort"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
)

// Filter returns the records whose date falls inside r, both ends inclusive.
// The result shares no state with the input slice.
func Filter(records []models.Record, r models.DateRange) []models.Record {
	if r.IsEmpty() {
		return nil
	}
	var out []models.Record
	for _, rec := range records {
		if r.Contains(rec.Date) {
			out = append(out, rec)
		}
	}
	return out
}

// Summarize computes total, hourly mean and peak hour over view.
func Summarize(view []models.Record) models.Metrics {
	var m models.Metrics
	if len(view) == 0 {
		return m
	}

	var byHour [24]int64
	var seen [24]bool
	for _, rec := range view {
		m.Total += rec.Count
		byHour[rec.Hour] += rec.Count
		seen[rec.Hour] = true
	}
	m.Rows = len(view)
	m.Average = float64(m.Total) / float64(m.Rows)

	for hr := range byHour {
		if !seen[hr] {
			continue
		}
		if !m.HasPeak || byHour[hr] > m.PeakCount {
			m.PeakHour = hr
			m.PeakCount = byHour[hr]
			m.HasPeak = true
		}
	}
	return m
}

// Monthly sums view by calendar month, overall and per year.
func Monthly(view []models.Record) models.MonthlyTrend {
	trend := models.MonthlyTrend{Rows: len(view)}
	years := make(map[int]*models.YearSeries)

	for _, rec := range view {
		idx := int(rec.Date.Month()) - 1
		trend.Months[idx] += float64(rec.Count)

		ys, ok := years[rec.Date.Year()]
		if !ok {
			ys = &models.YearSeries{Year: rec.Date.Year()}
			years[rec.Date.Year()] = ys
		}
		ys.Months[idx] += float64(rec.Count)
	}

	for _, ys := range years {
		trend.Years = append(trend.Years, *ys)
	}
	sort.Slice(trend.Years, func(i, j int) bool {
		return trend.Years[i].Year < trend.Years[j].Year
	})
	return trend
}

// BySeason sums view per season code.
func BySeason(view []models.Record) []models.GroupTotal {
	return groupBy(view, func(r models.Record) int { return r.Season }, models.SeasonLabel)
}

// ByWeekday sums view per weekday code.
func ByWeekday(view []models.Record) []models.GroupTotal {
	return groupBy(view, func(r models.Record) int { return r.Weekday }, models.WeekdayLabel)
}

// groupBy sums counts per key and returns the groups ordered by key.
func groupBy(view []models.Record, key func(models.Record) int, label func(int) string) []models.GroupTotal {
	totals := make(map[int]int64)
	for _, rec := range view {
		totals[key(rec)] += rec.Count
	}

	groups := make([]models.GroupTotal, 0, len(totals))
	for code, total := range totals {
		groups = append(groups, models.GroupTotal{Code: code, Label: label(code), Total: total})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Code < groups[j].Code })
	return groups
}
