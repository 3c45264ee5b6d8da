package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
)

// Bounds returns the observed minimum and maximum dates.
func (db *DB) Bounds() models.DateRange {
	return db.bounds
}

func rangeArgs(r models.DateRange) []any {
	return []any{r.Start.Format(models.DateLayout), r.End.Format(models.DateLayout)}
}

// Summarize returns total, hourly mean and peak hour for r.
func (db *DB) Summarize(r models.DateRange) (models.Metrics, error) {
	var m models.Metrics

	query := `
		SELECT COALESCE(SUM(cnt), 0), AVG(cnt), COUNT(*)
		FROM hourly_rentals
		` + sqlRangeClause

	var avg sql.NullFloat64
	err := db.QueryRowContext(context.Background(), query, rangeArgs(r)...).Scan(&m.Total, &avg, &m.Rows)
	if err != nil {
		return m, fmt.Errorf("failed to query metrics: %w", err)
	}
	if avg.Valid {
		m.Average = avg.Float64
	}
	if m.Rows == 0 {
		return m, nil
	}

	peakQuery := `
		SELECT hr, SUM(cnt) AS total
		FROM hourly_rentals
		` + sqlRangeClause + `
		GROUP BY hr
		ORDER BY total DESC, hr ASC
		LIMIT 1
	`
	err = db.QueryRowContext(context.Background(), peakQuery, rangeArgs(r)...).Scan(&m.PeakHour, &m.PeakCount)
	switch {
	case err == sql.ErrNoRows:
		return m, nil
	case err != nil:
		return m, fmt.Errorf("failed to query peak hour: %w", err)
	}
	m.HasPeak = true

	return m, nil
}

// Monthly returns calendar-month sums for r, overall and per year.
func (db *DB) Monthly(r models.DateRange) (models.MonthlyTrend, error) {
	var trend models.MonthlyTrend

	query := `
		SELECT year, month, SUM(cnt), COUNT(*)
		FROM hourly_rentals
		` + sqlRangeClause + `
		GROUP BY year, month
		ORDER BY year, month
	`

	rows, err := db.QueryContext(context.Background(), query, rangeArgs(r)...)
	if err != nil {
		return trend, fmt.Errorf("failed to query monthly totals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var year, month, n int
		var total int64
		if err := rows.Scan(&year, &month, &total, &n); err != nil {
			return trend, fmt.Errorf("failed to scan monthly totals: %w", err)
		}
		if month < 1 || month > 12 {
			continue
		}
		trend.Rows += n

		idx := month - 1
		trend.Months[idx] += float64(total)

		if n := len(trend.Years); n == 0 || trend.Years[n-1].Year != year {
			trend.Years = append(trend.Years, models.YearSeries{Year: year})
		}
		trend.Years[len(trend.Years)-1].Months[idx] += float64(total)
	}

	return trend, rows.Err()
}

// BySeason returns seasonal totals for r ordered by season code.
func (db *DB) BySeason(r models.DateRange) ([]models.GroupTotal, error) {
	return db.groupTotals("season", r, models.SeasonLabel)
}

// ByWeekday returns weekday totals for r ordered by weekday code.
func (db *DB) ByWeekday(r models.DateRange) ([]models.GroupTotal, error) {
	return db.groupTotals("weekday", r, models.WeekdayLabel)
}

// groupTotals sums cnt grouped by column. column is never user input.
func (db *DB) groupTotals(column string, r models.DateRange, label func(int) string) ([]models.GroupTotal, error) {
	query := fmt.Sprintf(`
		SELECT %[1]s, SUM(cnt)
		FROM hourly_rentals
		%[2]s
		GROUP BY %[1]s
		ORDER BY %[1]s
	`, column, sqlRangeClause)

	rows, err := db.QueryContext(context.Background(), query, rangeArgs(r)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s totals: %w", column, err)
	}
	defer func() { _ = rows.Close() }()

	groups := make([]models.GroupTotal, 0)
	for rows.Next() {
		var g models.GroupTotal
		if err := rows.Scan(&g.Code, &g.Total); err != nil {
			return nil, fmt.Errorf("failed to scan %s totals: %w", column, err)
		}
		g.Label = label(g.Code)
		groups = append(groups, g)
	}

	return groups, rows.Err()
}
