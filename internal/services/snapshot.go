package services

import (
	"fmt"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/logger"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
)

// Snapshot is everything the dashboard view needs for one date range.
// Each block carries its own error so a failing block does not hide the others.
type Snapshot struct {
	Range models.DateRange

	Metrics    models.Metrics
	MetricsErr error

	Monthly    models.MonthlyTrend
	MonthlyErr error

	Seasons    []models.GroupTotal
	SeasonsErr error

	Weekdays    []models.GroupTotal
	WeekdaysErr error
}

// Failed reports whether any block failed.
func (s *Snapshot) Failed() bool {
	return s.MetricsErr != nil || s.MonthlyErr != nil || s.SeasonsErr != nil || s.WeekdaysErr != nil
}

// buildSnapshot queries every block for r, isolating failures per block.
func buildSnapshot(engine Engine, r models.DateRange) *Snapshot {
	snap := &Snapshot{Range: r}

	snap.MetricsErr = runBlock("metrics", func() (err error) {
		snap.Metrics, err = engine.Summarize(r)
		return err
	})
	snap.MonthlyErr = runBlock("monthly", func() (err error) {
		snap.Monthly, err = engine.Monthly(r)
		return err
	})
	snap.SeasonsErr = runBlock("seasons", func() (err error) {
		snap.Seasons, err = engine.BySeason(r)
		return err
	})
	snap.WeekdaysErr = runBlock("weekdays", func() (err error) {
		snap.Weekdays, err = engine.ByWeekday(r)
		return err
	})

	return snap
}

// runBlock runs fn, turning a panic into an error, and logs failures.
func runBlock(name string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s block panicked: %v", name, r)
		}
		if err != nil {
			logger.Error("dashboard block failed", "block", name, "error", err)
		}
	}()
	return fn()
}
