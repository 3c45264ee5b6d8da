package analytics

import (
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/dataset"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
)

// Memory answers dashboard queries by scanning the loaded records.
type Memory struct {
	ds *dataset.Dataset
}

// NewMemory creates an engine over ds.
func NewMemory(ds *dataset.Dataset) *Memory {
	return &Memory{ds: ds}
}

// Name identifies the engine in logs and the about view.
func (m *Memory) Name() string {
	return "memory"
}

// Bounds returns the dataset's observed date range.
func (m *Memory) Bounds() models.DateRange {
	return m.ds.Bounds()
}

// Summarize returns the headline metrics for r.
func (m *Memory) Summarize(r models.DateRange) (models.Metrics, error) {
	return Summarize(Filter(m.ds.Records(), r)), nil
}

// Monthly returns the monthly trend for r.
func (m *Memory) Monthly(r models.DateRange) (models.MonthlyTrend, error) {
	return Monthly(Filter(m.ds.Records(), r)), nil
}

// BySeason returns seasonal totals for r.
func (m *Memory) BySeason(r models.DateRange) ([]models.GroupTotal, error) {
	return BySeason(Filter(m.ds.Records(), r)), nil
}

// ByWeekday returns weekday totals for r.
func (m *Memory) ByWeekday(r models.DateRange) ([]models.GroupTotal, error) {
	return ByWeekday(Filter(m.ds.Records(), r)), nil
}

// Close is a no-op; the engine holds no resources.
func (m *Memory) Close() error {
	return nil
}
