package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/analytics"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/config"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/dataset"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/session"
)

func day(s string) time.Time {
	t, err := models.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func fixture() []models.Record {
	return []models.Record{
		{Date: day("2011-01-01"), Hour: 0, Season: 1, Weekday: 6, Count: 10},
		{Date: day("2011-01-01"), Hour: 1, Season: 1, Weekday: 6, Count: 50},
		{Date: day("2011-06-15"), Hour: 2, Season: 2, Weekday: 3, Count: 30},
		{Date: day("2011-12-31"), Hour: 1, Season: 1, Weekday: 6, Count: 5},
	}
}

func newTestManager() *Manager {
	return NewManager(analytics.NewMemory(dataset.New(fixture())), session.New())
}

func TestDispatch_FirstVisitRendersDashboard(t *testing.T) {
	m := newTestManager()

	pass := m.Dispatch(StartEvent{})
	if len(pass.Views) != 1 || pass.Views[0] != ViewDashboard {
		t.Fatalf("Views = %v, want [Dashboard]", pass.Views)
	}
	if pass.Snapshot == nil {
		t.Fatal("dashboard pass should carry a snapshot")
	}
	if m.Session().FirstVisit() {
		t.Error("session should be visited after the first pass")
	}

	next := m.Dispatch(StartEvent{})
	if len(next.Views) != 0 {
		t.Errorf("second pass without a button should render nothing, got %v", next.Views)
	}
	if next.Snapshot != nil {
		t.Error("pass without dashboard should not carry a snapshot")
	}
	if next.Seq != pass.Seq+1 {
		t.Errorf("Seq = %d, want %d", next.Seq, pass.Seq+1)
	}
}

func TestDispatch_ButtonOnFirstVisitRendersBoth(t *testing.T) {
	m := newTestManager()

	pass := m.Dispatch(NavigateEvent{View: ViewAbout})
	if len(pass.Views) != 2 || pass.Views[0] != ViewAbout || pass.Views[1] != ViewDashboard {
		t.Fatalf("Views = %v, want [About Dashboard]", pass.Views)
	}
}

func TestDispatch_DashboardButtonOnFirstVisitRendersOnce(t *testing.T) {
	m := newTestManager()

	pass := m.Dispatch(NavigateEvent{View: ViewDashboard})
	if len(pass.Views) != 1 || pass.Views[0] != ViewDashboard {
		t.Fatalf("Views = %v, want [Dashboard]", pass.Views)
	}
}

func TestDispatch_Navigation(t *testing.T) {
	m := newTestManager()
	m.Dispatch(StartEvent{})

	about := m.Dispatch(NavigateEvent{View: ViewAbout})
	if len(about.Views) != 1 || about.Views[0] != ViewAbout {
		t.Errorf("Views = %v, want [About]", about.Views)
	}
	if about.Renders(ViewDashboard) {
		t.Error("About pass should not render the dashboard")
	}

	dash := m.Dispatch(NavigateEvent{View: ViewDashboard})
	if !dash.Renders(ViewDashboard) || dash.Snapshot == nil {
		t.Error("Dashboard button should render the dashboard with a snapshot")
	}
}

func TestDispatch_DateRangeChangedClamps(t *testing.T) {
	m := newTestManager()
	m.Dispatch(StartEvent{})

	pass := m.Dispatch(DateRangeChangedEvent{
		Range: models.NewDateRange(day("2010-01-01"), day("2011-06-15")),
	})

	if !pass.Renders(ViewDashboard) {
		t.Fatal("date change should render the dashboard")
	}
	if !pass.Range.Start.Equal(day("2011-01-01")) || !pass.Range.End.Equal(day("2011-06-15")) {
		t.Errorf("Range = %s, want clamped start", pass.Range)
	}
	if pass.Snapshot.Metrics.Total != 90 {
		t.Errorf("Total = %d, want 90", pass.Snapshot.Metrics.Total)
	}
	if !m.ActiveRange().Start.Equal(day("2011-01-01")) {
		t.Errorf("ActiveRange() = %s", m.ActiveRange())
	}
}

func TestDispatch_InvertedRangeIsEmpty(t *testing.T) {
	m := newTestManager()
	m.Dispatch(StartEvent{})

	pass := m.Dispatch(DateRangeChangedEvent{
		Range: models.NewDateRange(day("2011-12-31"), day("2011-01-01")),
	})

	snap := pass.Snapshot
	if snap == nil {
		t.Fatal("snapshot missing")
	}
	if snap.Failed() {
		t.Errorf("empty range should not fail: %+v", snap)
	}
	if snap.Metrics.HasData() || snap.Metrics.HasPeak {
		t.Errorf("Metrics = %+v, want no data", snap.Metrics)
	}
	if len(snap.Seasons) != 0 || len(snap.Weekdays) != 0 {
		t.Error("empty range should produce zero categories")
	}
	if len(snap.Monthly.Values()) != 12 {
		t.Error("monthly trend should keep twelve positions")
	}
}

func TestSnapshot_PeakHourFixture(t *testing.T) {
	m := newTestManager()
	snap := buildSnapshot(m.engine, models.NewDateRange(day("2011-01-01"), day("2011-06-15")))

	if snap.Metrics.PeakHour != 1 || snap.Metrics.PeakCount != 50 {
		t.Errorf("peak = %d (%d), want 1 (50)", snap.Metrics.PeakHour, snap.Metrics.PeakCount)
	}
}

// brokenEngine fails the seasonal block and panics in the weekday block.
type brokenEngine struct {
	*analytics.Memory
}

func (brokenEngine) BySeason(models.DateRange) ([]models.GroupTotal, error) {
	return nil, errors.New("season query failed")
}

func (brokenEngine) ByWeekday(models.DateRange) ([]models.GroupTotal, error) {
	var groups []models.GroupTotal
	_ = groups[3]
	return groups, nil
}

func TestSnapshot_BlocksAreIsolated(t *testing.T) {
	engine := brokenEngine{analytics.NewMemory(dataset.New(fixture()))}
	m := NewManager(engine, session.New())

	pass := m.Dispatch(StartEvent{})
	snap := pass.Snapshot

	if snap.MetricsErr != nil || snap.MonthlyErr != nil {
		t.Fatalf("healthy blocks failed: %v / %v", snap.MetricsErr, snap.MonthlyErr)
	}
	if snap.Metrics.Total != 95 {
		t.Errorf("Total = %d, want 95", snap.Metrics.Total)
	}
	if snap.SeasonsErr == nil {
		t.Error("SeasonsErr should be set")
	}
	if snap.WeekdaysErr == nil {
		t.Error("WeekdaysErr should capture the panic")
	}
	if !snap.Failed() {
		t.Error("Failed() should be true")
	}
}

func TestViewID(t *testing.T) {
	if ViewAbout.String() != "About" || ViewDashboard.String() != "Dashboard" {
		t.Error("view names mismatch")
	}
	if ViewID(9).String() != "Unknown" {
		t.Error("unknown view name mismatch")
	}
	if ViewDashboard.Label() != "📊 Dashboard" {
		t.Errorf("Label() = %q", ViewDashboard.Label())
	}
	if len(NavigationViews) != 2 || NavigationViews[0] != ViewAbout {
		t.Error("navigation order mismatch")
	}
}

func writeDataset(t *testing.T) string {
	t.Helper()
	content := "dteday,hr,season,weekday,cnt\n" +
		"2011-01-01,0,1,6,10\n" +
		"2011-01-01,1,1,6,50\n" +
		"2011-01-02,1,1,0,30\n"
	path := filepath.Join(t.TempDir(), "hour.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestOpen(t *testing.T) {
	path := writeDataset(t)

	for _, engine := range []string{config.EngineMemory, config.EngineSQLite} {
		t.Run(engine, func(t *testing.T) {
			m, err := Open(&config.Config{DatasetPath: path, Engine: engine, LogLevel: "info"})
			if err != nil {
				t.Fatalf("Open() failed: %v", err)
			}
			defer m.Close()

			if m.EngineName() != engine {
				t.Errorf("EngineName() = %q, want %q", m.EngineName(), engine)
			}
			if m.Rows() != 3 {
				t.Errorf("Rows() = %d, want 3", m.Rows())
			}

			pass := m.Dispatch(StartEvent{})
			if pass.Snapshot.Metrics.Total != 90 {
				t.Errorf("Total = %d, want 90", pass.Snapshot.Metrics.Total)
			}
			if pass.Snapshot.Metrics.PeakHour != 1 || pass.Snapshot.Metrics.PeakCount != 80 {
				t.Errorf("peak = %d (%d), want 1 (80)", pass.Snapshot.Metrics.PeakHour, pass.Snapshot.Metrics.PeakCount)
			}
		})
	}
}

func TestOpen_MissingDataset(t *testing.T) {
	_, err := Open(&config.Config{
		DatasetPath: filepath.Join(t.TempDir(), "nope.csv"),
		Engine:      config.EngineMemory,
	})
	if !errors.Is(err, dataset.ErrNotFound) {
		t.Errorf("Open() error = %v, want ErrNotFound", err)
	}
}
