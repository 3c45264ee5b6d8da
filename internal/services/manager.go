// Package services wires the dataset, query engine and session into the
// dashboard controller.
package services

import (
	"fmt"
	"sync"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/analytics"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/config"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/dataset"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/db"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/logger"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/session"
)

// Engine answers the dashboard queries for a date range.
type Engine interface {
	Name() string
	Bounds() models.DateRange
	Summarize(r models.DateRange) (models.Metrics, error)
	Monthly(r models.DateRange) (models.MonthlyTrend, error)
	BySeason(r models.DateRange) ([]models.GroupTotal, error)
	ByWeekday(r models.DateRange) ([]models.GroupTotal, error)
	Close() error
}

// RenderPass describes what one dispatched event renders.
type RenderPass struct {
	Seq      int
	Event    Event
	Views    []ViewID
	Range    models.DateRange
	Snapshot *Snapshot // set when Views contains ViewDashboard
}

// Renders reports whether the pass includes v.
func (p RenderPass) Renders(v ViewID) bool {
	for _, view := range p.Views {
		if view == v {
			return true
		}
	}
	return false
}

// Manager is the dashboard controller. It owns the active date range and
// turns events into render passes.
type Manager struct {
	mu      sync.Mutex
	engine  Engine
	session *session.Session
	bounds  models.DateRange
	active  models.DateRange
	seq     int
	rows    int
}

// Open loads the dataset named in cfg, builds the configured engine and
// starts a new session.
func Open(cfg *config.Config) (*Manager, error) {
	ds, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		return nil, err
	}

	var engine Engine
	switch cfg.Engine {
	case config.EngineSQLite:
		engine, err = db.New(ds.Records())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	default:
		engine = analytics.NewMemory(ds)
	}

	m := NewManager(engine, session.New())
	m.rows = ds.Len()

	logger.Info("dataset loaded",
		"path", ds.Path(),
		"rows", ds.Len(),
		"range", ds.Bounds().String(),
		"engine", engine.Name(),
		"session", m.session.ID(),
	)

	return m, nil
}

// NewManager creates a controller over engine for sess. The active range
// starts as the full dataset bounds.
func NewManager(engine Engine, sess *session.Session) *Manager {
	bounds := engine.Bounds()
	return &Manager{
		engine:  engine,
		session: sess,
		bounds:  bounds,
		active:  bounds,
	}
}

// Dispatch handles one interaction and returns what it renders.
//
// The activated button renders first, a date change re-renders the
// dashboard, and an unvisited session renders the dashboard once more on top
// of whatever else the pass rendered. Each view appears at most once.
func (m *Manager) Dispatch(event Event) RenderPass {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	pass := RenderPass{Seq: m.seq, Event: event}

	switch e := event.(type) {
	case NavigateEvent:
		pass.Views = appendView(pass.Views, e.View)

	case DateRangeChangedEvent:
		m.active = e.Range.Clamp(m.bounds)
		pass.Views = appendView(pass.Views, ViewDashboard)
	}

	if m.session.ConsumeFirstVisit() {
		pass.Views = appendView(pass.Views, ViewDashboard)
	}

	pass.Range = m.active
	if pass.Renders(ViewDashboard) {
		pass.Snapshot = buildSnapshot(m.engine, m.active)
	}

	logger.Debug("render pass",
		"seq", pass.Seq,
		"event", fmt.Sprintf("%T", event),
		"views", fmt.Sprint(pass.Views),
		"range", pass.Range.String(),
		"session", m.session.ID(),
	)

	return pass
}

// Bounds returns the dataset's observed date range.
func (m *Manager) Bounds() models.DateRange {
	return m.bounds
}

// ActiveRange returns the date range currently applied.
func (m *Manager) ActiveRange() models.DateRange {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Session returns the session the controller serves.
func (m *Manager) Session() *session.Session {
	return m.session
}

// EngineName returns the name of the query engine in use.
func (m *Manager) EngineName() string {
	return m.engine.Name()
}

// Rows returns the dataset size when known.
func (m *Manager) Rows() int {
	return m.rows
}

// Close releases the query engine.
func (m *Manager) Close() error {
	return m.engine.Close()
}

func appendView(views []ViewID, v ViewID) []ViewID {
	for _, existing := range views {
		if existing == v {
			return views
		}
	}
	return append(views, v)
}
