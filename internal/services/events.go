package services

import "github.com/j-veylop/bikeshare-dashboard-tui/internal/models"

// ViewID identifies a render target.
type ViewID int

const (
	// ViewAbout is the static about page.
	ViewAbout ViewID = iota
	// ViewDashboard is the metrics and charts page.
	ViewDashboard
)

// NavigationViews lists the sidebar buttons in display order.
var NavigationViews = []ViewID{ViewAbout, ViewDashboard}

// String returns the view name.
func (v ViewID) String() string {
	switch v {
	case ViewAbout:
		return "About"
	case ViewDashboard:
		return "Dashboard"
	default:
		return "Unknown"
	}
}

// Icon returns the emoji shown on the view's navigation button.
func (v ViewID) Icon() string {
	switch v {
	case ViewAbout:
		return "ℹ️"
	case ViewDashboard:
		return "📊"
	default:
		return "?"
	}
}

// Label returns the navigation button text.
func (v ViewID) Label() string {
	return v.Icon() + " " + v.String()
}

type (
	// StartEvent is dispatched once when the program starts.
	StartEvent struct{}

	// NavigateEvent is dispatched when a navigation button is activated.
	NavigateEvent struct {
		View ViewID
	}

	// DateRangeChangedEvent is dispatched when the date pickers are submitted.
	DateRangeChangedEvent struct {
		Range models.DateRange
	}
)

// Event is the interface implemented by all controller events.
type Event interface {
	isEvent()
}

func (StartEvent) isEvent()            {}
func (NavigateEvent) isEvent()         {}
func (DateRangeChangedEvent) isEvent() {}
