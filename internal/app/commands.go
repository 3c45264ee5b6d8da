package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/services"
)

const (
	// DefaultTickInterval is the default interval between ticks.
	DefaultTickInterval = time.Second

	// DefaultNotificationDuration is the default duration for notifications.
	DefaultNotificationDuration = 5 * time.Second

	// QuickNotificationDuration is for brief notifications.
	QuickNotificationDuration = 3 * time.Second

	// LongNotificationDuration is for important notifications.
	LongNotificationDuration = 8 * time.Second
)

// tickCmd returns a command that sends a TickMsg after the specified interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

func defaultTickCmd() tea.Cmd {
	return tickCmd(DefaultTickInterval)
}

// dispatchCmd runs event through the controller off the update loop.
func dispatchCmd(mgr *services.Manager, event services.Event) tea.Cmd {
	return func() tea.Msg {
		return RenderPassMsg{Pass: mgr.Dispatch(event)}
	}
}

// clearNotificationCmd returns a command that removes a notification after a delay.
func clearNotificationCmd(id string, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return RemoveNotificationMsg{ID: id}
	})
}

func notifyCmd(t NotificationType, message string, d time.Duration) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{Type: t, Message: message, Duration: d}
	}
}

// Commands exposes the command constructors to pages.
type Commands struct {
	manager *services.Manager
}

// NewCommands creates a new Commands instance.
func NewCommands(mgr *services.Manager) *Commands {
	return &Commands{manager: mgr}
}

// Dispatch returns a command that sends event to the controller.
func (c *Commands) Dispatch(event services.Event) tea.Cmd {
	if c.manager == nil {
		return nil
	}
	return dispatchCmd(c.manager, event)
}

// Navigate returns a command that activates a navigation button.
func (c *Commands) Navigate(v services.ViewID) tea.Cmd {
	return c.Dispatch(services.NavigateEvent{View: v})
}

// ResetRange returns a command that restores the full dataset date range.
func (c *Commands) ResetRange() tea.Cmd {
	if c.manager == nil {
		return nil
	}
	return c.Dispatch(services.DateRangeChangedEvent{Range: c.manager.Bounds()})
}

// NotifySuccess returns a command that adds a success notification.
func (c *Commands) NotifySuccess(message string) tea.Cmd {
	return notifyCmd(NotificationSuccess, message, DefaultNotificationDuration)
}

// NotifyError returns a command that adds an error notification.
func (c *Commands) NotifyError(message string) tea.Cmd {
	return notifyCmd(NotificationError, message, LongNotificationDuration)
}

// NotifyWarning returns a command that adds a warning notification.
func (c *Commands) NotifyWarning(message string) tea.Cmd {
	return notifyCmd(NotificationWarning, message, DefaultNotificationDuration)
}

// NotifyInfo returns a command that adds an info notification.
func (c *Commands) NotifyInfo(message string) tea.Cmd {
	return notifyCmd(NotificationInfo, message, QuickNotificationDuration)
}

// ClearNotification returns a command that removes a notification after a delay.
func (c *Commands) ClearNotification(id string, delay time.Duration) tea.Cmd {
	return clearNotificationCmd(id, delay)
}
