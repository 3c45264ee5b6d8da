package app

import (
	"time"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/services"
)

// TickMsg is sent periodically to expire notifications.
type TickMsg struct {
	Time time.Time
}

// RenderPassMsg carries the result of a dispatched event.
type RenderPassMsg struct {
	Pass services.RenderPass
}

// AddNotificationMsg requests adding a new notification.
type AddNotificationMsg struct {
	Type     NotificationType
	Message  string
	Duration time.Duration
}

// RemoveNotificationMsg requests removal of a notification.
type RemoveNotificationMsg struct {
	ID string
}
