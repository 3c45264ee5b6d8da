// Package app provides the main Bubble Tea application model and state management.
package app

import (
	"strconv"
	"sync"
	"time"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/services"
)

// NotificationType defines the type of notification.
type NotificationType int

const (
	// NotificationSuccess represents a success notification.
	NotificationSuccess NotificationType = iota
	// NotificationError represents an error notification.
	NotificationError
	// NotificationWarning represents a warning notification.
	NotificationWarning
	// NotificationInfo represents an informational notification.
	NotificationInfo
	// NotificationLoading represents a loading notification with spinner.
	NotificationLoading
)

const (
	// LoadingNotificationID is the fixed ID for loading notifications.
	LoadingNotificationID = "__loading__"

	maxNotifications = 10
)

// String returns the string representation of a NotificationType.
func (n NotificationType) String() string {
	switch n {
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	case NotificationWarning:
		return "warning"
	case NotificationInfo:
		return "info"
	case NotificationLoading:
		return "loading"
	default:
		return "unknown"
	}
}

// Notification represents a user-facing notification message.
type Notification struct {
	ID        string
	Type      NotificationType
	Message   string
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired returns true if the notification has expired.
func (n *Notification) IsExpired() bool {
	if n.Duration <= 0 {
		return false
	}
	return time.Since(n.CreatedAt) > n.Duration
}

// State is shared between the root model and the pages. It holds the latest
// render pass and the notification queue.
type State struct {
	mu sync.RWMutex

	pass    services.RenderPass
	hasPass bool
	loading bool

	lastUpdated time.Time

	notifications   []Notification
	notificationSeq int
}

// NewState creates an empty state that is loading its first pass.
func NewState() *State {
	return &State{
		loading:       true,
		notifications: make([]Notification, 0),
	}
}

// SetPass stores p and clears the loading flag. Passes arrive from
// concurrent commands, so one older than the stored pass is dropped and
// SetPass reports false.
func (s *State) SetPass(p services.RenderPass) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasPass && p.Seq <= s.pass.Seq {
		return false
	}

	s.pass = p
	s.hasPass = true
	s.loading = false
	s.lastUpdated = time.Now()
	return true
}

// Pass returns the latest render pass, if any.
func (s *State) Pass() (services.RenderPass, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pass, s.hasPass
}

// Renders reports whether the latest pass renders v.
func (s *State) Renders(v services.ViewID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasPass && s.pass.Renders(v)
}

// Snapshot returns the dashboard snapshot of the latest pass, or nil.
func (s *State) Snapshot() *services.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasPass {
		return nil
	}
	return s.pass.Snapshot
}

// SetLoading marks a pass as being computed.
func (s *State) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

// IsLoading returns true while a pass is being computed.
func (s *State) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastUpdated returns when the latest pass was stored.
func (s *State) LastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdated
}

// AddNotification adds a new notification and returns its ID.
func (s *State) AddNotification(notifType NotificationType, message string, duration time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notificationSeq++
	id := "n" + strconv.Itoa(s.notificationSeq)

	s.notifications = append(s.notifications, Notification{
		ID:        id,
		Type:      notifType,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  duration,
	})

	if len(s.notifications) > maxNotifications {
		s.notifications = s.notifications[len(s.notifications)-maxNotifications:]
	}

	return id
}

// RemoveNotification removes a notification by ID.
func (s *State) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// ClearExpiredNotifications removes all expired notifications.
func (s *State) ClearExpiredNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}
	s.notifications = active
}

// GetNotifications returns a copy of all active notifications.
func (s *State) GetNotifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}
	return active
}

// SetLoadingNotification sets a loading notification message.
func (s *State) SetLoadingNotification(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications[i].Message = message
			return
		}
	}

	s.notifications = append(s.notifications, Notification{
		ID:        LoadingNotificationID,
		Type:      NotificationLoading,
		Message:   message,
		CreatedAt: time.Now(),
	})
}

// ClearLoadingNotification removes the loading notification.
func (s *State) ClearLoadingNotification() {
	s.RemoveNotification(LoadingNotificationID)
}
