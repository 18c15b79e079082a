package center

//go:generate go run go.uber.org/mock/mockgen -source=./center.go -destination=./mocks/center_mock.go -package=mocks

import (
	"sync"
	"time"

	"resort/internal/domains/notification/model"
	"resort/shared/timezone"
)

const (
	// MaxVisible caps how many notifications a user sees at once. Pushing
	// past the cap evicts the oldest.
	MaxVisible = 5

	// DefaultTTL is how long a notification stays before auto-dismissal.
	DefaultTTL = 5 * time.Second
)

type Center interface {
	Push(userID, message string, severity model.Severity) model.Notification
	List(userID string) []model.Notification
	Dismiss(userID string, id int64)
	DismissAll(userID string)
}

type centerImpl struct {
	mu     sync.Mutex
	ttl    time.Duration
	lastID int64
	users  map[string][]entry
}

type entry struct {
	notification model.Notification
	timer        *time.Timer
}

func New() Center {
	return NewWithTTL(DefaultTTL)
}

func NewWithTTL(ttl time.Duration) Center {
	return &centerImpl{
		ttl:   ttl,
		users: make(map[string][]entry),
	}
}

// Push prepends a notification for the user, evicting beyond MaxVisible.
// The notification dismisses itself after the configured TTL.
func (c *centerImpl) Push(userID, message string, severity model.Severity) model.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	// IDs are wall-clock millis, bumped when two pushes land in the same
	// millisecond so IDs stay unique and ordered.
	id := time.Now().UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}

	c.lastID = id

	n := model.Notification{
		ID:        id,
		Message:   message,
		Severity:  severity,
		CreatedAt: timezone.Now(),
	}

	timer := time.AfterFunc(c.ttl, func() {
		c.Dismiss(userID, id)
	})

	entries := append([]entry{{notification: n, timer: timer}}, c.users[userID]...)
	if len(entries) > MaxVisible {
		for _, evicted := range entries[MaxVisible:] {
			evicted.timer.Stop()
		}

		entries = entries[:MaxVisible]
	}

	c.users[userID] = entries

	return n
}

// List returns the user's visible notifications, newest first.
func (c *centerImpl) List(userID string) []model.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := c.users[userID]
	res := make([]model.Notification, len(entries))

	for i, e := range entries {
		res[i] = e.notification
	}

	return res
}

// Dismiss removes one notification. Dismissing an unknown or already
// dismissed id is a no-op.
func (c *centerImpl) Dismiss(userID string, id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := c.users[userID]
	for i, e := range entries {
		if e.notification.ID == id {
			e.timer.Stop()
			c.users[userID] = append(entries[:i], entries[i+1:]...)

			return
		}
	}
}

func (c *centerImpl) DismissAll(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.users[userID] {
		e.timer.Stop()
	}

	delete(c.users, userID)
}
