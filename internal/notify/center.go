// Package notify holds the transient confirmations the cart emits. A
// notification is visible when pushed, starts dismissing after a fixed
// delay, and is gone a short animation window later. Both delays are
// independent cancelable timers, so a notification can also be dismissed
// early.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultDismissAfter = 2000 * time.Millisecond
	DefaultRemoveAfter  = 300 * time.Millisecond
)

type State string

const (
	StateVisible    State = "visible"
	StateDismissing State = "dismissing"
)

type Notification struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	State   State  `json:"state"`
}

type entry struct {
	n     Notification
	timer *time.Timer
}

type Center struct {
	mu           sync.Mutex
	dismissAfter time.Duration
	removeAfter  time.Duration
	entries      []*entry
}

// NewCenter builds a notification center. Non-positive durations fall back
// to the defaults.
func NewCenter(dismissAfter, removeAfter time.Duration) *Center {
	if dismissAfter <= 0 {
		dismissAfter = DefaultDismissAfter
	}
	if removeAfter <= 0 {
		removeAfter = DefaultRemoveAfter
	}
	return &Center{
		dismissAfter: dismissAfter,
		removeAfter:  removeAfter,
	}
}

// Push shows a notification and schedules its dismissal.
func (c *Center) Push(message string) {
	e := &entry{n: Notification{
		ID:      uuid.NewString(),
		Message: message,
		State:   StateVisible,
	}}

	c.mu.Lock()
	c.entries = append(c.entries, e)
	e.timer = time.AfterFunc(c.dismissAfter, func() { c.dismiss(e) })
	c.mu.Unlock()
}

// Dismiss starts a notification's removal immediately instead of waiting
// out the visible delay. Unknown or already-dismissing ids are a no-op.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		if e.n.ID == id && e.n.State == StateVisible {
			if e.timer != nil {
				e.timer.Stop()
			}
			c.beginRemoval(e)
			return
		}
	}
}

// Active returns the live notifications in push order.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Notification, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e.n)
	}
	return out
}

// Close cancels all pending timers. Notifications already dismissing are
// dropped immediately.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		if e.timer != nil {
			e.timer.Stop()
		}
	}
	c.entries = nil
}

func (c *Center) dismiss(e *entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e.n.State != StateVisible {
		return
	}
	c.beginRemoval(e)
}

// beginRemoval flips the entry to dismissing and schedules the final
// removal. Caller holds the lock.
func (c *Center) beginRemoval(e *entry) {
	e.n.State = StateDismissing
	e.timer = time.AfterFunc(c.removeAfter, func() { c.remove(e) })
}

func (c *Center) remove(e *entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, cur := range c.entries {
		if cur == e {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}
