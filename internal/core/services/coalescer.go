package services

import (
	"sync"
	"time"
)

// Coalescer collapses bursts of change notifications per actor into a single
// delayed invocation of the fire callback. Each new Schedule for an actor
// cancels the previous pending timer and restarts the quiet-period clock, so
// only the last notification in a burst does work. All map mutations happen
// under the mutex; per actor at most one timer is ever outstanding.
type Coalescer struct {
	mu      sync.Mutex
	pending map[string]Timer
	quiet   time.Duration
	clock   Clock
	fire    func(actorID string)
}

// NewCoalescer creates a coalescer with the given quiet period. fire runs on
// the timer goroutine after a quiet period elapses uninterrupted.
func NewCoalescer(quiet time.Duration, clock Clock, fire func(actorID string)) *Coalescer {
	return &Coalescer{
		pending: make(map[string]Timer),
		quiet:   quiet,
		clock:   clock,
		fire:    fire,
	}
}

// Schedule arms (or re-arms) the quiet-period timer for the actor.
func (c *Coalescer) Schedule(actorID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.pending[actorID]; ok {
		t.Stop()
	}
	var timer Timer
	timer = c.clock.AfterFunc(c.quiet, func() {
		// A timer can be superseded between becoming due and running; only
		// the one still registered in the table may fire.
		c.mu.Lock()
		cur, ok := c.pending[actorID]
		if !ok || cur != timer {
			c.mu.Unlock()
			return
		}
		delete(c.pending, actorID)
		c.mu.Unlock()
		c.fire(actorID)
	})
	c.pending[actorID] = timer
}

// Remove cancels and drops the pending entry for the actor, if any. It
// reports whether an entry existed. Manual invocations call this to
// supersede a pending debounced one.
func (c *Coalescer) Remove(actorID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, ok := c.pending[actorID]
	if ok {
		t.Stop()
		delete(c.pending, actorID)
	}
	return ok
}

// CancelAll stops every outstanding timer. Called at shutdown so no
// conversion fires against a torn-down store.
func (c *Coalescer) CancelAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, t := range c.pending {
		t.Stop()
		delete(c.pending, id)
	}
}

// PendingCount reports how many actors currently have an armed timer.
func (c *Coalescer) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}
