package services_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vttkeeper/coin_purse_app/internal/core/services"
)

// --- Fake clock ---

// fakeTimer is a hand-driven timer armed on a fakeClock.
type fakeTimer struct {
	mu       sync.Mutex
	deadline time.Duration
	f        func()
	stopped  bool
	fired    bool
}

func (t *fakeTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	wasPending := !t.stopped && !t.fired
	t.stopped = true
	return wasPending
}

// take marks the timer fired if it is due and still live, returning its callback.
func (t *fakeTimer) take(now time.Duration) func() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || t.fired || t.deadline > now {
		return nil
	}
	t.fired = true
	return t.f
}

// fakeClock drives timers manually via Advance.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

func newFakeClock() *fakeClock {
	return &fakeClock{}
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) services.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{deadline: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward and fires every due timer synchronously.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	now := c.now
	timers := make([]*fakeTimer, len(c.timers))
	copy(timers, c.timers)
	c.mu.Unlock()

	for _, t := range timers {
		if f := t.take(now); f != nil {
			f()
		}
	}
}

// --- Tests ---

const quietPeriod = 100 * time.Millisecond

func TestCoalescer_BurstCollapsesToOneFire(t *testing.T) {
	clock := newFakeClock()
	var mu sync.Mutex
	var fires []string

	c := services.NewCoalescer(quietPeriod, clock, func(actorID string) {
		mu.Lock()
		fires = append(fires, actorID)
		mu.Unlock()
	})

	// Three notifications 50 units apart: each reschedule restarts the clock
	c.Schedule("actor-1")
	clock.Advance(50 * time.Millisecond)
	c.Schedule("actor-1")
	clock.Advance(50 * time.Millisecond)
	c.Schedule("actor-1")

	// 99 units after the last notification: still pending
	clock.Advance(99 * time.Millisecond)
	assert.Empty(t, fires)
	assert.Equal(t, 1, c.PendingCount())

	// Quiet period complete: exactly one fire
	clock.Advance(1 * time.Millisecond)
	assert.Equal(t, []string{"actor-1"}, fires)
	assert.Equal(t, 0, c.PendingCount())

	// No residual timers fire later
	clock.Advance(time.Second)
	assert.Len(t, fires, 1)
}

func TestCoalescer_IndependentActors(t *testing.T) {
	clock := newFakeClock()
	var mu sync.Mutex
	fired := map[string]int{}

	c := services.NewCoalescer(quietPeriod, clock, func(actorID string) {
		mu.Lock()
		fired[actorID]++
		mu.Unlock()
	})

	c.Schedule("actor-1")
	c.Schedule("actor-2")
	clock.Advance(quietPeriod)

	assert.Equal(t, map[string]int{"actor-1": 1, "actor-2": 1}, fired)
}

func TestCoalescer_RemoveSupersedesPending(t *testing.T) {
	clock := newFakeClock()
	var fires int

	c := services.NewCoalescer(quietPeriod, clock, func(string) { fires++ })

	c.Schedule("actor-1")
	assert.True(t, c.Remove("actor-1"))
	assert.False(t, c.Remove("actor-1"))

	clock.Advance(time.Second)
	assert.Zero(t, fires)
}

func TestCoalescer_CancelAllStopsEverything(t *testing.T) {
	clock := newFakeClock()
	var fires int

	c := services.NewCoalescer(quietPeriod, clock, func(string) { fires++ })

	c.Schedule("actor-1")
	c.Schedule("actor-2")
	c.Schedule("actor-3")
	assert.Equal(t, 3, c.PendingCount())

	c.CancelAll()
	assert.Equal(t, 0, c.PendingCount())

	clock.Advance(time.Second)
	assert.Zero(t, fires)
}
