package services

import "time"

// Timer is a cancelable pending callback.
type Timer interface {
	// Stop cancels the timer. It reports whether the callback was still
	// pending, mirroring time.Timer.Stop.
	Stop() bool
}

// Clock schedules deferred callbacks. The real implementation delegates to
// the runtime timers; tests substitute a hand-driven fake so debounce
// behavior can be asserted without wall-clock waits.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// NewRealClock returns a Clock backed by time.AfterFunc.
func NewRealClock() Clock {
	return realClock{}
}
