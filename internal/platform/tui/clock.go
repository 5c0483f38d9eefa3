// Package tui owns the terminal: the tcell session, the fixed-tick main loop
// that drives a game through it, and the session history browser.
package tui

import "time"

// Clock supplies time to the main loop.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the wall clock with monotonic readings.
type SystemClock struct{}

// NewSystemClock creates the real-time clock used outside tests.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks for d. Non-positive durations return immediately.
func (SystemClock) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	time.Sleep(d)
}
