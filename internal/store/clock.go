package store

import "time"

// Clock supplies the current instant. Scheduling and streak logic takes
// all time from here so tests can pin it.
type Clock interface {
	Now() time.Time
}

// SystemClock is a Clock backed by the wall clock.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
