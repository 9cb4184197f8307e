package contestservice

import "time"

// Clock abstracts wall time so the countdown can be driven synthetically in
// tests.
type Clock interface {
	Now() time.Time
}

// RealClock is the production Clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
