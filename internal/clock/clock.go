package clock

import "time"

// Clock abstracts wall time so time-dependent state machines stay
// testable without sleeping.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
