package utils

import "time"

// TimeProvider is a helper interface to make mocking time.Now() and timers easier
type TimeProvider interface {
	Now() time.Time
	// AfterFunc waits for the duration to elapse and then calls f in its own goroutine.
	// The returned Timer can be used to cancel the call.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a cancellable pending call created by TimeProvider.AfterFunc
type Timer interface {
	// Stop prevents the Timer from firing.
	// Returns false if the timer has already fired or been stopped.
	Stop() bool
}

func NewTimeProvider() TimeProvider {
	return &timeProvider{}
}

type timeProvider struct{}

func (*timeProvider) Now() time.Time {
	return time.Now()
}

func (*timeProvider) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
