package ports

import "time"

// Scheduler runs callbacks after a delay on the UI thread.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a pending scheduled callback. Stop reports whether the call
// prevented the callback from running.
type Timer interface {
	Stop() bool
}
