package page

import "time"

// Timer is a stoppable one-shot timer handle.
type Timer interface {
	Stop() bool
}

// Clock schedules one-shot timers. The orchestrators take it as a dependency
// so tests can drive the login-modal timer deterministically.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// SystemClock is the wall-clock implementation used outside of tests.
var SystemClock Clock = systemClock{}
