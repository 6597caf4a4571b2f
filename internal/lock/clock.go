package lock

import "time"

// Clock supplies the current time. Injected so lock decisions are
// testable against fixed instants.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock {
	return realClock{}
}
