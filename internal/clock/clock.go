package clock

import "time"

// Clock abstracts time so session accounting stays deterministic in tests.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Func adapts a plain function to Clock
type Func func() time.Time

func (f Func) Now() time.Time {
	return f()
}
