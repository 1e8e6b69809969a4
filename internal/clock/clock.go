package clock

import "time"

// Clock supplies the current time. Expiry checks and timestamps go through
// this interface so settlement can be tested without real time passing.
type Clock interface {
	Now() time.Time
}

// Real reads the system clock in UTC.
type Real struct{}

func (Real) Now() time.Time {
	return time.Now().UTC()
}
