package services

import (
	"time"

	"luxeledger/internal/models"
)

// Clock tells services what time it is and which calendar day that falls on.
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

// SystemClock reads the wall clock and resolves dates in loc.
func SystemClock(loc *time.Location) Clock {
	return Clock{Now: time.Now, Location: loc}
}

// Today is the current calendar date in the clock's location.
func (c Clock) Today() models.Date {
	now := c.Now()
	if c.Location != nil {
		now = now.In(c.Location)
	}
	return models.DateOf(now)
}

// NowMillis is the current instant in epoch milliseconds.
func (c Clock) NowMillis() int64 {
	return c.Now().UnixMilli()
}
