package calendar

import "time"

//go:generate mockgen -destination=mock/mock_clock.go -package=mockcalendar -source=clock.go

// Clock provides the current date. Creatures validate birth dates and compute
// ages against it.
type Clock interface {
	Today() Date
}

var referenceDate = MustDate(2025, 9, 22)

// ReferenceDate is the fixed "today" used when no other clock is configured.
func ReferenceDate() Date {
	return referenceDate
}

type fixedClock struct {
	today Date
}

// FixedClock returns a clock that always reports the given date.
func FixedClock(today Date) Clock {
	return &fixedClock{today: today}
}

// DefaultClock returns a fixed clock at ReferenceDate.
func DefaultClock() Clock {
	return FixedClock(referenceDate)
}

func (c *fixedClock) Today() Date {
	return c.today
}

type systemClock struct {
	now func() time.Time
}

// SystemClock reads the local wall-clock date.
func SystemClock() Clock {
	return &systemClock{now: time.Now}
}

func (c *systemClock) Today() Date {
	return FromTime(c.now())
}
