package service

import "time"

// Clock fixes "now" and the calendar zone used for day boundaries.
type Clock struct {
	Now func() time.Time
	Loc *time.Location
}

func (c Clock) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func (c Clock) location() *time.Location {
	if c.Loc == nil {
		return time.UTC
	}
	return c.Loc
}

// StartOfToday is local midnight of the current calendar day.
func (c Clock) StartOfToday() time.Time {
	return midnight(c.now().In(c.location()))
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
