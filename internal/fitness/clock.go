package fitness

import (
	"fmt"
	"time"
)

// ParseError signals that a stored value could not be interpreted
// as a time of day. Callers should degrade gracefully (e.g. show
// "duration unavailable") instead of failing the whole operation.
type ParseError struct {
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as time of day", e.Value)
}

// Clock is a wall-clock time of day, with no date attached.
type Clock struct {
	Hour   int
	Minute int
	Second int
}

const (
	clockLayout      = "15:04:05"
	clockLayoutShort = "15:04"
)

// ParseClock parses "HH:MM:SS" (or "HH:MM") into a Clock.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		t, err = time.Parse(clockLayoutShort, s)
	}
	if err != nil {
		return Clock{}, &ParseError{Value: s}
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
}

// ClockOf extracts the time of day from t.
func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// at combines the clock with the given reference date.
func (c Clock) at(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), c.Hour, c.Minute, c.Second, 0, time.UTC)
}

// ElapsedMinutes returns the whole minutes elapsed between two times of day.
// When end is earlier than start the session is assumed to have crossed
// midnight and a day is added to the end. Sessions longer than 24h cannot
// be represented.
func ElapsedMinutes(start, end Clock) int {
	ref := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	startAt := start.at(ref)
	endAt := end.at(ref)
	if endAt.Before(startAt) {
		endAt = endAt.Add(24 * time.Hour)
	}
	return int(endAt.Sub(startAt).Seconds()) / 60
}
