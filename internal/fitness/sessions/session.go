package sessions

import "time"

// Session is one gym visit: started with a date and a start time of day,
// finished (eventually) with an end time of day and total calories.
// A session with no end time is the owner's active session; an owner
// has at most one of those at any moment.
type Session struct {
	ID        int       `json:"id"`
	OwnerID   int64     `json:"ownerId"`
	OwnerName string    `json:"ownerName"`
	Date      time.Time `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   *string   `json:"endTime,omitempty"`
	Calories  *int      `json:"calories,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
}

// IsActive reports whether the session has not been finished yet.
func (s *Session) IsActive() bool {
	return s.EndTime == nil
}

// HistoryEntry is a completed session together with its computed duration.
// DurationMinutes is nil when a stored time could not be parsed back,
// so callers can show "duration unavailable" instead of failing.
type HistoryEntry struct {
	Session         `json:"session"`
	DurationMinutes *int `json:"durationMinutes,omitempty"`
}

// FinishedSession is the result of finishing an active session.
type FinishedSession struct {
	Session         `json:"session"`
	DurationMinutes int `json:"durationMinutes"`
}
