package workouts

import (
	"time"
)

// CardioLog is one cardio machine entry, optionally tied to the gym
// session it was done in.
type CardioLog struct {
	ID              int       `json:"id"`
	SessionID       *int      `json:"sessionId,omitempty"`
	OwnerID         int64     `json:"ownerId"`
	Date            time.Time `json:"date"`
	Machine         string    `json:"machine"`
	DurationMinutes int       `json:"durationMinutes"`
	DistanceKm      *float64  `json:"distanceKm,omitempty"`
	Calories        *int      `json:"calories,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
}

// LiftLog is one weightlifting entry: an exercise done for a number of
// sets and reps at a given weight.
type LiftLog struct {
	ID          int       `json:"id"`
	SessionID   *int      `json:"sessionId,omitempty"`
	OwnerID     int64     `json:"ownerId"`
	Date        time.Time `json:"date"`
	Exercise    string    `json:"exercise"`
	MuscleGroup string    `json:"muscleGroup"`
	Sets        int       `json:"sets"`
	Reps        int       `json:"reps"`
	Kilos       int       `json:"kilos"`
	Notes       *string   `json:"notes,omitempty"`
}
