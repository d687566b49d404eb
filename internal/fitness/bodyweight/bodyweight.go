package bodyweight

import (
	"time"
)

// Entry is one body weight measurement.
type Entry struct {
	ID      int       `json:"id"`
	OwnerID int64     `json:"ownerId"`
	Date    time.Time `json:"date"`
	Kilos   float64   `json:"kilos"`
}
