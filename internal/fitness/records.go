package fitness

import (
	"sort"
	"time"
)

// LiftEntry is the slice of a lift log the record aggregation cares about.
type LiftEntry struct {
	Exercise string
	Kilos    int
	Date     time.Time
}

// PersonalRecord is the heaviest weight ever logged for an exercise,
// together with the date it was achieved.
type PersonalRecord struct {
	Exercise string    `json:"exercise"`
	Kilos    int       `json:"kilos"`
	Date     time.Time `json:"date"`
}

// PersonalRecords groups the given lift entries by exact exercise name and
// returns the max weight per exercise. When several entries share the max
// weight, the most recent date among them wins. Results are ordered by
// descending weight, ties broken by exercise name, so the output is
// deterministic. An empty input yields an empty slice.
func PersonalRecords(entries []LiftEntry) []PersonalRecord {
	byExercise := make(map[string]PersonalRecord)
	for _, e := range entries {
		rec, ok := byExercise[e.Exercise]
		if !ok || e.Kilos > rec.Kilos {
			byExercise[e.Exercise] = PersonalRecord{
				Exercise: e.Exercise,
				Kilos:    e.Kilos,
				Date:     e.Date,
			}
			continue
		}
		if e.Kilos == rec.Kilos && e.Date.After(rec.Date) {
			rec.Date = e.Date
			byExercise[e.Exercise] = rec
		}
	}

	records := make([]PersonalRecord, 0, len(byExercise))
	for _, rec := range byExercise {
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Kilos != records[j].Kilos {
			return records[i].Kilos > records[j].Kilos
		}
		return records[i].Exercise < records[j].Exercise
	})

	return records
}
