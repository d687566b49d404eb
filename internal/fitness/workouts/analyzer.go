package workouts

import (
	"context"
	"fmt"

	"github.com/zydazln93/gymbros-discord/internal/fitness"
	"github.com/zydazln93/gymbros-discord/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=workouts_test

type liftsRepo interface {
	ListLiftsByOwner(ctx context.Context, ownerID int64) ([]LiftLog, error)
	ListLiftsByExercise(ctx context.Context, ownerID int64, exercise string) ([]LiftLog, error)
}

// Analyzer derives stats from the raw lift logs.
type Analyzer struct {
	repo liftsRepo
}

func NewAnalyzer(repo liftsRepo) *Analyzer {
	return &Analyzer{
		repo: repo,
	}
}

// PersonalRecords returns the heaviest logged weight per exercise,
// heaviest exercise first.
func (a *Analyzer) PersonalRecords(ctx context.Context, ownerID int64) (_ []fitness.PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.analyzer.personalRecords")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	lifts, err := a.repo.ListLiftsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list lifts: %w", err)
	}

	entries := make([]fitness.LiftEntry, 0, len(lifts))
	for _, lift := range lifts {
		entries = append(entries, fitness.LiftEntry{
			Exercise: lift.Exercise,
			Kilos:    lift.Kilos,
			Date:     lift.Date,
		})
	}

	return fitness.PersonalRecords(entries), nil
}

// ExerciseProgress returns the owner's history for one exercise,
// newest first.
func (a *Analyzer) ExerciseProgress(ctx context.Context, ownerID int64, exercise string) (_ []LiftLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.analyzer.exerciseProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	lifts, err := a.repo.ListLiftsByExercise(ctx, ownerID, exercise)
	if err != nil {
		return nil, fmt.Errorf("list lifts for %s: %w", exercise, err)
	}

	return lifts, nil
}
