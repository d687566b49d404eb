package workouts

import (
	"context"
	"fmt"
	"time"

	"github.com/zydazln93/gymbros-discord/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddCardio(ctx context.Context, cardio CardioLog) (_ *CardioLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addCardio")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO cardio_log
				(session_id, owner_id, log_date, machine, duration_minutes, distance_km, calories, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id;`,
		cardio.SessionID, cardio.OwnerID, cardio.Date, cardio.Machine,
		cardio.DurationMinutes, cardio.DistanceKm, cardio.Calories, cardio.Notes,
	).Scan(&cardio.ID)
	if err != nil {
		return nil, fmt.Errorf("insert cardio log: %w", err)
	}

	span.SetAttributes(attribute.Int("cardio.id", cardio.ID))

	return &cardio, nil
}

func (r *Repo) AddLift(ctx context.Context, lift LiftLog) (_ *LiftLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addLift")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO lift_log
				(session_id, owner_id, log_date, exercise, muscle_group, sets, reps, kilos, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id;`,
		lift.SessionID, lift.OwnerID, lift.Date, lift.Exercise,
		lift.MuscleGroup, lift.Sets, lift.Reps, lift.Kilos, lift.Notes,
	).Scan(&lift.ID)
	if err != nil {
		return nil, fmt.Errorf("insert lift log: %w", err)
	}

	span.SetAttributes(attribute.Int("lift.id", lift.ID))

	return &lift, nil
}

func (r *Repo) ListCardioBySession(ctx context.Context, sessionID int) (_ []CardioLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listCardioBySession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, session_id, owner_id, log_date, machine, duration_minutes, distance_km, calories, notes
			FROM cardio_log
			WHERE session_id = $1
			ORDER BY id;`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return r.rows2cardioLogs(rows)
}

func (r *Repo) ListLiftsBySession(ctx context.Context, sessionID int) (_ []LiftLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listLiftsBySession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, session_id, owner_id, log_date, exercise, muscle_group, sets, reps, kilos, notes
			FROM lift_log
			WHERE session_id = $1
			ORDER BY id;`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return r.rows2liftLogs(rows)
}

// ListLiftsByOwner returns all of the owner's lift logs, oldest first.
func (r *Repo) ListLiftsByOwner(ctx context.Context, ownerID int64) (_ []LiftLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listLiftsByOwner")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("owner.id", ownerID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, session_id, owner_id, log_date, exercise, muscle_group, sets, reps, kilos, notes
			FROM lift_log
			WHERE owner_id = $1
			ORDER BY log_date, id;`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return r.rows2liftLogs(rows)
}

// ListLiftsByExercise returns the owner's lift logs for one exercise,
// newest first, for progress views.
func (r *Repo) ListLiftsByExercise(ctx context.Context, ownerID int64, exercise string) (_ []LiftLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listLiftsByExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("owner.id", ownerID))
	span.SetAttributes(attribute.String("exercise", exercise))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, session_id, owner_id, log_date, exercise, muscle_group, sets, reps, kilos, notes
			FROM lift_log
			WHERE owner_id = $1 AND exercise = $2
			ORDER BY log_date DESC, id DESC;`,
		ownerID, exercise,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return r.rows2liftLogs(rows)
}

func (r *Repo) rows2cardioLogs(rows pgx.Rows) ([]CardioLog, error) {
	var logs []CardioLog
	for rows.Next() {
		var cardio CardioLog
		var date time.Time
		if err := rows.Scan(
			&cardio.ID, &cardio.SessionID, &cardio.OwnerID, &date, &cardio.Machine,
			&cardio.DurationMinutes, &cardio.DistanceKm, &cardio.Calories, &cardio.Notes,
		); err != nil {
			return nil, err
		}
		cardio.Date = date
		logs = append(logs, cardio)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if logs == nil {
		logs = make([]CardioLog, 0)
	}

	return logs, nil
}

func (r *Repo) rows2liftLogs(rows pgx.Rows) ([]LiftLog, error) {
	var logs []LiftLog
	for rows.Next() {
		var lift LiftLog
		var date time.Time
		if err := rows.Scan(
			&lift.ID, &lift.SessionID, &lift.OwnerID, &date, &lift.Exercise,
			&lift.MuscleGroup, &lift.Sets, &lift.Reps, &lift.Kilos, &lift.Notes,
		); err != nil {
			return nil, err
		}
		lift.Date = date
		logs = append(logs, lift)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if logs == nil {
		logs = make([]LiftLog, 0)
	}

	return logs, nil
}
