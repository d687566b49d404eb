package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zydazln93/gymbros-discord/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrSessionNotFound = errors.New("session not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, session Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO gym_session
				(owner_id, owner_name, session_date, start_time, notes)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		session.OwnerID, session.OwnerName, session.Date, session.StartTime, session.Notes,
	).Scan(&session.ID)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	span.SetAttributes(attribute.Int("session.id", session.ID))

	return &session, nil
}

// Active returns the owner's session with no end time yet, or nil when
// there is none. Not having an active session is not an error.
func (r *Repo) Active(ctx context.Context, ownerID int64) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.active")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("owner.id", ownerID))

	var session Session
	err = r.db.QueryRow(
		ctx,
		`SELECT id, owner_id, owner_name, session_date, start_time, end_time, total_calories, notes
			FROM gym_session
			WHERE owner_id = $1 AND end_time IS NULL
			ORDER BY id DESC
			LIMIT 1;`,
		ownerID,
	).Scan(
		&session.ID, &session.OwnerID, &session.OwnerName, &session.Date,
		&session.StartTime, &session.EndTime, &session.Calories, &session.Notes,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select active session: %w", err)
	}

	return &session, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var session Session
	err = r.db.QueryRow(
		ctx,
		`SELECT id, owner_id, owner_name, session_date, start_time, end_time, total_calories, notes
			FROM gym_session
			WHERE id = $1;`,
		id,
	).Scan(
		&session.ID, &session.OwnerID, &session.OwnerName, &session.Date,
		&session.StartTime, &session.EndTime, &session.Calories, &session.Notes,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select session: %w", err)
	}

	return &session, nil
}

// Finish sets the end time and total calories on a session.
func (r *Repo) Finish(ctx context.Context, id int, endTime string, calories int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE gym_session
			SET end_time = $1, total_calories = $2
			WHERE id = $3;`,
		endTime, calories, id,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// History returns the owner's completed sessions, newest first.
func (r *Repo) History(ctx context.Context, ownerID int64, limit int) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("owner.id", ownerID))
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, owner_id, owner_name, session_date, start_time, end_time, total_calories, notes
			FROM gym_session
			WHERE owner_id = $1 AND end_time IS NOT NULL
			ORDER BY id DESC
			LIMIT $2;`,
		ownerID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	sessions, err := r.rows2sessions(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2sessions: %w", err)
	}
	return sessions, nil
}

// HistoryPage returns one page of the owner's completed sessions,
// newest first, together with the total count of completed sessions.
func (r *Repo) HistoryPage(ctx context.Context, ownerID int64, page, size int) (_ []Session, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.historyPage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("owner.id", ownerID))
	span.SetAttributes(attribute.Int("page", page))
	span.SetAttributes(attribute.Int("size", size))

	err = r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM gym_session WHERE owner_id = $1 AND end_time IS NOT NULL;`,
		ownerID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count sessions: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, owner_id, owner_name, session_date, start_time, end_time, total_calories, notes
			FROM gym_session
			WHERE owner_id = $1 AND end_time IS NOT NULL
			ORDER BY id DESC
			LIMIT $2 OFFSET $3;`,
		ownerID, size, (page-1)*size,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	sessions, err := r.rows2sessions(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("rows2sessions: %w", err)
	}
	return sessions, total, nil
}

func (r *Repo) rows2sessions(rows pgx.Rows) ([]Session, error) {
	var sessions []Session
	for rows.Next() {
		var session Session
		var date time.Time
		if err := rows.Scan(
			&session.ID, &session.OwnerID, &session.OwnerName, &date,
			&session.StartTime, &session.EndTime, &session.Calories, &session.Notes,
		); err != nil {
			return nil, err
		}
		session.Date = date
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if sessions == nil {
		sessions = make([]Session, 0)
	}

	return sessions, nil
}
