package bodyweight

import (
	"context"
	"fmt"
	"time"

	"github.com/zydazln93/gymbros-discord/internal/telemetry/tracing"

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

func (r *Repo) Add(ctx context.Context, entry Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodyweight.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO weight_entry (owner_id, entry_date, kilos)
				VALUES ($1, $2, $3)
			RETURNING id;`,
		entry.OwnerID, entry.Date, entry.Kilos,
	).Scan(&entry.ID)
	if err != nil {
		return nil, fmt.Errorf("insert weight entry: %w", err)
	}

	span.SetAttributes(attribute.Int("entry.id", entry.ID))

	return &entry, nil
}

// History returns the owner's most recent weight entries, newest first.
func (r *Repo) History(ctx context.Context, ownerID int64, limit int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodyweight.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("owner.id", ownerID))
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, owner_id, entry_date, kilos
			FROM weight_entry
			WHERE owner_id = $1
			ORDER BY entry_date DESC, id DESC
			LIMIT $2;`,
		ownerID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var date time.Time
		if err := rows.Scan(&entry.ID, &entry.OwnerID, &date, &entry.Kilos); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		entry.Date = date
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	if entries == nil {
		entries = make([]Entry, 0)
	}

	return entries, nil
}
