package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zydazln93/gymbros-discord/internal/fitness"
	"github.com/zydazln93/gymbros-discord/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

var (
	ErrActiveSessionExists = errors.New("active session already exists")
	ErrNoActiveSession     = errors.New("no active session")
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=sessions_test

type sessionsRepo interface {
	Add(ctx context.Context, session Session) (*Session, error)
	Active(ctx context.Context, ownerID int64) (*Session, error)
	Get(ctx context.Context, id int) (*Session, error)
	Finish(ctx context.Context, id int, endTime string, calories int) error
	History(ctx context.Context, ownerID int64, limit int) ([]Session, error)
	HistoryPage(ctx context.Context, ownerID int64, page, size int) ([]Session, int, error)
}

type Service struct {
	repo sessionsRepo
}

func NewService(repo sessionsRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// Start opens a new session for the owner at the given moment, unless
// one is already running.
func (s *Service) Start(ctx context.Context, ownerID int64, ownerName string, now time.Time, notes *string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sessions.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	active, err := s.repo.Active(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("check active session: %w", err)
	}
	if active != nil {
		return nil, ErrActiveSessionExists
	}

	return s.repo.Add(ctx, Session{
		OwnerID:   ownerID,
		OwnerName: ownerName,
		Date:      now.Truncate(24 * time.Hour),
		StartTime: fitness.ClockOf(now).String(),
		Notes:     notes,
	})
}

// Finish closes the owner's active session at the given moment and
// reports the elapsed duration in minutes.
func (s *Service) Finish(ctx context.Context, ownerID int64, now time.Time, calories int) (_ *FinishedSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sessions.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	active, err := s.repo.Active(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("check active session: %w", err)
	}
	if active == nil {
		return nil, ErrNoActiveSession
	}

	startClock, err := fitness.ParseClock(active.StartTime)
	if err != nil {
		return nil, fmt.Errorf("parse start time: %w", err)
	}

	endClock := fitness.ClockOf(now)
	duration := fitness.ElapsedMinutes(startClock, endClock)

	endTime := endClock.String()
	if err := s.repo.Finish(ctx, active.ID, endTime, calories); err != nil {
		return nil, fmt.Errorf("finish session: %w", err)
	}

	active.EndTime = &endTime
	active.Calories = &calories

	return &FinishedSession{
		Session:         *active,
		DurationMinutes: duration,
	}, nil
}

// Active returns the owner's running session, or nil when there is none.
func (s *Service) Active(ctx context.Context, ownerID int64) (*Session, error) {
	return s.repo.Active(ctx, ownerID)
}

func (s *Service) Get(ctx context.Context, id int) (*Session, error) {
	return s.repo.Get(ctx, id)
}

// History returns the owner's completed sessions, newest first, with
// the duration worked out from the stored clock strings. A session
// whose stored times cannot be parsed is kept, with a nil duration.
func (s *Service) History(ctx context.Context, ownerID int64, limit int) (_ []HistoryEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sessions.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sessions, err := s.repo.History(ctx, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}

	return s.toHistoryEntries(sessions), nil
}

// HistoryPage is the paged variant of History, for the web dashboard.
func (s *Service) HistoryPage(ctx context.Context, ownerID int64, page, size int) (_ []HistoryEntry, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sessions.historyPage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sessions, total, err := s.repo.HistoryPage(ctx, ownerID, page, size)
	if err != nil {
		return nil, 0, fmt.Errorf("get history page: %w", err)
	}

	return s.toHistoryEntries(sessions), total, nil
}

func (s *Service) toHistoryEntries(sessions []Session) []HistoryEntry {
	entries := make([]HistoryEntry, 0, len(sessions))
	for _, session := range sessions {
		entries = append(entries, HistoryEntry{
			Session:         session,
			DurationMinutes: durationOf(session),
		})
	}
	return entries
}

func durationOf(session Session) *int {
	if session.EndTime == nil {
		return nil
	}

	startClock, err := fitness.ParseClock(session.StartTime)
	if err != nil {
		log.Warnf("session %d: malformed start time %q", session.ID, session.StartTime)
		return nil
	}
	endClock, err := fitness.ParseClock(*session.EndTime)
	if err != nil {
		log.Warnf("session %d: malformed end time %q", session.ID, *session.EndTime)
		return nil
	}

	duration := fitness.ElapsedMinutes(startClock, endClock)
	return &duration
}
