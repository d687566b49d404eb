package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/zydazln93/gymbros-discord/internal/fitness"
	"github.com/zydazln93/gymbros-discord/internal/fitness/bodyweight"
	"github.com/zydazln93/gymbros-discord/internal/fitness/sessions"
	"github.com/zydazln93/gymbros-discord/internal/fitness/texttable"
	"github.com/zydazln93/gymbros-discord/internal/fitness/workouts"
	"github.com/zydazln93/gymbros-discord/internal/telemetry/metrics"
	"github.com/zydazln93/gymbros-discord/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

const historyLimit = 10

//go:generate mockgen -source=$GOFILE -destination=processor_mocks_test.go -package=bot_test

type sessionsService interface {
	Start(ctx context.Context, ownerID int64, ownerName string, now time.Time, notes *string) (*sessions.Session, error)
	Finish(ctx context.Context, ownerID int64, now time.Time, calories int) (*sessions.FinishedSession, error)
	Active(ctx context.Context, ownerID int64) (*sessions.Session, error)
	Get(ctx context.Context, id int) (*sessions.Session, error)
	History(ctx context.Context, ownerID int64, limit int) ([]sessions.HistoryEntry, error)
}

type workoutsRepo interface {
	AddCardio(ctx context.Context, cardio workouts.CardioLog) (*workouts.CardioLog, error)
	AddLift(ctx context.Context, lift workouts.LiftLog) (*workouts.LiftLog, error)
	ListCardioBySession(ctx context.Context, sessionID int) ([]workouts.CardioLog, error)
	ListLiftsBySession(ctx context.Context, sessionID int) ([]workouts.LiftLog, error)
}

type workoutsAnalyzer interface {
	PersonalRecords(ctx context.Context, ownerID int64) ([]fitness.PersonalRecord, error)
	ExerciseProgress(ctx context.Context, ownerID int64, exercise string) ([]workouts.LiftLog, error)
}

type bodyweightRepo interface {
	Add(ctx context.Context, entry bodyweight.Entry) (*bodyweight.Entry, error)
	History(ctx context.Context, ownerID int64, limit int) ([]bodyweight.Entry, error)
}

// Processor turns chat messages into fitness tracking actions. It is
// transport agnostic, the discord adapter just feeds messages in.
type Processor struct {
	prefix     string
	sessions   sessionsService
	workouts   workoutsRepo
	analyzer   workoutsAnalyzer
	bodyweight bodyweightRepo
	metrics    *metrics.Manager

	now func() time.Time
}

type NewProcessorParams struct {
	CommandPrefix  string
	Sessions       sessionsService
	Workouts       workoutsRepo
	Analyzer       workoutsAnalyzer
	Bodyweight     bodyweightRepo
	MetricsManager *metrics.Manager
}

func NewProcessor(params NewProcessorParams) *Processor {
	return &Processor{
		prefix:     params.CommandPrefix,
		sessions:   params.Sessions,
		workouts:   params.Workouts,
		analyzer:   params.Analyzer,
		bodyweight: params.Bodyweight,
		metrics:    params.MetricsManager,
		now:        time.Now,
	}
}

// Process handles one chat message. The returned bool tells whether the
// message was a recognized command at all.
func (p *Processor) Process(ctx context.Context, ownerID int64, ownerName, message string) (string, bool) {
	if !strings.HasPrefix(message, p.prefix) {
		return "", false
	}

	ctx, span := tracing.GlobalTracer.Start(ctx, "bot.process")
	defer span.End()

	fields := strings.Fields(strings.TrimPrefix(message, p.prefix))
	if len(fields) == 0 {
		return "", false
	}

	command, args := strings.ToLower(fields[0]), fields[1:]

	var reply string
	var err error
	switch command {
	case "help", "commands":
		reply = p.helpReply()
	case "session_start":
		reply, err = p.sessionStart(ctx, ownerID, ownerName, args)
	case "session_end":
		reply, err = p.sessionEnd(ctx, ownerID, args)
	case "current":
		reply, err = p.currentSession(ctx, ownerID)
	case "session":
		reply, err = p.sessionDetails(ctx, args)
	case "history":
		reply, err = p.sessionHistory(ctx, ownerID)
	case "add_cardio":
		reply, err = p.addCardio(ctx, ownerID, args)
	case "add_lift":
		reply, err = p.addLift(ctx, ownerID, args)
	case "pr":
		reply, err = p.personalRecords(ctx, ownerID)
	case "view_progress":
		reply, err = p.viewProgress(ctx, ownerID, args)
	case "log_weight":
		reply, err = p.logWeight(ctx, ownerID, args)
	case "weight_history":
		reply, err = p.weightHistory(ctx, ownerID)
	default:
		return "", false
	}

	if err != nil {
		log.Errorf("bot: command %s failed: %s", command, err)
		p.metrics.CounterBotCommands.WithLabelValues(command, "error").Inc()
		return "Something went wrong, try again later.", true
	}

	p.metrics.CounterBotCommands.WithLabelValues(command, "ok").Inc()
	return reply, true
}

func (p *Processor) helpReply() string {
	return strings.Join([]string{
		"Available commands:",
		p.prefix + "session_start [notes] - start a gym session",
		p.prefix + "session_end <calories> - finish the running session",
		p.prefix + "current - show the running session",
		p.prefix + "session <id> - show one session with its workouts",
		p.prefix + "history - last sessions",
		p.prefix + "add_cardio <machine> <minutes> [distanceKm] [calories] - log cardio",
		p.prefix + "add_lift <exercise> <muscleGroup> <sets> <reps> <kilos> - log a lift",
		p.prefix + "pr - personal records",
		p.prefix + "view_progress <exercise> - history for one exercise",
		p.prefix + "log_weight <kilos> - log body weight",
		p.prefix + "weight_history - last body weight entries",
	}, "\n")
}

func (p *Processor) sessionStart(ctx context.Context, ownerID int64, ownerName string, args []string) (string, error) {
	var notes *string
	if len(args) > 0 {
		joined := strings.Join(args, " ")
		notes = &joined
	}

	session, err := p.sessions.Start(ctx, ownerID, ownerName, p.now(), notes)
	if errors.Is(err, sessions.ErrActiveSessionExists) {
		return "You already have a session running. Finish it with " + p.prefix + "session_end first.", nil
	}
	if err != nil {
		return "", fmt.Errorf("start session: %w", err)
	}

	return fmt.Sprintf("Session %d started at %s. Get after it!", session.ID, session.StartTime), nil
}

func (p *Processor) sessionEnd(ctx context.Context, ownerID int64, args []string) (string, error) {
	if len(args) < 1 {
		return "Usage: " + p.prefix + "session_end <calories>", nil
	}
	calories, err := strconv.Atoi(args[0])
	if err != nil || calories < 0 {
		return "Calories must be a non-negative number.", nil
	}

	finished, err := p.sessions.Finish(ctx, ownerID, p.now(), calories)
	if errors.Is(err, sessions.ErrNoActiveSession) {
		return "No session running. Start one with " + p.prefix + "session_start.", nil
	}
	if err != nil {
		return "", fmt.Errorf("finish session: %w", err)
	}

	return fmt.Sprintf(
		"Session %d finished: %d min, %d kcal burned. Well done!",
		finished.ID, finished.DurationMinutes, calories,
	), nil
}

func (p *Processor) currentSession(ctx context.Context, ownerID int64) (string, error) {
	session, err := p.sessions.Active(ctx, ownerID)
	if err != nil {
		return "", fmt.Errorf("get active session: %w", err)
	}
	if session == nil {
		return "No session running.", nil
	}

	reply := fmt.Sprintf("Session %d running since %s", session.ID, session.StartTime)
	if start, err := fitness.ParseClock(session.StartTime); err != nil {
		reply += " (duration unavailable)."
	} else {
		reply += fmt.Sprintf(" (%d min so far).", fitness.ElapsedMinutes(start, fitness.ClockOf(p.now())))
	}
	if session.Notes != nil {
		reply += " Notes: " + *session.Notes
	}
	return reply, nil
}

func (p *Processor) sessionDetails(ctx context.Context, args []string) (string, error) {
	if len(args) < 1 {
		return "Usage: " + p.prefix + "session <id>", nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return "Session id must be a number.", nil
	}

	session, err := p.sessions.Get(ctx, id)
	if errors.Is(err, sessions.ErrSessionNotFound) {
		return fmt.Sprintf("Session %d not found.", id), nil
	}
	if err != nil {
		return "", fmt.Errorf("get session: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Session %d on %s, started at %s",
		session.ID, session.Date.Format("2006-01-02"), session.StartTime))
	if session.EndTime != nil {
		sb.WriteString(", finished at " + *session.EndTime)
	}
	sb.WriteString("\n")

	lifts, err := p.workouts.ListLiftsBySession(ctx, id)
	if err != nil {
		return "", fmt.Errorf("list session lifts: %w", err)
	}
	if len(lifts) > 0 {
		rows := make([][]any, 0, len(lifts))
		for _, lift := range lifts {
			rows = append(rows, []any{lift.Exercise, lift.Sets, lift.Reps, lift.Kilos})
		}
		table, err := texttable.Render([]string{"Exercise", "Sets", "Reps", "Kilos"}, rows)
		if err != nil {
			return "", fmt.Errorf("render lifts table: %w", err)
		}
		sb.WriteString("Lifts:\n```\n" + table + "\n```\n")
	}

	cardio, err := p.workouts.ListCardioBySession(ctx, id)
	if err != nil {
		return "", fmt.Errorf("list session cardio: %w", err)
	}
	if len(cardio) > 0 {
		rows := make([][]any, 0, len(cardio))
		for _, c := range cardio {
			var distance, calories any
			if c.DistanceKm != nil {
				distance = *c.DistanceKm
			}
			if c.Calories != nil {
				calories = *c.Calories
			}
			rows = append(rows, []any{c.Machine, c.DurationMinutes, distance, calories})
		}
		table, err := texttable.Render([]string{"Machine", "Minutes", "Km", "Kcal"}, rows)
		if err != nil {
			return "", fmt.Errorf("render cardio table: %w", err)
		}
		sb.WriteString("Cardio:\n```\n" + table + "\n```")
	}

	if len(lifts) == 0 && len(cardio) == 0 {
		sb.WriteString("Nothing logged in this session.")
	}

	return strings.TrimRight(sb.String(), "\n"), nil
}

func (p *Processor) sessionHistory(ctx context.Context, ownerID int64) (string, error) {
	entries, err := p.sessions.History(ctx, ownerID, historyLimit)
	if err != nil {
		return "", fmt.Errorf("get history: %w", err)
	}
	if len(entries) == 0 {
		return "No finished sessions yet.", nil
	}

	rows := make([][]any, 0, len(entries))
	for _, entry := range entries {
		var end, minutes, calories any
		if entry.EndTime != nil {
			end = *entry.EndTime
		}
		// a nil duration means the stored times could not be parsed
		if entry.DurationMinutes != nil {
			minutes = *entry.DurationMinutes
		}
		if entry.Calories != nil {
			calories = *entry.Calories
		}
		rows = append(rows, []any{
			entry.ID,
			entry.Date.Format("2006-01-02"),
			entry.StartTime,
			end,
			minutes,
			calories,
		})
	}

	table, err := texttable.Render(
		[]string{"ID", "Date", "Start", "End", "Minutes", "Kcal"},
		rows,
	)
	if err != nil {
		return "", fmt.Errorf("render history table: %w", err)
	}

	return "```\n" + table + "\n```", nil
}

func (p *Processor) addCardio(ctx context.Context, ownerID int64, args []string) (string, error) {
	if len(args) < 2 {
		return "Usage: " + p.prefix + "add_cardio <machine> <minutes> [distanceKm] [calories]", nil
	}

	machine := args[0]
	minutes, err := strconv.Atoi(args[1])
	if err != nil || minutes <= 0 {
		return "Minutes must be a positive number.", nil
	}

	cardio := workouts.CardioLog{
		OwnerID:         ownerID,
		Date:            p.now().Truncate(24 * time.Hour),
		Machine:         machine,
		DurationMinutes: minutes,
	}

	if len(args) > 2 {
		distance, err := strconv.ParseFloat(args[2], 64)
		if err != nil || distance <= 0 {
			return "Distance must be a positive number.", nil
		}
		cardio.DistanceKm = &distance
	}
	if len(args) > 3 {
		calories, err := strconv.Atoi(args[3])
		if err != nil || calories <= 0 {
			return "Calories must be a positive number.", nil
		}
		cardio.Calories = &calories
	}

	// tie the log to the running session, if any
	if active, err := p.sessions.Active(ctx, ownerID); err != nil {
		return "", fmt.Errorf("get active session: %w", err)
	} else if active != nil {
		cardio.SessionID = &active.ID
	}

	added, err := p.workouts.AddCardio(ctx, cardio)
	if err != nil {
		return "", fmt.Errorf("add cardio: %w", err)
	}

	return fmt.Sprintf("Cardio logged: %s for %d min.", added.Machine, added.DurationMinutes), nil
}

func (p *Processor) addLift(ctx context.Context, ownerID int64, args []string) (string, error) {
	if len(args) < 5 {
		return "Usage: " + p.prefix + "add_lift <exercise> <muscleGroup> <sets> <reps> <kilos>", nil
	}

	exercise, muscleGroup := args[0], args[1]
	sets, err := strconv.Atoi(args[2])
	if err != nil || sets <= 0 {
		return "Sets must be a positive number.", nil
	}
	reps, err := strconv.Atoi(args[3])
	if err != nil || reps <= 0 {
		return "Reps must be a positive number.", nil
	}
	kilos, err := strconv.Atoi(args[4])
	if err != nil || kilos <= 0 {
		return "Kilos must be a positive number.", nil
	}

	lift := workouts.LiftLog{
		OwnerID:     ownerID,
		Date:        p.now().Truncate(24 * time.Hour),
		Exercise:    exercise,
		MuscleGroup: muscleGroup,
		Sets:        sets,
		Reps:        reps,
		Kilos:       kilos,
	}

	if active, err := p.sessions.Active(ctx, ownerID); err != nil {
		return "", fmt.Errorf("get active session: %w", err)
	} else if active != nil {
		lift.SessionID = &active.ID
	}

	added, err := p.workouts.AddLift(ctx, lift)
	if err != nil {
		return "", fmt.Errorf("add lift: %w", err)
	}

	return fmt.Sprintf(
		"Lift logged: %s %dx%d at %d kg.",
		added.Exercise, added.Sets, added.Reps, added.Kilos,
	), nil
}

func (p *Processor) personalRecords(ctx context.Context, ownerID int64) (string, error) {
	records, err := p.analyzer.PersonalRecords(ctx, ownerID)
	if err != nil {
		return "", fmt.Errorf("get personal records: %w", err)
	}
	if len(records) == 0 {
		return "No lifts logged yet, no records to show.", nil
	}

	rows := make([][]any, 0, len(records))
	for _, record := range records {
		rows = append(rows, []any{
			record.Exercise,
			record.Kilos,
			record.Date.Format("2006-01-02"),
		})
	}

	table, err := texttable.Render([]string{"Exercise", "Kilos", "Date"}, rows)
	if err != nil {
		return "", fmt.Errorf("render records table: %w", err)
	}

	return "Personal records:\n```\n" + table + "\n```", nil
}

func (p *Processor) viewProgress(ctx context.Context, ownerID int64, args []string) (string, error) {
	if len(args) < 1 {
		return "Usage: " + p.prefix + "view_progress <exercise>", nil
	}
	exercise := strings.Join(args, " ")

	lifts, err := p.analyzer.ExerciseProgress(ctx, ownerID, exercise)
	if err != nil {
		return "", fmt.Errorf("get exercise progress: %w", err)
	}
	if len(lifts) == 0 {
		return fmt.Sprintf("No lifts logged for %s yet.", exercise), nil
	}

	rows := make([][]any, 0, len(lifts))
	for _, lift := range lifts {
		rows = append(rows, []any{
			lift.Date.Format("2006-01-02"),
			lift.Sets,
			lift.Reps,
			lift.Kilos,
		})
	}

	table, err := texttable.Render([]string{"Date", "Sets", "Reps", "Kilos"}, rows)
	if err != nil {
		return "", fmt.Errorf("render progress table: %w", err)
	}

	return fmt.Sprintf("Progress for %s:\n```\n%s\n```", exercise, table), nil
}

func (p *Processor) logWeight(ctx context.Context, ownerID int64, args []string) (string, error) {
	if len(args) < 1 {
		return "Usage: " + p.prefix + "log_weight <kilos>", nil
	}
	kilos, err := strconv.ParseFloat(args[0], 64)
	if err != nil || kilos <= 0 {
		return "Weight must be a positive number.", nil
	}

	added, err := p.bodyweight.Add(ctx, bodyweight.Entry{
		OwnerID: ownerID,
		Date:    p.now().Truncate(24 * time.Hour),
		Kilos:   kilos,
	})
	if err != nil {
		return "", fmt.Errorf("add weight entry: %w", err)
	}

	return fmt.Sprintf("Body weight logged: %.1f kg.", added.Kilos), nil
}

func (p *Processor) weightHistory(ctx context.Context, ownerID int64) (string, error) {
	entries, err := p.bodyweight.History(ctx, ownerID, historyLimit)
	if err != nil {
		return "", fmt.Errorf("get weight history: %w", err)
	}
	if len(entries) == 0 {
		return "No body weight entries yet.", nil
	}

	rows := make([][]any, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []any{
			entry.Date.Format("2006-01-02"),
			fmt.Sprintf("%.1f", entry.Kilos),
		})
	}

	table, err := texttable.Render([]string{"Date", "Kilos"}, rows)
	if err != nil {
		return "", fmt.Errorf("render weight table: %w", err)
	}

	return "```\n" + table + "\n```", nil
}
