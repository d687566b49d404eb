package workouts

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/zydazln93/gymbros-discord/internal/fitness"
	"github.com/zydazln93/gymbros-discord/internal/telemetry/metrics"
	"github.com/zydazln93/gymbros-discord/internal/telemetry/tracing"
	"github.com/zydazln93/gymbros-discord/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	AddCardio(ctx context.Context, cardio CardioLog) (*CardioLog, error)
	AddLift(ctx context.Context, lift LiftLog) (*LiftLog, error)
	ListCardioBySession(ctx context.Context, sessionID int) ([]CardioLog, error)
	ListLiftsBySession(ctx context.Context, sessionID int) ([]LiftLog, error)
}

type workoutsAnalyzer interface {
	PersonalRecords(ctx context.Context, ownerID int64) ([]fitness.PersonalRecord, error)
	ExerciseProgress(ctx context.Context, ownerID int64, exercise string) ([]LiftLog, error)
}

type Handler struct {
	repo     workoutsRepo
	analyzer workoutsAnalyzer
	metrics  *metrics.Manager
}

func NewHandler(repo workoutsRepo, analyzer workoutsAnalyzer, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:     repo,
		analyzer: analyzer,
		metrics:  metricsManager,
	}
}

func (handler *Handler) HandleAddCardio(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.addCardio")
	defer span.End()

	var cardio CardioLog
	if err := json.NewDecoder(r.Body).Decode(&cardio); err != nil {
		log.Errorf("add cardio, unmarshal json params: %s", err)
		http.Error(w, "add cardio failed", http.StatusBadRequest)
		return
	}
	if cardio.OwnerID == 0 {
		http.Error(w, "error, owner id empty", http.StatusBadRequest)
		return
	}
	if cardio.Machine == "" {
		http.Error(w, "error, machine empty", http.StatusBadRequest)
		return
	}
	if cardio.DurationMinutes <= 0 {
		http.Error(w, "error, invalid duration", http.StatusBadRequest)
		return
	}

	added, err := handler.repo.AddCardio(ctx, cardio)
	if err != nil {
		log.Errorf("failed to add cardio log: %s", err)
		http.Error(w, "error, failed to add cardio log", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("marshal added cardio log: %s", err)
		http.Error(w, "error, failed to add cardio log", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWorkoutsLogged.WithLabelValues("cardio").Inc()
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleAddLift(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.addLift")
	defer span.End()

	var lift LiftLog
	if err := json.NewDecoder(r.Body).Decode(&lift); err != nil {
		log.Errorf("add lift, unmarshal json params: %s", err)
		http.Error(w, "add lift failed", http.StatusBadRequest)
		return
	}
	if lift.OwnerID == 0 {
		http.Error(w, "error, owner id empty", http.StatusBadRequest)
		return
	}
	if lift.Exercise == "" {
		http.Error(w, "error, exercise empty", http.StatusBadRequest)
		return
	}
	if lift.Sets <= 0 || lift.Reps <= 0 {
		http.Error(w, "error, invalid sets or reps", http.StatusBadRequest)
		return
	}

	added, err := handler.repo.AddLift(ctx, lift)
	if err != nil {
		log.Errorf("failed to add lift log: %s", err)
		http.Error(w, "error, failed to add lift log", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("marshal added lift log: %s", err)
		http.Error(w, "error, failed to add lift log", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWorkoutsLogged.WithLabelValues("lift").Inc()
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

type sessionWorkoutsResponse struct {
	Cardio []CardioLog `json:"cardio"`
	Lifts  []LiftLog   `json:"lifts"`
}

// HandleSessionWorkouts returns everything logged in one session.
func (handler *Handler) HandleSessionWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sessionWorkouts")
	defer span.End()

	vars := mux.Vars(r)
	sessionID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, invalid session id", http.StatusBadRequest)
		return
	}

	cardio, err := handler.repo.ListCardioBySession(ctx, sessionID)
	if err != nil {
		log.Errorf("failed to list session cardio logs: %s", err)
		http.Error(w, "error, failed to get session workouts", http.StatusInternalServerError)
		return
	}
	lifts, err := handler.repo.ListLiftsBySession(ctx, sessionID)
	if err != nil {
		log.Errorf("failed to list session lift logs: %s", err)
		http.Error(w, "error, failed to get session workouts", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(sessionWorkoutsResponse{
		Cardio: cardio,
		Lifts:  lifts,
	})
	if err != nil {
		log.Errorf("marshal session workouts: %s", err)
		http.Error(w, "error, failed to get session workouts", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.records")
	defer span.End()

	ownerID, err := strconv.ParseInt(r.URL.Query().Get("ownerId"), 10, 64)
	if err != nil {
		http.Error(w, "error, invalid owner id", http.StatusBadRequest)
		return
	}

	records, err := handler.analyzer.PersonalRecords(ctx, ownerID)
	if err != nil {
		log.Errorf("failed to get personal records: %s", err)
		http.Error(w, "error, failed to get personal records", http.StatusInternalServerError)
		return
	}

	recordsJson, err := json.Marshal(records)
	if err != nil {
		log.Errorf("marshal personal records: %s", err)
		http.Error(w, "error, failed to get personal records", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, recordsJson)
}

func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.progress")
	defer span.End()

	ownerID, err := strconv.ParseInt(r.URL.Query().Get("ownerId"), 10, 64)
	if err != nil {
		http.Error(w, "error, invalid owner id", http.StatusBadRequest)
		return
	}
	exercise := r.URL.Query().Get("exercise")
	if exercise == "" {
		http.Error(w, "error, exercise empty", http.StatusBadRequest)
		return
	}

	lifts, err := handler.analyzer.ExerciseProgress(ctx, ownerID, exercise)
	if err != nil {
		log.Errorf("failed to get exercise progress: %s", err)
		http.Error(w, "error, failed to get exercise progress", http.StatusInternalServerError)
		return
	}

	liftsJson, err := json.Marshal(lifts)
	if err != nil {
		log.Errorf("marshal exercise progress: %s", err)
		http.Error(w, "error, failed to get exercise progress", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, liftsJson)
}
