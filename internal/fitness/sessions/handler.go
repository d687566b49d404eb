package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/zydazln93/gymbros-discord/internal/telemetry/metrics"
	"github.com/zydazln93/gymbros-discord/internal/telemetry/tracing"
	"github.com/zydazln93/gymbros-discord/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=sessions_test

type sessionsService interface {
	Start(ctx context.Context, ownerID int64, ownerName string, now time.Time, notes *string) (*Session, error)
	Finish(ctx context.Context, ownerID int64, now time.Time, calories int) (*FinishedSession, error)
	Active(ctx context.Context, ownerID int64) (*Session, error)
	Get(ctx context.Context, id int) (*Session, error)
	HistoryPage(ctx context.Context, ownerID int64, page, size int) ([]HistoryEntry, int, error)
}

type Handler struct {
	service sessionsService
	metrics *metrics.Manager
	now     func() time.Time
}

func NewHandler(service sessionsService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metricsManager,
		now:     time.Now,
	}
}

type startSessionRequest struct {
	OwnerID   int64   `json:"ownerId"`
	OwnerName string  `json:"ownerName"`
	Notes     *string `json:"notes,omitempty"`
}

func (handler *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.start")
	defer span.End()

	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("start session, unmarshal json params: %s", err)
		http.Error(w, "add session failed", http.StatusBadRequest)
		return
	}
	if req.OwnerID == 0 {
		http.Error(w, "error, owner id empty", http.StatusBadRequest)
		return
	}

	session, err := handler.service.Start(ctx, req.OwnerID, req.OwnerName, handler.now(), req.Notes)
	if err != nil {
		if errors.Is(err, ErrActiveSessionExists) {
			http.Error(w, "session already running", http.StatusConflict)
			return
		}
		log.Errorf("failed to start session: %s", err)
		http.Error(w, "error, failed to start session", http.StatusInternalServerError)
		return
	}

	sessionJson, err := json.Marshal(session)
	if err != nil {
		log.Errorf("marshal started session: %s", err)
		http.Error(w, "error, failed to start session", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterSessionsStarted.Inc()
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, http.StatusCreated)
}

type finishSessionRequest struct {
	OwnerID  int64 `json:"ownerId"`
	Calories int   `json:"calories"`
}

func (handler *Handler) HandleFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.finish")
	defer span.End()

	var req finishSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("finish session, unmarshal json params: %s", err)
		http.Error(w, "finish session failed", http.StatusBadRequest)
		return
	}
	if req.OwnerID == 0 {
		http.Error(w, "error, owner id empty", http.StatusBadRequest)
		return
	}

	finished, err := handler.service.Finish(ctx, req.OwnerID, handler.now(), req.Calories)
	if err != nil {
		if errors.Is(err, ErrNoActiveSession) {
			http.Error(w, "no session running", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to finish session: %s", err)
		http.Error(w, "error, failed to finish session", http.StatusInternalServerError)
		return
	}

	finishedJson, err := json.Marshal(finished)
	if err != nil {
		log.Errorf("marshal finished session: %s", err)
		http.Error(w, "error, failed to finish session", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterSessionsFinished.Inc()
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, finishedJson)
}

func (handler *Handler) HandleActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.active")
	defer span.End()

	ownerID, err := strconv.ParseInt(r.URL.Query().Get("ownerId"), 10, 64)
	if err != nil {
		http.Error(w, "error, invalid owner id", http.StatusBadRequest)
		return
	}

	session, err := handler.service.Active(ctx, ownerID)
	if err != nil {
		log.Errorf("failed to get active session: %s", err)
		http.Error(w, "error, failed to get active session", http.StatusInternalServerError)
		return
	}
	if session == nil {
		http.Error(w, "no session running", http.StatusNotFound)
		return
	}

	sessionJson, err := json.Marshal(session)
	if err != nil {
		log.Errorf("marshal active session: %s", err)
		http.Error(w, "error, failed to get active session", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, sessionJson)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.get")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, invalid session id", http.StatusBadRequest)
		return
	}

	session, err := handler.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get session %d: %s", id, err)
		http.Error(w, "error, failed to get session", http.StatusInternalServerError)
		return
	}

	sessionJson, err := json.Marshal(session)
	if err != nil {
		log.Errorf("marshal session: %s", err)
		http.Error(w, "error, failed to get session", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, sessionJson)
}

type historyPageResponse struct {
	Entries []HistoryEntry `json:"entries"`
	Total   int            `json:"total"`
}

func (handler *Handler) HandleHistoryPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.historyPage")
	defer span.End()

	vars := mux.Vars(r)

	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		http.Error(w, fmt.Sprintf("error, parse page: %s", vars["page"]), http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		http.Error(w, fmt.Sprintf("error, parse size: %s", vars["size"]), http.StatusBadRequest)
		return
	}
	if page < 1 {
		http.Error(w, fmt.Sprintf("invalid page: %d", page), http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, fmt.Sprintf("invalid size: %d", size), http.StatusBadRequest)
		return
	}

	ownerID, err := strconv.ParseInt(r.URL.Query().Get("ownerId"), 10, 64)
	if err != nil {
		http.Error(w, "error, invalid owner id", http.StatusBadRequest)
		return
	}

	entries, total, err := handler.service.HistoryPage(ctx, ownerID, page, size)
	if err != nil {
		log.Errorf("failed to get session history: %s", err)
		http.Error(w, "error, failed to get session history", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(historyPageResponse{
		Entries: entries,
		Total:   total,
	})
	if err != nil {
		log.Errorf("marshal session history: %s", err)
		http.Error(w, "error, failed to get session history", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
