package bodyweight

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/zydazln93/gymbros-discord/internal/telemetry/metrics"
	"github.com/zydazln93/gymbros-discord/internal/telemetry/tracing"
	"github.com/zydazln93/gymbros-discord/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=bodyweight_test

const defaultHistoryLimit = 10

type bodyweightRepo interface {
	Add(ctx context.Context, entry Entry) (*Entry, error)
	History(ctx context.Context, ownerID int64, limit int) ([]Entry, error)
}

type Handler struct {
	repo    bodyweightRepo
	metrics *metrics.Manager
}

func NewHandler(repo bodyweightRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metricsManager,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodyweight.add")
	defer span.End()

	var entry Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Errorf("add weight entry, unmarshal json params: %s", err)
		http.Error(w, "add weight entry failed", http.StatusBadRequest)
		return
	}
	if entry.OwnerID == 0 {
		http.Error(w, "error, owner id empty", http.StatusBadRequest)
		return
	}
	if entry.Kilos <= 0 {
		http.Error(w, "error, invalid weight", http.StatusBadRequest)
		return
	}

	added, err := handler.repo.Add(ctx, entry)
	if err != nil {
		log.Errorf("failed to add weight entry: %s", err)
		http.Error(w, "error, failed to add weight entry", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("marshal added weight entry: %s", err)
		http.Error(w, "error, failed to add weight entry", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWeightEntries.Inc()
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodyweight.history")
	defer span.End()

	ownerID, err := strconv.ParseInt(r.URL.Query().Get("ownerId"), 10, 64)
	if err != nil {
		http.Error(w, "error, invalid owner id", http.StatusBadRequest)
		return
	}

	limit := defaultHistoryLimit
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		limit, err = strconv.Atoi(limitParam)
		if err != nil || limit < 1 {
			http.Error(w, "error, invalid limit", http.StatusBadRequest)
			return
		}
	}

	entries, err := handler.repo.History(ctx, ownerID, limit)
	if err != nil {
		log.Errorf("failed to get weight history: %s", err)
		http.Error(w, "error, failed to get weight history", http.StatusInternalServerError)
		return
	}

	entriesJson, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("marshal weight history: %s", err)
		http.Error(w, "error, failed to get weight history", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, entriesJson)
}
