package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ericfisherdev/seedpass/internal/application"
	"github.com/ericfisherdev/seedpass/internal/domain/model"
	"github.com/ericfisherdev/seedpass/internal/domain/port/driven"
)

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	passwordSvc   *application.PasswordService
	healthSvc     *application.HealthService
	defaultLength int
	logger        *slog.Logger
}

// NewHandler creates a Handler with all required dependencies. defaultLength
// is used when a generate request does not specify a length.
func NewHandler(
	passwordSvc *application.PasswordService,
	healthSvc *application.HealthService,
	defaultLength int,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		passwordSvc:   passwordSvc,
		healthSvc:     healthSvc,
		defaultLength: defaultLength,
		logger:        logger,
	}
}

// RegisterAPIRoutes registers all REST API routes on the provided mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/passwords", h.ListPasswords)
	mux.HandleFunc("POST /api/v1/passwords", h.GeneratePassword)
	mux.HandleFunc("GET /api/v1/passwords/{seed...}", h.GetPassword)
	mux.HandleFunc("GET /api/v1/health", h.Health)
}

// ApplyMiddleware wraps next with cache, logging and recovery middleware.
func ApplyMiddleware(next http.Handler, logger *slog.Logger) http.Handler {
	// Recovery innermost so panics are caught before logging.
	wrapped := recoveryMiddleware(logger, next)
	wrapped = noStoreMiddleware(wrapped)
	wrapped = loggingMiddleware(logger, wrapped)
	return wrapped
}

// ListPasswords returns stored passwords filtered by ?q= and ordered by
// ?sort=seed_text|created_at and ?order=asc|desc.
func (h *Handler) ListPasswords(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q, err := model.ParseListQuery(params.Get("sort"), params.Get("order"), params.Get("q"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := h.passwordSvc.List(r.Context(), q)
	if err != nil {
		h.writeServiceError(w, "failed to list passwords", err)
		return
	}

	resp := make([]PasswordResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, toPasswordResponse(rec))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GeneratePassword derives a password for the requested seed text, stores it
// and returns the stored record.
func (h *Handler) GeneratePassword(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	length := req.Length
	if length == 0 {
		length = h.defaultLength
	}
	if length < 0 {
		writeError(w, http.StatusBadRequest, "length must not be negative")
		return
	}

	rec, err := h.passwordSvc.Generate(r.Context(), req.SeedText, length)
	if err != nil {
		h.writeServiceError(w, "failed to generate password", err)
		return
	}

	h.logger.Info("password generated", "seed_length", len(rec.SeedText), "length", len(rec.Password))
	writeJSON(w, http.StatusCreated, toPasswordResponse(rec))
}

// GetPassword returns the stored record for a single seed text.
func (h *Handler) GetPassword(w http.ResponseWriter, r *http.Request) {
	rec, err := h.passwordSvc.Get(r.Context(), r.PathValue("seed"))
	if err != nil {
		h.writeServiceError(w, "failed to get password", err)
		return
	}

	writeJSON(w, http.StatusOK, toPasswordResponse(rec))
}

// Health reports whether the password storage is reachable. A degraded
// report is served with 503 so container probes fail.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	report := h.healthSvc.Check(r.Context())

	status := http.StatusOK
	if !report.Healthy() {
		h.logger.Warn("health check degraded", "storage", report.Storage)
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:  string(report.State),
		Storage: report.Storage,
		Time:    report.CheckedAt.Format(time.RFC3339),
	})
}

// writeServiceError maps application and port errors to HTTP status codes.
// Only storage failures are logged; the rest are client errors.
func (h *Handler) writeServiceError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, application.ErrEmptySeed),
		errors.Is(err, application.ErrInvalidLength),
		errors.Is(err, model.ErrInvalidSortColumn),
		errors.Is(err, model.ErrInvalidSortOrder):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, driven.ErrPasswordNotFound):
		writeError(w, http.StatusNotFound, "password not found")
	case errors.Is(err, driven.ErrStorageUnavailable):
		h.logger.Error(msg, "error", err)
		writeError(w, http.StatusServiceUnavailable, "password storage unavailable")
	default:
		h.logger.Error(msg, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
