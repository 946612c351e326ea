package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/nemanja-m/wordfreq/internal/analyzer/service"
	"github.com/nemanja-m/wordfreq/internal/shared/config"
	"github.com/nemanja-m/wordfreq/internal/shared/logging"
	"github.com/nemanja-m/wordfreq/pkg/mapreduce"
)

const DefaultMaxBodyBytes = 16 * 1024 * 1024 // 16MB

type API struct {
	analysisService service.AnalysisService
	maxBodyBytes    int64
	logger          logging.Logger
}

func NewAPI(analysisService service.AnalysisService, maxBodyBytes int64, logger logging.Logger) *API {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &API{
		analysisService: analysisService,
		maxBodyBytes:    maxBodyBytes,
		logger:          logger,
	}
}

func (a *API) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/analyze", a.analyze)
	mux.HandleFunc("GET /healthz", a.health)
}

// analyze handles POST /api/analyze
func (a *API) analyze(w http.ResponseWriter, r *http.Request) {
	top := 0
	if topStr := r.URL.Query().Get("top"); topStr != "" {
		n, err := strconv.Atoi(topStr)
		if err != nil || n < 1 {
			a.respondError(w, http.StatusBadRequest, "invalid top parameter", "top must be a positive integer")
			return
		}
		top = n
	}

	r.Body = http.MaxBytesReader(w, r.Body, a.maxBodyBytes)

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			a.respondError(w, http.StatusRequestEntityTooLarge, "request body too large", err.Error())
			return
		}
		a.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := a.analysisService.Analyze(r.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, mapreduce.ErrInputTooLarge):
			a.respondError(w, http.StatusRequestEntityTooLarge, "input too large", err.Error())
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			a.respondError(w, http.StatusServiceUnavailable, "analysis canceled", err.Error())
		default:
			a.respondError(w, http.StatusInternalServerError, "analysis failed", err.Error())
		}
		return
	}

	a.respondJSON(w, http.StatusOK, ToAnalyzeResponse(result.Top(top)))
}

// health handles GET /healthz
func (a *API) health(w http.ResponseWriter, r *http.Request) {
	a.respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (a *API) respondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		a.logger.Error("Failed to encode response", "error", err)
	}
}

func (a *API) respondError(w http.ResponseWriter, statusCode int, error string, message string) {
	resp := ErrorResponse{
		Error:   error,
		Message: message,
		Code:    statusCode,
	}
	a.respondJSON(w, statusCode, resp)
}

func NewServer(cfg config.RESTConfig, analysisService service.AnalysisService, logger logging.Logger) *http.Server {
	api := NewAPI(analysisService, cfg.MaxBodyBytes, logger)
	mux := http.NewServeMux()
	api.RegisterRoutes(mux)

	handler := ChainMiddleware(
		mux,
		RecoveryMiddleware(logger),
		RequestIDMiddleware,
		LoggingMiddleware(logger),
	)

	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}
