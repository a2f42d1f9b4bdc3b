package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/loggateway/api/gateway/domain"
	"github.com/loggateway/api/gateway/errs"
	"github.com/loggateway/api/pkg/logger"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

const serviceName = "Log Gateway"

// BuildVersion is reported by /version. Overridden at build time with -ldflags.
var BuildVersion = "1.0.0"

// ErrorResponse represents error response structure
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse represents the success response structure
type SuccessResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type Params struct {
	fx.In
	Svc      domain.Service
	Gatherer prometheus.Gatherer `optional:"true"`
}

func NewHandler(params Params) (*Handler, error) {
	if params.Svc == nil {
		return nil, errors.New("log service is nil")
	}
	return &Handler{
		Svc:      params.Svc,
		Gatherer: params.Gatherer,
	}, nil
}

type Handler struct {
	Svc      domain.Service
	Gatherer prometheus.Gatherer
}

func (h *Handler) JSONResponse(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, data)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		logger.Logger(ctx).Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) JSONBind(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	err := decoder.Decode(dst)
	if err != nil {
		return err
	}
	return nil
}

func (h *Handler) ErrorResponse(ctx context.Context, w http.ResponseWriter, status int, errMsg string, details string) {
	resp := ErrorResponse{
		Success: false,
		Error:   errMsg,
		Details: details,
	}
	h.JSONResponse(ctx, w, status, resp)
}

func (h *Handler) SuccessResponse(ctx context.Context, w http.ResponseWriter, message string) {
	resp := SuccessResponse{
		Success:   true,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	h.JSONResponse(ctx, w, http.StatusOK, resp)
}

// HandleError writes the response for an error returned by the service.
// Status errors keep their status and store text, not-found sentinels map
// to 404, anything else is logged and hidden behind a generic 500.
func (h *Handler) HandleError(ctx context.Context, w http.ResponseWriter, err error) {
	if httpErr, ok := errs.IsHTTPStatusError(err); ok {
		if httpErr.StatusCode >= http.StatusInternalServerError {
			logger.Logger(ctx).Error().Err(err).Msg("store call failed")
		}
		h.ErrorResponse(ctx, w, httpErr.StatusCode, httpErr.Message, httpErr.Details)
		return
	}
	switch {
	case errors.Is(err, domain.ErrNoObjectID):
		h.ErrorResponse(ctx, w, http.StatusNotFound, "no objectId found for log", "")
	case errors.Is(err, domain.ErrNotFound):
		h.ErrorResponse(ctx, w, http.StatusNotFound, "log not found", "")
	default:
		logger.Logger(ctx).Error().Err(err).Msgf("unexpected error: %+v", err)
		h.ErrorResponse(ctx, w, http.StatusInternalServerError, "internal server error", "")
	}
}

// Version godoc
// @Summary Service version
// @Tags System
// @Produce json
// @Success 200 {object} map[string]any
// @Router /version [get]
func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"message": serviceName,
		"version": BuildVersion,
		"endpoints": []string{
			"POST /logs",
			"GET /logs",
			"GET /logs/by-transaction",
			"PUT /logs/by-transaction",
			"GET /logs/search",
			"PUT /logs/{log_id}",
			"DELETE /logs/{log_id}",
			"DELETE /logs/delete",
			"GET /health",
			"GET /metrics",
		},
	}
	h.JSONResponse(r.Context(), w, http.StatusOK, response)
}

// HealthCheck godoc
// @Summary Liveness probe
// @Tags System
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   serviceName,
	}
	h.JSONResponse(r.Context(), w, http.StatusOK, response)
}
