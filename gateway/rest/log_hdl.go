package rest

import (
	"fmt"
	"net/http"

	"github.com/loggateway/api/gateway/domain"
)

// LogRequest is the body of a log create or update. Each field accepts an
// integer or a string holding one.
type LogRequest struct {
	DocumentID    any `json:"document_id" swaggertype:"integer" example:"1"`
	TransactionID any `json:"transaction_id" swaggertype:"integer" example:"1001"`
	UserID        any `json:"user_id" swaggertype:"integer" example:"42"`
}

type UpdateUserIDRequest struct {
	UserID any `json:"user_id" swaggertype:"integer" example:"42"`
}

// BulkDeleteResponse reports how many records a bulk delete removed.
type BulkDeleteResponse struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message"`
	DeletedCount int      `json:"deleted_count"`
	Errors       []string `json:"errors,omitempty"`
}

// CreateLog godoc
// @Summary Create log
// @Description Create a log record in the store. All three fields are required.
// @Tags Logs
// @Accept json
// @Produce json
// @Param request body LogRequest true "Log payload"
// @Success 201 {object} map[string]any
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /logs [post]
func (h *Handler) CreateLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	body, err := h.decodeBody(r, "no data provided")
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	patch, err := bindLogPatch(body, true)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	created, err := h.Svc.CreateLog(ctx, patch)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusCreated, created)
}

// ListLogs godoc
// @Summary List logs
// @Description List a page of log records.
// @Tags Logs
// @Produce json
// @Param pageSize query int false "Page size" default(100)
// @Param offset query int false "Offset" default(0)
// @Param sortBy query string false "Sort expression" default(created)
// @Success 200 {array} map[string]any
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /logs [get]
func (h *Handler) ListLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pageSize, err := nonNegativeQueryInt(r, "pageSize", domain.DefaultPageSize)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	offset, err := nonNegativeQueryInt(r, "offset", domain.DefaultOffset)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	sortBy := domain.SortBy(r.URL.Query().Get("sortBy"))
	if sortBy == "" {
		sortBy = domain.DefaultSortBy
	}
	logs, err := h.Svc.ListLogs(ctx, &domain.ListOptions{
		PageSize: pageSize,
		Offset:   offset,
		SortBy:   sortBy,
	})
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, logs)
}

// GetLogByTransaction godoc
// @Summary Get log by transaction
// @Description Return the first log record with the given transaction_id.
// @Tags Logs
// @Produce json
// @Param transaction_id query int true "Transaction ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /logs/by-transaction [get]
func (h *Handler) GetLogByTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	transactionID, err := requiredQueryInt(r, domain.FieldTransactionID)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	record, err := h.Svc.GetLogByTransaction(ctx, transactionID)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, record)
}

// UpdateUserIDByTransaction godoc
// @Summary Update user of a transaction
// @Description Set user_id on the log record holding the given transaction_id.
// @Tags Logs
// @Accept json
// @Produce json
// @Param transaction_id query int true "Transaction ID"
// @Param request body UpdateUserIDRequest true "New user"
// @Success 200 {object} map[string]any
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /logs/by-transaction [put]
func (h *Handler) UpdateUserIDByTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	transactionID, err := requiredQueryInt(r, domain.FieldTransactionID)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	body, err := h.decodeBody(r, "user_id is required in the body")
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	raw, ok := body[domain.FieldUserID]
	if !ok {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "user_id is required in the body", "")
		return
	}
	userID, ok := coerceInt(raw)
	if !ok {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "user_id must be an integer", "")
		return
	}
	updated, err := h.Svc.UpdateUserIDByTransaction(ctx, transactionID, userID)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, updated)
}

// SearchLogs godoc
// @Summary Search logs
// @Description List log records matching every given field. Without parameters every record is listed.
// @Tags Logs
// @Produce json
// @Param document_id query int false "Document ID"
// @Param transaction_id query int false "Transaction ID"
// @Param user_id query int false "User ID"
// @Success 200 {array} map[string]any
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /logs/search [get]
func (h *Handler) SearchLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter := domain.Filter{}
	for _, field := range domain.LogFields {
		v, present, err := queryInt(r, field)
		if err != nil {
			h.HandleError(ctx, w, err)
			return
		}
		if present {
			filter = filter.Eq(field, v)
		}
	}
	logs, err := h.Svc.SearchLogs(ctx, filter)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, logs)
}

// UpdateLog godoc
// @Summary Update log
// @Description Partially update a log record by objectId.
// @Tags Logs
// @Accept json
// @Produce json
// @Param log_id path string true "Log objectId"
// @Param request body LogRequest true "Fields to update"
// @Success 200 {object} map[string]any
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /logs/{log_id} [put]
func (h *Handler) UpdateLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logID := h.GetPathParam(r, "log_id")
	body, err := h.decodeBody(r, "no data provided for update")
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	patch, err := bindLogPatch(body, false)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	if patch.IsEmpty() {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "no valid fields to update", "")
		return
	}
	updated, err := h.Svc.UpdateLog(ctx, logID, patch)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, updated)
}

// DeleteLog godoc
// @Summary Delete log
// @Description Delete a log record by objectId.
// @Tags Logs
// @Produce json
// @Param log_id path string true "Log objectId"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /logs/{log_id} [delete]
func (h *Handler) DeleteLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logID := h.GetPathParam(r, "log_id")
	if err := h.Svc.DeleteLog(ctx, logID); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.SuccessResponse(ctx, w, "log deleted successfully")
}

// DeleteLogsByUserID godoc
// @Summary Delete logs of a user
// @Description Delete every log record with the given user_id. Deletions are independent; a 207 reports partial failure.
// @Tags Logs
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {object} BulkDeleteResponse
// @Success 207 {object} BulkDeleteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /logs/delete [delete]
func (h *Handler) DeleteLogsByUserID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := requiredQueryInt(r, domain.FieldUserID)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	result, err := h.Svc.DeleteLogsByUserID(ctx, userID)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}

	resp := BulkDeleteResponse{
		Success:      !result.Partial(),
		DeletedCount: result.DeletedCount,
		Errors:       result.Errors,
	}
	status := http.StatusOK
	switch {
	case result.Partial():
		status = http.StatusMultiStatus
		resp.Message = fmt.Sprintf("deleted %d logs, but some deletions failed", result.DeletedCount)
	case result.Matched == 0:
		resp.Message = "no logs found for that user_id"
	default:
		resp.Message = "logs deleted successfully"
	}
	h.JSONResponse(ctx, w, status, resp)
}
