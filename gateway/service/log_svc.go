package service

import (
	"context"
	"encoding/json"

	"github.com/loggateway/api/gateway/domain"
	"github.com/loggateway/api/gateway/errs"
	"github.com/loggateway/api/pkg/logger"
	"github.com/pkg/errors"
)

func (svc *Service) CreateLog(ctx context.Context, patch domain.LogPatch) (json.RawMessage, error) {
	if err := requireComplete(patch); err != nil {
		return nil, err
	}
	return svc.Store.Create(ctx, patch)
}

func requireComplete(patch domain.LogPatch) error {
	present := map[string]bool{
		domain.FieldDocumentID:    patch.DocumentID != nil,
		domain.FieldTransactionID: patch.TransactionID != nil,
		domain.FieldUserID:        patch.UserID != nil,
	}
	for _, field := range domain.LogFields {
		if !present[field] {
			return errs.NewValidationError("missing required field: %s", field)
		}
	}
	return nil
}

// ListLogs forwards a paginated list query. Nil options mean the defaults
// (100 records from offset 0, sorted by creation time).
func (svc *Service) ListLogs(ctx context.Context, opt *domain.ListOptions) (json.RawMessage, error) {
	if opt == nil {
		opt = &domain.ListOptions{
			PageSize: domain.DefaultPageSize,
			Offset:   domain.DefaultOffset,
			SortBy:   domain.DefaultSortBy,
		}
	}
	if opt.PageSize < 0 || opt.Offset < 0 {
		return nil, errs.NewValidationError("pageSize and offset must be non-negative integers")
	}
	return svc.Store.List(ctx, opt)
}

func (svc *Service) GetLogByTransaction(ctx context.Context, transactionID int64) (json.RawMessage, error) {
	record, _, err := svc.findByTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// findByTransaction returns the first record whose transaction_id matches,
// raw along with its objectId and transaction_id.
func (svc *Service) findByTransaction(ctx context.Context, transactionID int64) (json.RawMessage, *domain.LogRecord, error) {
	payload, err := svc.Store.List(ctx, &domain.ListOptions{
		Filter:   domain.Filter{}.Eq(domain.FieldTransactionID, transactionID),
		PageSize: 1,
	})
	if err != nil {
		return nil, nil, err
	}
	records, err := domain.DecodeRecords(payload)
	if err != nil {
		return nil, nil, errors.Wrap(err, "decode store list response")
	}
	if len(records) == 0 {
		return nil, nil, errors.WithMessagef(domain.ErrNotFound, "transaction_id %d", transactionID)
	}
	record, err := domain.DecodeRecord(records[0])
	if err != nil {
		return nil, nil, errors.Wrap(err, "decode log record")
	}
	return records[0], &record, nil
}

// UpdateUserIDByTransaction reassigns the user of the record holding the
// given transaction. Only user_id is written.
func (svc *Service) UpdateUserIDByTransaction(ctx context.Context, transactionID int64, userID int64) (json.RawMessage, error) {
	_, record, err := svc.findByTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if record.ObjectID == "" {
		logger.Logger(ctx).Warn().Msgf("log with transaction_id %d has no objectId", transactionID)
		return nil, errors.WithStack(domain.ErrNoObjectID)
	}
	return svc.Store.Update(ctx, record.ObjectID, domain.LogPatch{UserID: &userID})
}

// SearchLogs lists the records matching every condition of the filter. An
// empty filter lists without restriction.
func (svc *Service) SearchLogs(ctx context.Context, filter domain.Filter) (json.RawMessage, error) {
	return svc.Store.List(ctx, &domain.ListOptions{Filter: filter})
}

func (svc *Service) UpdateLog(ctx context.Context, objectID string, patch domain.LogPatch) (json.RawMessage, error) {
	if objectID == "" {
		return nil, errs.NewValidationError("log id is required")
	}
	if patch.IsEmpty() {
		return nil, errs.NewValidationError("no valid fields to update")
	}
	return svc.Store.Update(ctx, objectID, patch)
}

func (svc *Service) DeleteLog(ctx context.Context, objectID string) error {
	if objectID == "" {
		return errs.NewValidationError("log id is required")
	}
	if err := svc.Store.Delete(ctx, objectID); err != nil {
		return err
	}
	logger.Logger(ctx).Info().Msgf("deleted log %s", objectID)
	return nil
}
