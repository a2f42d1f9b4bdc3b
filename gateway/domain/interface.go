package domain

import (
	"context"
	"encoding/json"
)

// Store is the hosted data table holding log records. Payloads are the
// store's own JSON so that bookkeeping columns reach the caller untouched.
type Store interface {
	Create(ctx context.Context, patch LogPatch) (json.RawMessage, error)
	List(ctx context.Context, opt *ListOptions) (json.RawMessage, error)
	Update(ctx context.Context, objectID string, patch LogPatch) (json.RawMessage, error)
	Delete(ctx context.Context, objectID string) error
}

type Service interface {
	CreateLog(ctx context.Context, patch LogPatch) (json.RawMessage, error)
	ListLogs(ctx context.Context, opt *ListOptions) (json.RawMessage, error)
	GetLogByTransaction(ctx context.Context, transactionID int64) (json.RawMessage, error)
	UpdateUserIDByTransaction(ctx context.Context, transactionID int64, userID int64) (json.RawMessage, error)
	SearchLogs(ctx context.Context, filter Filter) (json.RawMessage, error)
	UpdateLog(ctx context.Context, objectID string, patch LogPatch) (json.RawMessage, error)
	DeleteLog(ctx context.Context, objectID string) error
	DeleteLogsByUserID(ctx context.Context, userID int64) (*BulkDeleteResult, error)
}
