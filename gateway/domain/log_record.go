package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Field names of a log record, as stored in the data table.
const (
	FieldDocumentID    = "document_id"
	FieldTransactionID = "transaction_id"
	FieldUserID        = "user_id"
)

// LogFields lists the semantic fields of a log record in their canonical order.
var LogFields = []string{FieldDocumentID, FieldTransactionID, FieldUserID}

// LogRecord holds the only columns of a store row the gateway reads. Every
// other column, typed or not, is left alone; responses forward the store
// payload as-is.
type LogRecord struct {
	ObjectID      string
	TransactionID json.RawMessage
}

// HasTransaction reports whether the row carries a non-null transaction_id.
func (r LogRecord) HasTransaction() bool {
	return len(r.TransactionID) > 0 && string(r.TransactionID) != "null"
}

// DecodeRecord reads the objectId and transaction_id of a single store row.
// A missing, null or non-string objectId decodes as empty.
func DecodeRecord(raw json.RawMessage) (LogRecord, error) {
	var keys struct {
		ObjectID      json.RawMessage `json:"objectId"`
		TransactionID json.RawMessage `json:"transaction_id"`
	}
	if err := json.Unmarshal(raw, &keys); err != nil {
		return LogRecord{}, err
	}
	record := LogRecord{TransactionID: keys.TransactionID}
	if len(keys.ObjectID) > 0 {
		if err := json.Unmarshal(keys.ObjectID, &record.ObjectID); err != nil {
			record.ObjectID = ""
		}
	}
	return record, nil
}

// LogPatch holds the fields to write on create or update. Nil fields are
// left out of the outbound payload.
type LogPatch struct {
	DocumentID    *int64 `json:"document_id,omitempty"`
	TransactionID *int64 `json:"transaction_id,omitempty"`
	UserID        *int64 `json:"user_id,omitempty"`
}

// Set assigns the named field. Unknown names are ignored.
func (p *LogPatch) Set(field string, value int64) {
	switch field {
	case FieldDocumentID:
		p.DocumentID = &value
	case FieldTransactionID:
		p.TransactionID = &value
	case FieldUserID:
		p.UserID = &value
	}
}

func (p LogPatch) IsEmpty() bool {
	return p.DocumentID == nil && p.TransactionID == nil && p.UserID == nil
}

// IsComplete reports whether all three fields are present.
func (p LogPatch) IsComplete() bool {
	return p.DocumentID != nil && p.TransactionID != nil && p.UserID != nil
}

// Condition is a single `field = value` term of a store filter.
type Condition struct {
	Field string
	Value int64
}

// Filter is a conjunction of equality conditions over integer fields.
// Values are typed, so rendering never splices caller text into the
// store's query language.
type Filter struct {
	conditions []Condition
}

// Eq returns a copy of the filter with `field = value` appended.
func (f Filter) Eq(field string, value int64) Filter {
	conditions := make([]Condition, 0, len(f.conditions)+1)
	conditions = append(conditions, f.conditions...)
	conditions = append(conditions, Condition{Field: field, Value: value})
	return Filter{conditions: conditions}
}

func (f Filter) IsEmpty() bool {
	return len(f.conditions) == 0
}

func (f Filter) Conditions() []Condition {
	return f.conditions
}

// String renders the filter as a where expression, e.g.
// "document_id = 1 AND user_id = 3".
func (f Filter) String() string {
	terms := make([]string, 0, len(f.conditions))
	for _, c := range f.conditions {
		terms = append(terms, c.Field+" = "+strconv.FormatInt(c.Value, 10))
	}
	return strings.Join(terms, " AND ")
}

// SortBy is a store sort expression, e.g. "created" or "user_id desc".
type SortBy string

const DefaultSortBy SortBy = "created"

const (
	DefaultPageSize = 100
	DefaultOffset   = 0
)

// ListOptions are the parameters of a store list query. A zero PageSize
// and empty SortBy leave the store's own defaults in place.
type ListOptions struct {
	Filter   Filter
	PageSize int
	Offset   int
	SortBy   SortBy
}

// BulkDeleteResult is the outcome of deleting every record of a user.
type BulkDeleteResult struct {
	Matched      int
	DeletedCount int
	Errors       []string
}

func (r *BulkDeleteResult) Partial() bool {
	return len(r.Errors) > 0
}

// DecodeRecords splits a store list payload into individual records. The
// store normally answers with an array; a lone object carrying a
// transaction_id counts as a single match, anything else as no match.
func DecodeRecords(payload json.RawMessage) ([]json.RawMessage, error) {
	trimmed := strings.TrimSpace(string(payload))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}
	switch trimmed[0] {
	case '[':
		var records []json.RawMessage
		if err := json.Unmarshal(payload, &records); err != nil {
			return nil, err
		}
		return records, nil
	case '{':
		record, err := DecodeRecord(payload)
		if err != nil {
			return nil, err
		}
		if !record.HasTransaction() {
			return nil, nil
		}
		return []json.RawMessage{payload}, nil
	default:
		return nil, nil
	}
}
