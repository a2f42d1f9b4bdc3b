package domain

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrNoObjectID    = errors.New("record has no objectId")
	ErrNilQueryInput = errors.New("query options is nil")
)
