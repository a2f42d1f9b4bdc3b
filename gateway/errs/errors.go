package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// HTTPStatusError is an error that already knows which status the caller
// should see. Details carries the store's raw response text when the
// error originates from the store.
type HTTPStatusError struct {
	StatusCode  int
	Message     string
	Details     string
	OriginalErr error
}

func (e *HTTPStatusError) Error() string {
	if e.OriginalErr != nil {
		return fmt.Sprintf("(status %d) %s: %v", e.StatusCode, e.Message, e.OriginalErr)
	}
	if e.Details != "" {
		return fmt.Sprintf("(status %d) %s: %s", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("(status %d) %s", e.StatusCode, e.Message)
}

func (e *HTTPStatusError) Unwrap() error {
	return e.OriginalErr
}

func NewHTTPStatusError(statusCode int, message string, originalErr error) *HTTPStatusError {
	return &HTTPStatusError{
		StatusCode:  statusCode,
		Message:     message,
		OriginalErr: originalErr,
	}
}

// NewStoreError reports a non-success store response, keeping its status
// and body.
func NewStoreError(statusCode int, message string, body string) *HTTPStatusError {
	return &HTTPStatusError{
		StatusCode: statusCode,
		Message:    message,
		Details:    body,
	}
}

// NewValidationError is a 400 raised before anything is sent to the store.
func NewValidationError(format string, args ...any) *HTTPStatusError {
	return &HTTPStatusError{
		StatusCode: 400,
		Message:    fmt.Sprintf(format, args...),
	}
}

func IsHTTPStatusError(err error) (*HTTPStatusError, bool) {
	if err == nil {
		return nil, false
	}
	var httpErr *HTTPStatusError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
