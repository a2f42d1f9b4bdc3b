package errs

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsHTTPStatusErrorThroughWrapping(t *testing.T) {
	storeErr := NewStoreError(http.StatusConflict, "failed to create log", `{"code":1155}`)
	wrapped := errors.Wrap(errors.WithMessage(storeErr, "create log"), "handler")

	got, ok := IsHTTPStatusError(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, got.StatusCode)
	assert.Equal(t, `{"code":1155}`, got.Details)
}

func TestIsHTTPStatusErrorPlainError(t *testing.T) {
	_, ok := IsHTTPStatusError(errors.New("boom"))
	assert.False(t, ok)

	_, ok = IsHTTPStatusError(nil)
	assert.False(t, ok)
}

func TestHTTPStatusErrorMessage(t *testing.T) {
	assert.Equal(t, "(status 400) user_id must be an integer", NewValidationError("%s must be an integer", "user_id").Error())
	assert.Equal(t, "(status 502) failed to list logs: bad gateway", NewStoreError(502, "failed to list logs", "bad gateway").Error())

	cause := errors.New("dial tcp: refused")
	err := NewHTTPStatusError(http.StatusServiceUnavailable, "store unavailable", cause)
	assert.Equal(t, "(status 503) store unavailable: dial tcp: refused", err.Error())
	assert.ErrorIs(t, err, cause)
}
