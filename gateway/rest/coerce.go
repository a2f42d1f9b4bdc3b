package rest

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/loggateway/api/gateway/domain"
	"github.com/loggateway/api/gateway/errs"
)

// coerceInt converts a JSON value to an integer. Numbers are truncated
// toward zero; strings must hold a base-10 integer, optionally signed and
// padded with whitespace. true and false read as 1 and 0. Null, arrays and
// objects never coerce.
func coerceInt(raw json.RawMessage) (int64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, false
	}
	switch c := raw[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	case c == '-' || (c >= '0' && c <= '9'):
		if v, err := strconv.ParseInt(string(raw), 10, 64); err == nil {
			return v, true
		}
		f, err := strconv.ParseFloat(string(raw), 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return 0, false
		}
		f = math.Trunc(f)
		if f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, false
		}
		return int64(f), true
	case bytes.Equal(raw, []byte("true")):
		return 1, true
	case bytes.Equal(raw, []byte("false")):
		return 0, true
	default:
		return 0, false
	}
}

// decodeBody reads a JSON object body. A missing, malformed, non-object or
// empty body is rejected with message.
func (h *Handler) decodeBody(r *http.Request, message string) (map[string]json.RawMessage, error) {
	if r.Body == nil {
		return nil, errs.NewValidationError("%s", message)
	}
	var body map[string]json.RawMessage
	if err := h.JSONBind(r, &body); err != nil || len(body) == 0 {
		return nil, errs.NewValidationError("%s", message)
	}
	return body, nil
}

// bindLogPatch coerces the log fields present in body. With required set,
// every field must be present.
func bindLogPatch(body map[string]json.RawMessage, required bool) (domain.LogPatch, error) {
	var patch domain.LogPatch
	for _, field := range domain.LogFields {
		raw, ok := body[field]
		if !ok {
			if required {
				return patch, errs.NewValidationError("missing required field: %s", field)
			}
			continue
		}
		v, ok := coerceInt(raw)
		if !ok {
			return patch, errs.NewValidationError("field %s must be an integer", field)
		}
		patch.Set(field, v)
	}
	return patch, nil
}

// queryInt parses an integer query parameter. An absent or empty parameter
// reports present=false.
func queryInt(r *http.Request, name string) (value int64, present bool, err error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return 0, false, nil
	}
	v, parseErr := strconv.ParseInt(s, 10, 64)
	if parseErr != nil {
		return 0, true, errs.NewValidationError("%s must be an integer", name)
	}
	return v, true, nil
}

func requiredQueryInt(r *http.Request, name string) (int64, error) {
	v, present, err := queryInt(r, name)
	if err != nil {
		return 0, err
	}
	if !present {
		return 0, errs.NewValidationError("%s query parameter is required", name)
	}
	return v, nil
}

func nonNegativeQueryInt(r *http.Request, name string, def int) (int, error) {
	v, present, err := queryInt(r, name)
	if err != nil || (present && (v < 0 || v > math.MaxInt32)) {
		return 0, errs.NewValidationError("%s must be a non-negative integer", name)
	}
	if !present {
		return def, nil
	}
	return int(v), nil
}
