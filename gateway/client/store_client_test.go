package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/loggateway/api/config"
	"github.com/loggateway/api/gateway/domain"
	"github.com/loggateway/api/gateway/errs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tablePath = "/test-app/test-key/data/logs"

func newTestStoreClient(t *testing.T, serverURL string, mutate ...func(*config.StoreConfig)) *StoreClient {
	t.Helper()
	cfg := config.StoreConfig{
		BaseURL:       serverURL,
		ApplicationID: "test-app",
		APIKey:        "test-key",
		Table:         "logs",
		Timeout:       2 * time.Second,
	}
	for _, m := range mutate {
		m(&cfg)
	}
	sc, err := newStoreClient(cfg, prometheus.NewRegistry())
	require.NoError(t, err)
	return sc
}

func int64Ptr(v int64) *int64 { return &v }

func TestCreateSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, tablePath, r.URL.Path)
		assert.Equal(t, "test-app", r.Header.Get("application-id"))
		assert.Equal(t, "test-key", r.Header.Get("secret-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"document_id":1,"transaction_id":2,"user_id":3}`, string(body))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"objectId":"A1","document_id":1,"transaction_id":2,"user_id":3,"created":1700000000000}`))
	}))
	defer server.Close()

	sc := newTestStoreClient(t, server.URL)
	got, err := sc.Create(context.Background(), domain.LogPatch{
		DocumentID:    int64Ptr(1),
		TransactionID: int64Ptr(2),
		UserID:        int64Ptr(3),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"objectId":"A1","document_id":1,"transaction_id":2,"user_id":3,"created":1700000000000}`, string(got))
	assert.Equal(t, 1.0, testutil.ToFloat64(sc.metrics.requests.WithLabelValues("create log", "200")))
}

func TestCreateStoreErrorKeepsStatusAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":1007,"message":"Unable to save object"}`))
	}))
	defer server.Close()

	sc := newTestStoreClient(t, server.URL)
	_, err := sc.Create(context.Background(), domain.LogPatch{UserID: int64Ptr(3)})
	require.Error(t, err)

	httpErr, ok := errs.IsHTTPStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Equal(t, "failed to create log", httpErr.Message)
	assert.Equal(t, `{"code":1007,"message":"Unable to save object"}`, httpErr.Details)
}

func TestListBuildsEncodedQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, tablePath, r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "document_id = 1 AND user_id = -3", query.Get("where"))
		assert.Equal(t, "50", query.Get("pageSize"))
		assert.Equal(t, "10", query.Get("offset"))
		assert.Equal(t, "created desc", query.Get("sortBy"))
		assert.NotContains(t, r.URL.RawQuery, " ")
		_, _ = w.Write([]byte(`[{"objectId":"A1"}]`))
	}))
	defer server.Close()

	sc := newTestStoreClient(t, server.URL)
	got, err := sc.List(context.Background(), &domain.ListOptions{
		Filter:   domain.Filter{}.Eq(domain.FieldDocumentID, 1).Eq(domain.FieldUserID, -3),
		PageSize: 50,
		Offset:   10,
		SortBy:   "created desc",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"objectId":"A1"}]`, string(got))
}

func TestListWithoutFilterSendsNoWhere(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	sc := newTestStoreClient(t, server.URL)
	got, err := sc.List(context.Background(), &domain.ListOptions{})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(got))
}

func TestListNilOptions(t *testing.T) {
	sc := newTestStoreClient(t, "http://127.0.0.1:1")
	_, err := sc.List(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrNilQueryInput)
}

func TestUpdateEscapesObjectIDAndMapsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, tablePath+"/a%2F..%2Fb", r.URL.EscapedPath())
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"user_id":9}`, string(body))
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":1000,"message":"Entity with the specified ID cannot be found"}`))
	}))
	defer server.Close()

	sc := newTestStoreClient(t, server.URL)
	_, err := sc.Update(context.Background(), "a/../b", domain.LogPatch{UserID: int64Ptr(9)})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteStatuses(t *testing.T) {
	var status atomic.Int64
	status.Store(http.StatusOK)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, tablePath+"/A1", r.URL.Path)
		w.WriteHeader(int(status.Load()))
		_, _ = w.Write([]byte(`{"deletionTime":1700000000000}`))
	}))
	defer server.Close()

	sc := newTestStoreClient(t, server.URL)
	require.NoError(t, sc.Delete(context.Background(), "A1"))

	status.Store(http.StatusNotFound)
	assert.ErrorIs(t, sc.Delete(context.Background(), "A1"), domain.ErrNotFound)

	status.Store(http.StatusInternalServerError)
	err := sc.Delete(context.Background(), "A1")
	httpErr, ok := errs.IsHTTPStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
}

func TestInvalidJSONOnSuccessIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>ok</html>`))
	}))
	defer server.Close()

	sc := newTestStoreClient(t, server.URL)
	_, err := sc.List(context.Background(), &domain.ListOptions{})
	require.Error(t, err)
	_, isStatus := errs.IsHTTPStatusError(err)
	assert.False(t, isStatus)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestTransportErrorIsNotAStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	sc := newTestStoreClient(t, serverURL)
	_, err := sc.List(context.Background(), &domain.ListOptions{})
	require.Error(t, err)
	_, isStatus := errs.IsHTTPStatusError(err)
	assert.False(t, isStatus)
	assert.Contains(t, err.Error(), "store request failed")
}

func TestCancelledContextAbortsCall(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer server.Close()
	defer close(release)

	sc := newTestStoreClient(t, server.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := sc.List(ctx, &domain.ListOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestCircuitBreakerOpensOnServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	sc := newTestStoreClient(t, server.URL, func(cfg *config.StoreConfig) {
		cfg.CircuitBreaker = config.CircuitBreakerConfig{Enabled: true, MaxFailures: 2, OpenTimeout: time.Minute}
	})

	for i := 0; i < 2; i++ {
		_, err := sc.List(context.Background(), &domain.ListOptions{})
		httpErr, ok := errs.IsHTTPStatusError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
	}

	_, err := sc.List(context.Background(), &domain.ListOptions{})
	httpErr, ok := errs.IsHTTPStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
	assert.EqualValues(t, 2, calls.Load(), "open breaker must not reach the store")
}

func TestCircuitBreakerIgnoresClientErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	sc := newTestStoreClient(t, server.URL, func(cfg *config.StoreConfig) {
		cfg.CircuitBreaker = config.CircuitBreakerConfig{Enabled: true, MaxFailures: 1, OpenTimeout: time.Minute}
	})

	for i := 0; i < 3; i++ {
		err := sc.Delete(context.Background(), "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	}
}

func TestMetricsRegistrationIsIdempotent(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := newStoreMetrics(reg)
	require.NoError(t, err)
	second, err := newStoreMetrics(reg)
	require.NoError(t, err)

	first.observe("list logs", "200", time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(second.requests.WithLabelValues("list logs", "200")))
}

func TestDecodedRecordsFromList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"objectId":"A1","transaction_id":99},{"objectId":"A2","transaction_id":99}]`))
	}))
	defer server.Close()

	sc := newTestStoreClient(t, server.URL)
	payload, err := sc.List(context.Background(), &domain.ListOptions{Filter: domain.Filter{}.Eq(domain.FieldTransactionID, 99)})
	require.NoError(t, err)

	records, err := domain.DecodeRecords(payload)
	require.NoError(t, err)
	require.Len(t, records, 2)
	first, err := domain.DecodeRecord(records[0])
	require.NoError(t, err)
	assert.Equal(t, "A1", first.ObjectID)
}
