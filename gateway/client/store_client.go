package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"time"

	"github.com/loggateway/api/config"
	"github.com/loggateway/api/gateway/domain"
	"github.com/loggateway/api/gateway/errs"
	"github.com/loggateway/api/pkg/logger"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/fx"
)

const (
	headerApplicationID = "application-id"
	headerSecretKey     = "secret-key"
)

type Params struct {
	fx.In
	StoreConfig config.StoreConfig
	Registerer  prometheus.Registerer
}

func NewStoreClient(params Params) (domain.Store, error) {
	return newStoreClient(params.StoreConfig, params.Registerer)
}

func newStoreClient(cfg config.StoreConfig, reg prometheus.Registerer) (*StoreClient, error) {
	tableURL, err := url.JoinPath(cfg.BaseURL, cfg.ApplicationID, cfg.APIKey.Value(), "data", cfg.Table)
	if err != nil {
		return nil, errors.Wrap(err, "build store url")
	}
	metrics, err := newStoreMetrics(reg)
	if err != nil {
		return nil, errors.Wrap(err, "register store metrics")
	}

	sc := &StoreClient{
		Client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		tableURL:      tableURL,
		applicationID: cfg.ApplicationID,
		apiKey:        cfg.APIKey,
		metrics:       metrics,
	}
	if cfg.CircuitBreaker.Enabled {
		sc.breaker = newBreaker(cfg.Table, cfg.CircuitBreaker)
	}
	return sc, nil
}

// StoreClient talks to the hosted data table over its REST data API.
type StoreClient struct {
	*http.Client

	tableURL      string
	applicationID string
	apiKey        config.SecretValue
	breaker       *gobreaker.CircuitBreaker
	metrics       *storeMetrics
}

// storeRequest describes one outbound call and how to read its outcome:
// statuses in accept are success, 404 becomes domain.ErrNotFound when
// notFound is set, everything else is a store error carrying the body.
type storeRequest struct {
	action     string
	method     string
	objectID   string
	query      url.Values
	body       any
	accept     []int
	notFound   bool
	expectJSON bool
}

func (c *StoreClient) Create(ctx context.Context, patch domain.LogPatch) (json.RawMessage, error) {
	return c.do(ctx, storeRequest{
		action:     "create log",
		method:     http.MethodPost,
		body:       patch,
		accept:     []int{http.StatusOK, http.StatusCreated},
		expectJSON: true,
	})
}

func (c *StoreClient) List(ctx context.Context, opt *domain.ListOptions) (json.RawMessage, error) {
	if opt == nil {
		return nil, domain.ErrNilQueryInput
	}
	return c.do(ctx, storeRequest{
		action:     "list logs",
		method:     http.MethodGet,
		query:      listQuery(opt),
		accept:     []int{http.StatusOK},
		expectJSON: true,
	})
}

func (c *StoreClient) Update(ctx context.Context, objectID string, patch domain.LogPatch) (json.RawMessage, error) {
	return c.do(ctx, storeRequest{
		action:     "update log",
		method:     http.MethodPut,
		objectID:   objectID,
		body:       patch,
		accept:     []int{http.StatusOK},
		notFound:   true,
		expectJSON: true,
	})
}

func (c *StoreClient) Delete(ctx context.Context, objectID string) error {
	_, err := c.do(ctx, storeRequest{
		action:   "delete log",
		method:   http.MethodDelete,
		objectID: objectID,
		accept:   []int{http.StatusOK, http.StatusNoContent},
		notFound: true,
	})
	return err
}

func listQuery(opt *domain.ListOptions) url.Values {
	query := url.Values{}
	if !opt.Filter.IsEmpty() {
		query.Set("where", opt.Filter.String())
	}
	if opt.PageSize > 0 {
		query.Set("pageSize", strconv.Itoa(opt.PageSize))
	}
	if opt.Offset > 0 {
		query.Set("offset", strconv.Itoa(opt.Offset))
	}
	if opt.SortBy != "" {
		query.Set("sortBy", string(opt.SortBy))
	}
	return query
}

func (c *StoreClient) do(ctx context.Context, req storeRequest) (json.RawMessage, error) {
	if c.breaker == nil {
		return c.forward(ctx, req)
	}
	out, err := c.breaker.Execute(func() (interface{}, error) {
		return c.forward(ctx, req)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		logger.Logger(ctx).Warn().Str("action", req.action).Msg("store circuit breaker rejected request")
		return nil, errs.NewHTTPStatusError(http.StatusServiceUnavailable, "store temporarily unavailable", err)
	}
	if err != nil {
		return nil, err
	}
	payload, _ := out.(json.RawMessage)
	return payload, nil
}

func (c *StoreClient) forward(ctx context.Context, req storeRequest) (json.RawMessage, error) {
	endpoint := c.tableURL
	if req.objectID != "" {
		endpoint += "/" + url.PathEscape(req.objectID)
	}
	if len(req.query) > 0 {
		endpoint += "?" + req.query.Encode()
	}

	var reqBody io.Reader
	if req.body != nil {
		jsonBody, err := json.Marshal(req.body)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: encode request", req.action)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint, reqBody)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: build request", req.action)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(headerApplicationID, c.applicationID)
	httpReq.Header.Set(headerSecretKey, c.apiKey.Value())

	start := time.Now()
	resp, err := c.Client.Do(httpReq)
	if err != nil {
		c.metrics.observe(req.action, "error", time.Since(start))
		return nil, errors.Wrapf(err, "%s: store request failed", req.action)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	c.metrics.observe(req.action, strconv.Itoa(resp.StatusCode), time.Since(start))
	if err != nil {
		return nil, errors.Wrapf(err, "%s: read store response", req.action)
	}

	logger.Logger(ctx).Debug().Msgf("store %s returned status %d (%d bytes)", req.action, resp.StatusCode, len(body))

	if slices.Contains(req.accept, resp.StatusCode) {
		if req.expectJSON && !json.Valid(body) {
			return nil, errors.Errorf("%s: store returned invalid JSON", req.action)
		}
		return json.RawMessage(body), nil
	}
	if req.notFound && resp.StatusCode == http.StatusNotFound {
		return nil, errors.WithStack(domain.ErrNotFound)
	}
	return nil, errs.NewStoreError(resp.StatusCode, "failed to "+req.action, string(body))
}
