package client

import (
	"context"
	"net/http"

	"github.com/loggateway/api/config"
	"github.com/loggateway/api/gateway/domain"
	"github.com/loggateway/api/gateway/errs"
	"github.com/loggateway/api/pkg/logger"
	"github.com/pkg/errors"
	"github.com/sony/gobreaker"
)

func newBreaker(name string, cfg config.CircuitBreakerConfig) *gobreaker.CircuitBreaker {
	maxFailures := cfg.MaxFailures
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "store:" + name,
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: isBreakerSuccess,
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Logger(context.Background()).Warn().Msgf("circuit breaker %s: %s -> %s", name, from, to)
		},
	})
}

// isBreakerSuccess counts only transport failures and 5xx answers against
// the store. Client mistakes and missing records say nothing about its
// health.
func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, context.Canceled) {
		return true
	}
	if httpErr, ok := errs.IsHTTPStatusError(err); ok {
		return httpErr.StatusCode < http.StatusInternalServerError
	}
	return false
}

