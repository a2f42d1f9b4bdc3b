package rest

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	docs "github.com/loggateway/api/docs/gateway"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func (h *Handler) SetupRoutes(engine *echo.Echo) {
	engine.HTTPErrorHandler = h.HTTPErrorHandler
	engine.Use(echo.WrapMiddleware(LoggerMiddleware))

	engine.GET("/health", h.echoHandler(h.HealthCheck))
	engine.GET("/version", h.echoHandler(h.Version))
	engine.GET("/metrics", echo.WrapHandler(h.metricsHandler()))
	docs.SwaggerInfo.BasePath = "/"
	engine.GET("/swagger/*", echoSwagger.WrapHandler)

	logs := engine.Group("/logs")
	{
		logs.POST("", h.echoHandler(h.CreateLog))
		logs.GET("", h.echoHandler(h.ListLogs))
		logs.GET("/by-transaction", h.echoHandler(h.GetLogByTransaction))
		logs.PUT("/by-transaction", h.echoHandler(h.UpdateUserIDByTransaction))
		logs.GET("/search", h.echoHandler(h.SearchLogs))
		logs.DELETE("/delete", h.echoHandler(h.DeleteLogsByUserID))
		logs.PUT("/:log_id", h.echoHandlerWithParams(h.UpdateLog))
		logs.DELETE("/:log_id", h.echoHandlerWithParams(h.DeleteLog))
	}
}

func (h *Handler) metricsHandler() http.Handler {
	gatherer := h.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// HTTPErrorHandler renders errors raised by echo itself, such as unmatched
// routes, in the same JSON shape as handler errors.
func (h *Handler) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status := http.StatusInternalServerError
	message := "internal server error"
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		switch status {
		case http.StatusNotFound:
			message = "endpoint not found"
		case http.StatusMethodNotAllowed:
			message = "method not allowed"
		default:
			message = http.StatusText(status)
		}
	}
	h.ErrorResponse(c.Request().Context(), c.Response(), status, message, "")
}

func (h *Handler) echoHandler(handlerFunc func(w http.ResponseWriter, r *http.Request)) echo.HandlerFunc {
	return echo.WrapHandler(http.HandlerFunc(handlerFunc))
}

// echoHandlerWithParams wraps a handler function and injects path parameters into request context
func (h *Handler) echoHandlerWithParams(handlerFunc func(w http.ResponseWriter, r *http.Request)) echo.HandlerFunc {
	return func(c echo.Context) error {
		r := c.Request()
		for _, name := range c.ParamNames() {
			r = r.WithContext(context.WithValue(r.Context(), pathParamKey(name), c.Param(name)))
		}
		handlerFunc(c.Response().Writer, r)
		return nil
	}
}

type pathParamKey string

// GetPathParam retrieves a path parameter from request context
func (h *Handler) GetPathParam(r *http.Request, name string) string {
	if val, ok := r.Context().Value(pathParamKey(name)).(string); ok {
		return val
	}
	return ""
}
