package app

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/loggateway/api/config"
	"github.com/loggateway/api/gateway/rest"
	"github.com/loggateway/api/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultServerHost = ":8080"

func NewRestApp(configName string, configDirPath string) (*fx.App, error) {
	handlerModule, err := HandlerModule(configName, configDirPath)
	if err != nil {
		return nil, err
	}

	app := fx.New(
		handlerModule,
		fx.Invoke(InitLogging),
		fx.Invoke(StartRestApp),
	)
	return app, nil
}

func InitLogging(cfg config.LoggingConfig) {
	logger.InitLogger(cfg.Level, cfg.Console)
}

// NewEngine builds the echo engine with all gateway routes and the server
// timeouts from cfg.
func NewEngine(cfg config.ServerConfig, handler *rest.Handler) *echo.Echo {
	engine := echo.New()
	engine.HideBanner = true
	engine.HidePort = true
	engine.Server.ReadTimeout = cfg.ReadTimeout
	engine.Server.WriteTimeout = cfg.WriteTimeout
	engine.Server.IdleTimeout = cfg.IdleTimeout
	handler.SetupRoutes(engine)
	return engine
}

func StartRestApp(lc fx.Lifecycle, cfg config.ServerConfig, handler *rest.Handler) error {
	engine := NewEngine(cfg, handler)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			serverHost := cfg.Host
			if serverHost == "" {
				serverHost = defaultServerHost
			}
			go func() {
				logger.Logger(ctx).Info().Msgf("starting rest server on %s", serverHost)
				if err := engine.Start(serverHost); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Logger(ctx).Fatal().Err(err).Msgf("start rest server fail on %s", serverHost)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Logger(ctx).Info().Msg("shutting down rest server")
			return engine.Shutdown(ctx)
		},
	})

	return nil
}
