package app

import (
	"github.com/loggateway/api/config"
	"github.com/loggateway/api/gateway/client"
	"github.com/loggateway/api/gateway/rest"
	"github.com/loggateway/api/gateway/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

func ConfigModule(configName string, configPath string) (fx.Option, error) {
	cfg, err := config.InitGatewayConfig(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		fx.Provide(func() config.GatewayConfig {
			return cfg
		}),
		fx.Provide(func(gatewayCfg config.GatewayConfig) config.ServerConfig {
			return gatewayCfg.Server
		}),
		fx.Provide(func(gatewayCfg config.GatewayConfig) config.LoggingConfig {
			return gatewayCfg.Logging
		}),
		fx.Provide(func(gatewayCfg config.GatewayConfig) config.StoreConfig {
			return gatewayCfg.Store
		}),
		fx.Provide(func(gatewayCfg config.GatewayConfig) config.BulkDeleteConfig {
			return gatewayCfg.BulkDelete
		}),
	), nil
}

// MetricsModule provides the registry shared by the store client and /metrics.
func MetricsModule() fx.Option {
	return fx.Options(
		fx.Provide(newMetricsRegistry),
		fx.Provide(func(reg *prometheus.Registry) prometheus.Registerer {
			return reg
		}),
		fx.Provide(func(reg *prometheus.Registry) prometheus.Gatherer {
			return reg
		}),
	)
}

func newMetricsRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// ClientModule creates an Fx module that provides the store client, return domain.Store
func ClientModule(configName string, configPath string) (fx.Option, error) {
	configModule, err := ConfigModule(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		configModule,
		MetricsModule(),
		fx.Provide(client.NewStoreClient),
	), nil
}

// ServiceModule creates an Fx module that provides the service layer, return domain.Service
func ServiceModule(configName string, configPath string) (fx.Option, error) {
	clientModule, err := ClientModule(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		clientModule,
		fx.Provide(service.NewService),
	), nil
}

// HandlerModule creates an Fx module that provides the REST handler, return *rest.Handler
func HandlerModule(configName string, configPath string) (fx.Option, error) {
	serviceModule, err := ServiceModule(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		serviceModule,
		fx.Provide(rest.NewHandler),
	), nil
}
