package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const defaultConfigName = "gateway_config"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("store.base_url", "https://api.backendless.com")
	v.SetDefault("store.application_id", "")
	v.SetDefault("store.api_key", "")
	v.SetDefault("store.table", "logs")
	v.SetDefault("store.timeout", "15s")
	v.SetDefault("store.circuit_breaker.enabled", false)
	v.SetDefault("store.circuit_breaker.max_failures", 5)
	v.SetDefault("store.circuit_breaker.open_timeout", "30s")
	v.SetDefault("bulk_delete.concurrency", 4)
	v.SetDefault("bulk_delete.page_size", 100)
}

// InitGatewayConfig reads the gateway configuration from a TOML file and
// GATEWAY_* environment variables. A missing file is not an error; the
// defaults plus the environment must then form a valid configuration.
func InitGatewayConfig(configName string, configPath string) (GatewayConfig, error) {
	var cfg GatewayConfig

	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	if configName == "" {
		configName = defaultConfigName
	}
	v.AddConfigPath(GetAbsPath("config"))
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.SetEnvPrefix("GATEWAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, errors.Wrap(err, "read config")
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "unmarshal config")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return cfg, errors.Wrap(err, "validate config")
	}
	return cfg, nil
}
