package config

import (
	"path/filepath"
	"runtime"
	"time"
)

// GatewayConfig is the full configuration of the log gateway.
type GatewayConfig struct {
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Store      StoreConfig      `mapstructure:"store" validate:"required"`
	BulkDelete BulkDeleteConfig `mapstructure:"bulk_delete"`
}

type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type LoggingConfig struct {
	Level   string `mapstructure:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Console bool   `mapstructure:"console"`
}

// StoreConfig describes the hosted data table the gateway forwards to.
type StoreConfig struct {
	BaseURL        string               `mapstructure:"base_url" validate:"required,url"`
	ApplicationID  string               `mapstructure:"application_id" validate:"required"`
	APIKey         SecretValue          `mapstructure:"api_key" validate:"required"`
	Table          string               `mapstructure:"table" validate:"required"`
	Timeout        time.Duration        `mapstructure:"timeout" validate:"gte=0"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type CircuitBreakerConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	MaxFailures uint32        `mapstructure:"max_failures" validate:"required_if=Enabled true"`
	OpenTimeout time.Duration `mapstructure:"open_timeout"`
}

type BulkDeleteConfig struct {
	// Concurrency caps in-flight deletes; 1 deletes strictly one by one.
	Concurrency int `mapstructure:"concurrency" validate:"min=1"`
	PageSize    int `mapstructure:"page_size" validate:"min=1,max=100"`
}

// GetAbsPath returns the absolute path by joining the given paths with the project root directory
func GetAbsPath(paths ...string) string {
	_, filePath, _, _ := runtime.Caller(0)
	basePath := filepath.Dir(filePath)
	rootPath := filepath.Join(basePath, "..")
	return filepath.Join(rootPath, filepath.Join(paths...))
}
