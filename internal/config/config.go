// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import "time"

// Config holds all application configuration loaded from environment variables.
// This struct uses github.com/caarlos0/env for automatic environment variable parsing.
//
// Use struct tags to define:
// - `env:"VAR_NAME"` - the environment variable name
// - `envDefault:"value"` - set a default value
//
// Range checks live in Validate() in loader.go.
type Config struct {
	// ============================================================
	// Server configuration
	// ============================================================
	GRPCPort        int    `env:"GRPC_PORT" envDefault:"6565"`
	MetricsPort     int    `env:"METRICS_PORT" envDefault:"8080"`
	MetricsEndpoint string `env:"METRICS_ENDPOINT" envDefault:"/metrics"`
	Environment     string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName     string `env:"SERVICE_NAME" envDefault:"MissionAnalytics"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`

	// ============================================================
	// Redis configuration
	// ============================================================
	RedisHost         string        `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort         string        `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword     string        `env:"REDIS_PASSWORD"`
	RedisDB           int           `env:"REDIS_DB" envDefault:"0"`
	RedisMaxRetries   int           `env:"REDIS_MAX_RETRIES" envDefault:"5"`
	RedisRetryDelayMs int           `env:"REDIS_RETRY_DELAY_MS" envDefault:"1000"`
	SnapshotTTL       time.Duration `env:"SNAPSHOT_TTL" envDefault:"720h"`

	// ============================================================
	// Record store circuit breaker
	// ============================================================
	BreakerFailureThreshold uint32        `env:"BREAKER_FAILURE_THRESHOLD" envDefault:"5"`
	BreakerTimeout          time.Duration `env:"BREAKER_TIMEOUT" envDefault:"30s"`
	BreakerInterval         time.Duration `env:"BREAKER_INTERVAL" envDefault:"1m"`

	// ============================================================
	// Analytics configuration
	// ============================================================
	// DashboardConfigPath points at the YAML report and dashboard definitions.
	DashboardConfigPath string `env:"DASHBOARD_CONFIG_PATH" envDefault:"config/dashboards.yaml"`
	// Timezone is the IANA zone whose calendar days bucket activity.
	Timezone string `env:"ANALYTICS_TIMEZONE" envDefault:"UTC"`

	// ============================================================
	// Telemetry configuration
	// ============================================================
	OtelEnabled     bool   `env:"OTEL_ENABLED" envDefault:"true"`
	OtelServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"mission-analytics"`
}
