// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package app

import (
	"context"
	"fmt"
	"time"

	"github.com/AccelByte/extend-mission-analytics/internal/bootstrap"
	"github.com/AccelByte/extend-mission-analytics/internal/config"
	"github.com/AccelByte/extend-mission-analytics/internal/server"
	"github.com/AccelByte/extend-mission-analytics/pkg/handler"
	"github.com/AccelByte/extend-mission-analytics/pkg/service"
	"github.com/cenkalti/backoff/v4"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// App holds all application dependencies and manages the application lifecycle.
type App struct {
	cfg               *config.Config
	grpcServer        *server.GRPCServer
	metricsServer     *server.MetricsServer
	redisClient       *redis.Client
	shutdownTelemetry func(context.Context) error
}

// New creates and initializes a new application instance.
//
// ============================================================
// DEVELOPER: Application initialization order
// ============================================================
// Components are initialized in dependency order:
// 1. Redis (snapshot storage)
// 2. Record store (Redis store behind a circuit breaker)
// 3. Reports and dashboards (YAML configuration)
// 4. Servers (gRPC, metrics)
// 5. Telemetry (OpenTelemetry tracing)
// ============================================================
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logrus.Info("initializing application...")

	app := &App{cfg: cfg}

	location, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	// ============================================================
	// Step 1: Initialize Redis
	// ============================================================
	if err := app.initRedis(ctx); err != nil {
		return nil, fmt.Errorf("failed to init Redis: %w", err)
	}

	// ============================================================
	// Step 2: Initialize the record store
	// ============================================================
	redisStore := service.NewRedisRecordStore(app.redisClient, service.RedisRecordStoreConfig{
		TTL: cfg.SnapshotTTL,
	})
	breakerCfg := service.DefaultCircuitBreakerConfig()
	breakerCfg.FailureThreshold = cfg.BreakerFailureThreshold
	breakerCfg.Timeout = cfg.BreakerTimeout
	breakerCfg.Interval = cfg.BreakerInterval
	store := service.NewBreakerRecordStore(redisStore, breakerCfg)

	// ============================================================
	// Step 3: Bootstrap reports and dashboards
	// ============================================================
	manager, err := bootstrap.InitDashboardManager(cfg.DashboardConfigPath, store)
	if err != nil {
		return nil, fmt.Errorf("failed to init dashboards: %w", err)
	}

	// ============================================================
	// Step 4: Setup servers
	// ============================================================
	analyticsHandler := handler.NewAnalytics(store, manager, location)
	app.grpcServer = server.NewGRPCServer(cfg.GRPCPort, analyticsHandler, service.NewHealthChecker(app.redisClient))
	if err := app.grpcServer.Setup(); err != nil {
		return nil, fmt.Errorf("failed to setup gRPC server: %w", err)
	}

	app.metricsServer = server.NewMetricsServer(cfg.MetricsPort, cfg.MetricsEndpoint)
	if err := app.metricsServer.Setup(); err != nil {
		return nil, fmt.Errorf("failed to setup metrics server: %w", err)
	}

	// ============================================================
	// Step 5: Setup telemetry
	// ============================================================
	if cfg.OtelEnabled {
		shutdownTelemetry, err := server.SetupTelemetry(ctx, cfg.OtelServiceName, cfg.Environment, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to setup telemetry: %w", err)
		}
		app.shutdownTelemetry = shutdownTelemetry
	} else {
		logrus.Info("telemetry disabled")
	}

	logrus.Infof("application initialized successfully (timezone %s)", location)

	return app, nil
}

// initRedis initializes the Redis client, retrying the first ping with
// exponential backoff.
func (a *App) initRedis(ctx context.Context) error {
	client := redis.NewClient(&redis.Options{
		Addr:         a.cfg.RedisAddr(),
		Password:     a.cfg.RedisPassword,
		DB:           a.cfg.RedisDB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Duration(a.cfg.RedisRetryDelayMs) * time.Millisecond
	retry := backoff.WithContext(backoff.WithMaxRetries(b, uint64(a.cfg.RedisMaxRetries)), ctx)

	err := backoff.Retry(
		func() error {
			_, err := client.Ping(ctx).Result()
			if err != nil {
				logrus.Warnf("Redis connection failed: %v, retrying...", err)
				return err
			}
			return nil
		},
		retry,
	)

	if err != nil {
		_ = client.Close()
		return err
	}

	a.redisClient = client
	logrus.Infof("Redis client initialized (%s)", a.cfg.RedisAddr())
	return nil
}
