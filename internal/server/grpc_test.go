// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package server

import (
	"context"
	"testing"

	"github.com/AccelByte/extend-mission-analytics/pkg/dashboard"
	"github.com/AccelByte/extend-mission-analytics/pkg/handler"
	"github.com/AccelByte/extend-mission-analytics/pkg/report"
	"github.com/AccelByte/extend-mission-analytics/pkg/service"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"google.golang.org/grpc/health/grpc_health_v1"
)

func TestGRPCServer_HealthFollowsRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := service.NewRedisRecordStore(client, service.RedisRecordStoreConfig{})
	h := handler.NewAnalytics(store, dashboard.NewManager(store, report.NewRegistry(), nil), nil)

	s := NewGRPCServer(0, h, service.NewHealthChecker(client))
	if err := s.Setup(); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	ctx := context.Background()

	check := func() grpc_health_v1.HealthCheckResponse_ServingStatus {
		resp, err := s.health.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: handler.ServiceName})
		if err != nil {
			t.Fatalf("health check error = %v", err)
		}
		return resp.GetStatus()
	}

	s.updateHealth(ctx)
	if got := check(); got != grpc_health_v1.HealthCheckResponse_SERVING {
		t.Errorf("Expected SERVING, got %s", got)
	}

	mr.SetError("LOADING")
	s.updateHealth(ctx)
	if got := check(); got != grpc_health_v1.HealthCheckResponse_NOT_SERVING {
		t.Errorf("Expected NOT_SERVING, got %s", got)
	}
}
