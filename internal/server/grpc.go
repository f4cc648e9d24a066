// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/AccelByte/extend-mission-analytics/pkg/common"
	"github.com/AccelByte/extend-mission-analytics/pkg/handler"
	"github.com/AccelByte/extend-mission-analytics/pkg/service"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const healthCheckInterval = 15 * time.Second

// GRPCServer manages the gRPC server lifecycle.
type GRPCServer struct {
	server  *grpc.Server
	health  *health.Server
	port    int
	handler *handler.Analytics
	checker *service.HealthChecker
	stop    context.CancelFunc
}

// NewGRPCServer creates a new gRPC server instance.
// checker may be nil, in which case the service always reports SERVING.
func NewGRPCServer(port int, analyticsHandler *handler.Analytics, checker *service.HealthChecker) *GRPCServer {
	return &GRPCServer{
		port:    port,
		handler: analyticsHandler,
		checker: checker,
	}
}

// Setup configures the gRPC server with interceptors and registers handlers.
func (s *GRPCServer) Setup() error {
	unaryInterceptors := []grpc.UnaryServerInterceptor{
		logging.UnaryServerInterceptor(common.InterceptorLogger(logrus.StandardLogger())),
	}
	streamInterceptors := []grpc.StreamServerInterceptor{
		logging.StreamServerInterceptor(common.InterceptorLogger(logrus.StandardLogger())),
	}

	// Create server with OpenTelemetry instrumentation
	s.server = grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(unaryInterceptors...),
		grpc.ChainStreamInterceptor(streamInterceptors...),
	)

	handler.RegisterAnalyticsServiceServer(s.server, s.handler)
	logrus.Infof("registered %s", handler.ServiceName)

	// - Reflection: allows tools like grpcurl to list services
	// - Health check: for Kubernetes liveness/readiness probes
	reflection.Register(s.server)
	s.health = health.NewServer()
	s.health.SetServingStatus(handler.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(s.server, s.health)

	logrus.Infof("gRPC reflection and health check enabled")

	return nil
}

// Start begins listening and serving gRPC requests.
func (s *GRPCServer) Start(ctx context.Context) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", s.port, err)
	}

	if s.checker != nil {
		watchCtx, cancel := context.WithCancel(ctx)
		s.stop = cancel
		go s.watchHealth(watchCtx, healthCheckInterval)
	}

	go func() {
		logrus.Infof("gRPC server listening on port %d", s.port)
		if err := s.server.Serve(lis); err != nil {
			logrus.Fatalf("gRPC server failed: %v", err)
		}
	}()

	return nil
}

// watchHealth mirrors record store reachability into the gRPC health service.
func (s *GRPCServer) watchHealth(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		s.updateHealth(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *GRPCServer) updateHealth(ctx context.Context) {
	status := grpc_health_v1.HealthCheckResponse_SERVING
	if !s.checker.IsHealthy(ctx) {
		status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus(handler.ServiceName, status)
	s.health.SetServingStatus("", status)
}

// Shutdown gracefully stops the gRPC server.
func (s *GRPCServer) Shutdown(ctx context.Context) error {
	logrus.Info("shutting down gRPC server...")
	if s.stop != nil {
		s.stop()
	}
	s.health.Shutdown()
	s.server.GracefulStop()
	logrus.Info("gRPC server stopped")
	return nil
}
