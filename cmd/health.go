package main

import (
	"context"
	"time"

	"serverbrowser/handlers"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// healthService is the service name reported next to the overall ("") status.
const healthService = "serverbrowser"

// newGRPCHealthServer creates a gRPC server that only serves the standard health protocol.
func newGRPCHealthServer() (*grpc.Server, *health.Server) {
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	setServingStatus(healthServer, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)
	return grpcServer, healthServer
}

// runHealthProber pings the store every interval and mirrors the result into healthServer.
// It blocks until ctx is done and then reports NOT_SERVING.
func runHealthProber(ctx context.Context, pinger handlers.Pinger, healthServer *health.Server, interval, timeout time.Duration, logger log.Logger) error {
	logger = log.WithPrefix(logger, "component", "HealthProber")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last *grpc_health_v1.HealthCheckResponse_ServingStatus
	probe := func() {
		pingCtx, cancel := context.WithTimeout(ctx, timeout)
		err := pinger.Ping(pingCtx)
		cancel()

		status := grpc_health_v1.HealthCheckResponse_SERVING
		if err != nil {
			status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
		}
		if last != nil && *last == status {
			return
		}
		last = &status

		if err != nil {
			level.Warn(logger).Log("msg", "Store unreachable", "err", err)
		} else {
			level.Info(logger).Log("msg", "Store reachable")
		}
		setServingStatus(healthServer, status)
	}

	probe()
	for {
		select {
		case <-ctx.Done():
			healthServer.Shutdown()
			return nil
		case <-ticker.C:
			probe()
		}
	}
}

func setServingStatus(healthServer *health.Server, status grpc_health_v1.HealthCheckResponse_ServingStatus) {
	healthServer.SetServingStatus("", status)
	healthServer.SetServingStatus(healthService, status)
}
