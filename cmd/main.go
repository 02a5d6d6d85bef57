package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"serverbrowser/api"
	"serverbrowser/handlers"
	"serverbrowser/interfaces"
	"serverbrowser/metrics"
	"serverbrowser/registry"
	"serverbrowser/repository"
	"serverbrowser/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	logger = level.NewFilter(logger, config.LevelFilter())

	level.Info(logger).Log("msg", "Starting ServerBrowser service")
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"service_port_grpc", config.GRPCPort,
		"store_backend", config.StoreBackend,
		"redis_addr", config.Redis.Addr,
		"server_ttl", config.ServerTTL,
		"store_timeout", config.StoreTimeout,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Metrics
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(promRegistry)

	// Store
	backend, err := openStore(ctx, config, m, logger)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to open store", "err", err)
		os.Exit(1)
	}

	// Registry
	var serverRegistry interfaces.ServerRegistry
	{
		repo := repository.NewServerRepository(backend.store, logger, repository.WithTTL(config.ServerTTL))
		serverRegistry = registry.NewService(repo, m, logger)
	}

	// Create HTTPServer
	var httpServer handlers.ServerInterface
	{
		httpServer = handlers.NewHTTPServer(serverRegistry, backend.store, config.ServerTTL, config.StoreTimeout, logger)
	}

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		validator, err := handlers.NewRequestValidator(api.Spec)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to load OpenAPI document", "err", err)
			os.Exit(1)
		}

		e = echo.New()
		e.HideBanner = true
		e.HidePort = true
		service.RegisterErrorHandler(e, logger)
		e.Use(middleware.Recover())
		e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
		e.Use(validator)
		handlers.RegisterHandlers(e, httpServer)
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{Registry: promRegistry})))
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	if backend.run != nil {
		g.Go(func() error {
			return backend.run(gctx)
		})
	}

	var grpcServer *grpc.Server
	if config.GRPCPort > 0 {
		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", config.GRPCPort))
		if err != nil {
			level.Error(logger).Log("msg", "Failed to listen", "err", err)
			os.Exit(1)
		}

		var healthServer *health.Server
		grpcServer, healthServer = newGRPCHealthServer()
		g.Go(func() error {
			level.Info(logger).Log("msg", "Starting gRPC health server", "addr", lis.Addr())
			if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				return fmt.Errorf("gRPC server error: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			return runHealthProber(gctx, backend.store, healthServer, time.Second, config.StoreTimeout, logger)
		})
	}

	// Shut everything down once a signal arrives or any component fails.
	g.Go(func() error {
		<-gctx.Done()
		level.Info(logger).Log("msg", "Shutting down server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		err := e.Shutdown(shutdownCtx)
		if grpcServer != nil {
			grpcServer.GracefulStop()
		}
		return err
	})

	err = g.Wait()
	err = multierr.Append(err, backend.close())
	if err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
		os.Exit(1)
	}

	level.Info(logger).Log("msg", "Server stopped")
}
