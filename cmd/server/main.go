package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ideav1 "github.com/dmehra2102/IdeaBoard/api/proto/v1"
	"github.com/dmehra2102/IdeaBoard/internal/app"
	"github.com/dmehra2102/IdeaBoard/internal/board"
	"github.com/dmehra2102/IdeaBoard/internal/domain"
	"github.com/dmehra2102/IdeaBoard/internal/infrastructure/cache"
	"github.com/dmehra2102/IdeaBoard/internal/infrastructure/config"
	"github.com/dmehra2102/IdeaBoard/internal/infrastructure/memory"
	infrapostgres "github.com/dmehra2102/IdeaBoard/internal/infrastructure/postgres"
	"github.com/dmehra2102/IdeaBoard/internal/interceptors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"
)

const (
	serviceName    = "idea-board"
	serviceVersion = "1.0.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "idea board: %v\n", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)
	if err := run(cfg, logger); err != nil {
		logger.Error("Idea board service exited", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

// run wires the board and serves it until SIGINT/SIGTERM or a listener
// failure. Deferred cleanups run in reverse order of acquisition.
func run(cfg *config.Config, logger *zap.Logger) error {
	logger.Info("Starting idea board service",
		zap.String("version", serviceVersion),
		zap.String("environment", cfg.Environment),
		zap.String("storage", cfg.StorageBackend),
		zap.Bool("strict_density", cfg.StrictDensity),
	)
	for _, warning := range cfg.Warnings() {
		logger.Warn(warning)
	}

	if cfg.EnableTracing {
		shutdownTracer, err := initTracer(cfg.JaegerEndpoint)
		if err != nil {
			return fmt.Errorf("init tracer: %w", err)
		}
		defer func() {
			if err := shutdownTracer(context.Background()); err != nil {
				logger.Warn("Tracer shutdown failed", zap.Error(err))
			}
		}()
	}

	repo, closeRepo, err := initRepository(cfg, logger)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer closeRepo()

	opts := board.Options{StrictDensity: cfg.StrictDensity}
	if cfg.CacheEnabled {
		listCache, err := cache.NewListCache(cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer listCache.Close()
		opts.Cache = listCache
	}

	store := board.NewStore(repo, logger, opts)

	grpcServer, err := initGRPCServer(cfg, logger)
	if err != nil {
		return err
	}
	ideav1.RegisterIdeaServiceServer(grpcServer, app.NewIdeaServiceServer(store, logger))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(ideav1.IdeaService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	if cfg.EnableReflection || !cfg.IsProduction() {
		reflection.Register(grpcServer)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("listen on :%d: %w", cfg.Port, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var metricsServer *http.Server
	if cfg.EnableMetrics {
		metricsServer = startMetricsServer(cfg.MetricsPort, logger)
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Idea board listening", zap.Int("port", cfg.Port))
		serveErr <- grpcServer.Serve(lis)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("serve grpc: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Signal received, draining in-flight board operations")
	healthServer.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Metrics server shutdown failed", zap.Error(err))
		}
	}

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		logger.Info("Idea board stopped")
	case <-shutdownCtx.Done():
		logger.Warn("Drain timed out, closing open connections", zap.Duration("timeout", cfg.ShutdownTimeout))
		grpcServer.Stop()
	}
	return nil
}

func initLogger(cfg *config.Config) *zap.Logger {
	var zcfg zap.Config
	if cfg.IsProduction() || cfg.LogFormat == "json" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}

	logger, err := zcfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "idea board: build logger: %v\n", err)
		os.Exit(1)
	}

	return logger.With(zap.String("service", serviceName))
}

func initTracer(endpoint string) (func(context.Context) error, error) {
	exporter, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create otlp exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		)),
	)

	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

func initRepository(cfg *config.Config, logger *zap.Logger) (domain.Repository, func(), error) {
	if cfg.StorageBackend == config.BackendMemory {
		logger.Warn("Using in-memory storage; ideas are lost on restart")
		return memory.NewRepository(), func() {}, nil
	}

	db, err := infrapostgres.Open(context.Background(), cfg.GetDatabaseConfig())
	if err != nil {
		return nil, nil, err
	}

	if err := infrapostgres.Migrate(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	closeDB := func() {
		if err := db.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}
	return infrapostgres.NewPostgresRepository(db), closeDB, nil
}

func startMetricsServer(port int, logger *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Metrics server starting", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server failed", zap.Error(err))
		}
	}()

	return srv
}

// maxMessageSize bounds a ListIdeas response; a board holds titles and short
// descriptions, so 4 MiB leaves ample room.
const maxMessageSize = 4 << 20

func initGRPCServer(cfg *config.Config, logger *zap.Logger) (*grpc.Server, error) {
	opts := []grpc.ServerOption{
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle:     15 * time.Minute,
			MaxConnectionAge:      30 * time.Minute,
			MaxConnectionAgeGrace: 5 * time.Minute,
			Time:                  5 * time.Minute,
			Timeout:               time.Minute,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             time.Minute,
			PermitWithoutStream: true,
		}),
		grpc.MaxRecvMsgSize(maxMessageSize),
		grpc.MaxSendMsgSize(maxMessageSize),
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		// Recovery sits inside Logging so a recovered panic is still logged
		// as a failed request with its request ID.
		grpc.ChainUnaryInterceptor(
			interceptors.LoggingInterceptor(logger),
			interceptors.RecoveryInterceptor(logger),
			interceptors.MetricsInterceptor(),
			interceptors.TimeoutInterceptor(cfg.RequestTimeout),
			interceptors.AuthInterceptor(cfg.JWTSecret),
		),
	}

	if cfg.TLSEnabled {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			return nil, fmt.Errorf("load TLS credentials: %w", err)
		}
		opts = append(opts, grpc.Creds(creds))
	}

	return grpc.NewServer(opts...), nil
}
