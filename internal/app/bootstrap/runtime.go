package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/adapters/cache"
	eventadapter "github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/adapters/events"
	grpcadapter "github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/adapters/grpc"
	httpadapter "github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/adapters/http"
	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/adapters/inference"
	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/adapters/postgres"
	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/application"
	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/ports"
)

type Runtime struct {
	cfg        Config
	logger     *slog.Logger
	httpServer *http.Server
	grpcServer *grpcadapter.HealthServer
	cleanupFn  func(context.Context)
}

// NewRuntime wires the service from config. Every external dependency is
// optional: a missing postgres, redis, kafka, or inference URL disables that
// stage rather than failing startup, so a bare binary still scores listings.
func NewRuntime(ctx context.Context, configPath string) (*Runtime, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})).With("service", cfg.ServiceID)
	slog.SetDefault(logger)

	var closers []io.Closer
	cleanup := func(context.Context) {
		for _, closer := range closers {
			_ = closer.Close()
		}
	}

	var audit ports.AnalysisRepository
	if cfg.DatabaseURL != "" {
		db, dbErr := postgres.Connect(ctx, cfg.DatabaseURL, cfg.MaxDBConns)
		if dbErr != nil {
			return nil, dbErr
		}
		sqlDB, sqlErr := db.DB()
		if sqlErr != nil {
			return nil, sqlErr
		}
		closers = append(closers, sqlDB)
		if migErr := postgres.RunMigrations(ctx, db); migErr != nil {
			cleanup(ctx)
			return nil, migErr
		}
		audit = postgres.NewRepositories(db).Analyses
	} else {
		logger.InfoContext(ctx, "audit log disabled, no postgres url configured")
	}

	var verdictCache ports.Cache
	if cfg.RedisURL != "" {
		redisClient, redisErr := cache.Connect(ctx, cfg.RedisURL)
		if redisErr != nil {
			cleanup(ctx)
			return nil, redisErr
		}
		closers = append(closers, redisClient)
		verdictCache = cache.NewRedisCache(redisClient)
	} else {
		logger.InfoContext(ctx, "verdict cache disabled, no redis url configured")
	}

	var publisher ports.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, pubErr := eventadapter.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopicAnalyzed)
		if pubErr != nil {
			logger.WarnContext(ctx, "kafka publisher disabled, using logging publisher", "error", pubErr)
			publisher = eventadapter.NewLoggingPublisher(logger)
		} else {
			publisher = kafkaPublisher
			closers = append(closers, kafkaPublisher)
		}
	} else {
		publisher = eventadapter.NewLoggingPublisher(logger)
	}

	var inferenceClient ports.InferenceClient
	if cfg.InferenceURL != "" {
		inferenceClient = inference.NewClient(cfg.InferenceURL, cfg.InferTimeout)
	} else {
		logger.InfoContext(ctx, "remote inference disabled, scoring with local heuristics only")
	}

	service := application.NewService(application.Dependencies{
		Config: application.Config{
			ServiceName:     cfg.ServiceID,
			InferTimeout:    cfg.InferTimeout,
			VerdictCacheTTL: cfg.VerdictCacheTTL,
		},
		Inference: inferenceClient,
		Cache:     verdictCache,
		Audit:     audit,
		Events:    publisher,
		Logger:    logger,
	})

	handler := httpadapter.NewHandler(service)
	router := httpadapter.NewRouter(handler)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Runtime{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
		grpcServer: grpcadapter.NewHealthServer(),
		cleanupFn:  cleanup,
	}, nil
}

func (r *Runtime) RunAPI(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	errCh := make(chan error, 2)

	go func() {
		if err := r.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	go func() {
		if err := r.grpcServer.Serve(r.cfg.GRPCPort); err != nil {
			errCh <- err
		}
	}()
	r.logger.InfoContext(ctx, "service started", "http_port", r.cfg.HTTPPort, "grpc_port", r.cfg.GRPCPort)

	select {
	case <-ctx.Done():
	case err := <-errCh:
		r.logger.ErrorContext(ctx, "runtime failure", "error", err)
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = r.httpServer.Shutdown(shutdownCtx)
	r.grpcServer.GracefulStop()
	r.cleanupFn(shutdownCtx)
	return nil
}
