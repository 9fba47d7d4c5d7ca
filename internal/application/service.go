package application

import (
	"log/slog"
	"time"

	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/engine"
	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/ports"
)

// Service orchestrates one analysis: validate, try the remote backend within
// its timeout, fall back to the local heuristic engine, then fan out the
// verdict to cache, audit log and event stream on a best-effort basis.
//
// Inference, Cache, Audit and Events are all optional; a nil dependency
// disables that stage. The heuristic engine is the only hard requirement,
// which is what makes Analyze total for well-formed input.
type Service struct {
	cfg       Config
	engine    *engine.Engine
	inference ports.InferenceClient
	cache     ports.Cache
	audit     ports.AnalysisRepository
	events    ports.EventPublisher
	logger    *slog.Logger
	nowFn     func() time.Time
}

type Dependencies struct {
	Config    Config
	Engine    *engine.Engine
	Inference ports.InferenceClient
	Cache     ports.Cache
	Audit     ports.AnalysisRepository
	Events    ports.EventPublisher
	Logger    *slog.Logger
}

func NewService(deps Dependencies) *Service {
	cfg := deps.Config
	if cfg.ServiceName == "" {
		cfg.ServiceName = "M12-Fraud-Detection-Engine"
	}
	if cfg.InferTimeout <= 0 {
		cfg.InferTimeout = 5 * time.Second
	}
	if cfg.VerdictCacheTTL <= 0 {
		cfg.VerdictCacheTTL = 5 * time.Minute
	}
	if cfg.AnalyzedEventType == "" {
		cfg.AnalyzedEventType = "listing.analyzed"
	}
	eng := deps.Engine
	if eng == nil {
		eng = engine.Default()
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:       cfg,
		engine:    eng,
		inference: deps.Inference,
		cache:     deps.Cache,
		audit:     deps.Audit,
		events:    deps.Events,
		logger:    logger,
		nowFn:     func() time.Time { return time.Now().UTC() },
	}
}
