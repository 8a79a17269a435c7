package server

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"subscription-tracker/internal/config"
	"subscription-tracker/internal/database"
	"subscription-tracker/internal/handlers"
	"subscription-tracker/internal/middleware"
	"subscription-tracker/internal/repositories"
	"subscription-tracker/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	rateLimiterIdle    = 3 * time.Minute
	rateLimiterSweep   = time.Minute
	auditPruneInterval = 6 * time.Hour
	requestBodyLimit   = "64K"
	defaultOpenAPIPath = "docs/swagger.json"
)

// Options carries the pieces callers may swap, mainly for tests.
type Options struct {
	Logger     *slog.Logger
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
	// OpenAPIPath is the swag output served at /docs/swagger.json
	OpenAPIPath string
}

// Server owns the echo instance and the background jobs that keep its
// in-memory state bounded.
type Server struct {
	cfg     *config.Config
	echo    *echo.Echo
	logger  *slog.Logger
	limiter *middleware.RateLimiter
	local   *repositories.MemoryStateDocumentRepository
	audit   services.AuditServiceInterface
}

// New wires repositories, services and handlers and registers every route
func New(cfg *config.Config, db *database.DB, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	registerer := opts.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	openAPIPath := opts.OpenAPIPath
	if openAPIPath == "" {
		openAPIPath = defaultOpenAPIPath
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db.DB)
	credentialRepo := repositories.NewGoogleCredentialRepository(db.DB)
	remoteState := repositories.NewStateDocumentRepository(db.DB)
	localState := repositories.NewMemoryStateDocumentRepository(cfg.Security.AnonymousStateTTL)
	auditRepo := repositories.NewAuditLogRepository(db.DB)
	conciergeRepo := repositories.NewConciergeRequestRepository(db.DB)

	// Services
	metrics := services.NewPrometheusMetrics(registerer)
	activity := services.NewActivityLogger(logger)
	auditService := services.NewAuditService(auditRepo, logger)
	tokenService := services.NewTokenService(&cfg.JWT)
	cipher := services.NewTokenCipher(cfg.Security.TokenEncryptionKey)
	googleAuth := services.NewGoogleAuthService(&cfg.Google, userRepo, credentialRepo, cipher, tokenService, auditService, metrics, logger)
	directory := services.NewDirectoryService(&cfg.Directory, metrics, activity)
	store := services.NewStateStore(remoteState, localState, metrics, activity, logger)
	subscriptions := services.NewSubscriptionService(
		&cfg.Directory, store, directory,
		services.NewDebouncer(cfg.Security.CancelOpenDebounce),
		auditService, metrics, activity, logger,
	)
	mailFactory := services.NewGmailClientFactory(&cfg.Google, googleAuth)
	scans := services.NewScanService(&cfg.Google, mailFactory, services.NewVendorDetector(services.DefaultVendorRules), store, auditService, metrics, activity)
	breaker := services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig("gemini"), metrics)
	generator := services.NewGeminiClient(&cfg.Gemini, breaker, metrics, logger)
	generation := services.NewGenerationService(
		generator, subscriptions,
		services.NewDebouncer(cfg.Security.GuideDebounce),
		auditService, metrics, activity,
	)
	concierge := services.NewConciergeService(conciergeRepo, auditService, metrics)

	// Handlers
	healthHandler := handlers.NewHealthCheckHandler(db.DB, directory)
	docsHandler := handlers.NewDocsHandler(openAPIPath)
	authHandler := handlers.NewAuthHandler(googleAuth, cfg)
	directoryHandler := handlers.NewDirectoryHandler(directory)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptions)
	scanHandler := handlers.NewScanHandler(scans)
	generationHandler := handlers.NewGenerationHandler(generation)
	conciergeHandler := handlers.NewConciergeHandler(concierge)
	activityHandler := handlers.NewActivityHandler(auditService)

	limiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst, rateLimiterIdle)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "If-None-Match", middleware.ClientIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader, "ETag"},
	}))
	e.Use(echomw.BodyLimit(requestBodyLimit))
	e.Use(limiter.Middleware())

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/docs", docsHandler.ServeReference)
	e.GET("/docs/swagger.json", docsHandler.ServeOpenAPI)

	oauth := e.Group("/auth/google")
	oauth.GET("/login", authHandler.GoogleLogin)
	oauth.GET("/callback", authHandler.GoogleCallback)

	requireAuth := middleware.RequireAuth(tokenService)
	identifyOwner := middleware.IdentifyOwner(tokenService)

	api := e.Group("/api/v1")
	api.GET("/me", authHandler.Me, requireAuth)
	api.DELETE("/me/google", authHandler.DisconnectGoogle, requireAuth)
	api.GET("/directory", directoryHandler.GetDirectory)
	api.GET("/directory/search", directoryHandler.SearchDirectory)
	api.POST("/scan", scanHandler.Scan, requireAuth)
	api.POST("/concierge-requests", conciergeHandler.CreateRequest, middleware.OptionalAuth(tokenService))

	api.GET("/subscriptions", subscriptionHandler.GetSubscriptions, identifyOwner)
	api.POST("/subscriptions/state", subscriptionHandler.ApplyStateCommand, identifyOwner)
	api.POST("/subscriptions/custom", subscriptionHandler.AddCustom, identifyOwner)
	api.POST("/subscriptions/directory-picks", subscriptionHandler.PickFromDirectory, identifyOwner)
	api.PUT("/subscriptions/:id/price", subscriptionHandler.EditPrice, identifyOwner)
	api.DELETE("/subscriptions/:id/pending", subscriptionHandler.DiscardPending, identifyOwner)
	api.POST("/subscriptions/:id/cancel", subscriptionHandler.Cancel, identifyOwner)
	api.POST("/subscriptions/:id/remove", subscriptionHandler.Remove, identifyOwner)
	api.POST("/subscriptions/:id/restore", subscriptionHandler.Restore, identifyOwner)
	api.POST("/subscriptions/:id/open-cancel", subscriptionHandler.OpenCancel, identifyOwner)
	api.POST("/subscriptions/:id/guide", generationHandler.Guide, identifyOwner)
	api.POST("/insights", generationHandler.Insights, identifyOwner)
	api.POST("/generate", generationHandler.Generate, identifyOwner)
	api.GET("/activity", activityHandler.GetActivity, identifyOwner)

	return &Server{
		cfg:     cfg,
		echo:    e,
		logger:  logger,
		limiter: limiter,
		local:   localState,
		audit:   auditService,
	}
}

// Handler exposes the router, mainly for httptest
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves until the listener fails or Shutdown is called
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(s.cfg.Server.Host, s.cfg.Server.Port),
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
	s.logger.Info("HTTP server listening", "addr", srv.Addr, "env", s.cfg.Server.Environment)
	return s.echo.StartServer(srv)
}

// Shutdown drains in-flight requests and stops the anonymous-state janitor
func (s *Server) Shutdown(ctx context.Context) error {
	defer s.local.Close()
	return s.echo.Shutdown(ctx)
}

// RunMaintenance sweeps idle rate-limit buckets and prunes audit entries
// older than AUDIT_RETENTION until ctx is done.
func (s *Server) RunMaintenance(ctx context.Context) {
	go s.limiter.Cleanup(ctx, rateLimiterSweep)

	s.pruneAudit(ctx)
	ticker := time.NewTicker(auditPruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.pruneAudit(ctx)
		}
	}
}

func (s *Server) pruneAudit(ctx context.Context) {
	deleted, err := s.audit.Prune(ctx, s.cfg.Security.AuditRetention)
	if err != nil {
		s.logger.ErrorContext(ctx, "audit prune failed", "error", err)
		return
	}
	if deleted > 0 {
		s.logger.InfoContext(ctx, "audit entries pruned", "deleted", deleted, "retention", s.cfg.Security.AuditRetention.String())
	}
}
