package server

import (
	"context"
	"errors"
	"net/http"

	accountdomain "github.com/DevalGit/AccountEntry/internal/account/domain"
	auditdomain "github.com/DevalGit/AccountEntry/internal/audit/domain"
	"github.com/DevalGit/AccountEntry/internal/config"
	"github.com/DevalGit/AccountEntry/internal/observability/logger"
	"github.com/DevalGit/AccountEntry/internal/observability/metrics"
	"github.com/DevalGit/AccountEntry/internal/observability/tracing"
	"github.com/DevalGit/AccountEntry/internal/pending"
	sessiondomain "github.com/DevalGit/AccountEntry/internal/session/domain"
	totalsdomain "github.com/DevalGit/AccountEntry/internal/totals/domain"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Server holds the HTTP handlers over the account, session, totals and
// audit services.
type Server struct {
	cfg config.Config
	log *zap.Logger

	accountSvc accountdomain.Service
	sessionSvc sessiondomain.Service
	totalsSvc  totalsdomain.Service
	auditSvc   auditdomain.Service

	searchState *pending.SearchState
	submitState *pending.SubmitState
	limiter     *rateLimiter
}

type ServerParam struct {
	fx.In

	Cfg config.Config
	Log *zap.Logger

	AccountSvc accountdomain.Service
	SessionSvc sessiondomain.Service
	TotalsSvc  totalsdomain.Service
	AuditSvc   auditdomain.Service

	SearchState *pending.SearchState
	SubmitState *pending.SubmitState
}

func NewServer(p ServerParam) *Server {
	return &Server{
		cfg:         p.Cfg,
		log:         p.Log.Named("server"),
		accountSvc:  p.AccountSvc,
		sessionSvc:  p.SessionSvc,
		totalsSvc:   p.TotalsSvc,
		auditSvc:    p.AuditSvc,
		searchState: p.SearchState,
		submitState: p.SubmitState,
		limiter:     newRateLimiter(p.Cfg.RateLimit, p.Cfg.RateLimitWindow),
	}
}

func NewEngine(cfg config.Config, m *metrics.HTTPMetrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.GinMiddleware(logger.MiddlewareConfig{SkipPaths: []string{"/healthz"}}))
	engine.Use(tracing.GinMiddleware())
	engine.Use(metrics.GinMiddleware(m))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.CORSAllowOrigins
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	engine.Use(cors.New(corsCfg))

	return engine
}

func (s *Server) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	api.GET("/accounts", s.ListAccounts)
	api.GET("/totals", s.GetTotals)
	api.GET("/state", s.GetPendingState)
	api.GET("/session", s.GetSession)
	api.GET("/session/breakdown", s.GetBreakdown)
	api.GET("/audit", s.ListAudit)

	mutating := api.Group("")
	mutating.Use(s.rateLimitMiddleware())
	mutating.POST("/accounts", s.CreateAccount)
	mutating.PUT("/accounts/:id", s.UpdateAccount)
	mutating.PATCH("/accounts/:id/amount", s.UpdateAccountAmount)
	mutating.DELETE("/accounts/:id", s.DeleteAccount)
	mutating.POST("/accounts/:id/select", s.SelectAccount)
	mutating.PUT("/session/amount", s.SetInvoiceAmount)
	mutating.POST("/session/clear", s.ClearSession)
}

// RunHTTP starts the HTTP listener under the fx lifecycle.
func RunHTTP(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

var Module = fx.Module("server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server, engine *gin.Engine) {
		s.RegisterRoutes(engine)
	}),
	fx.Invoke(RunHTTP),
)
