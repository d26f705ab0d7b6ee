// Package http provides the API server, router setup and shared middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/gharrison91/camp-connect-sub002/internal/auth/domain"
	authHTTP "github.com/gharrison91/camp-connect-sub002/internal/auth/http"
	authService "github.com/gharrison91/camp-connect-sub002/internal/auth/service"
	authUseCase "github.com/gharrison91/camp-connect-sub002/internal/auth/usecase"
	"github.com/gharrison91/camp-connect-sub002/internal/config"
	eventHTTP "github.com/gharrison91/camp-connect-sub002/internal/event/http"
	"github.com/gharrison91/camp-connect-sub002/internal/metrics"
)

// Server represents the API HTTP server.
type Server struct {
	db     *sql.DB
	logger *slog.Logger
	router *gin.Engine
	server *http.Server
	addr   string
}

// NewServer creates a new HTTP server. Call SetupRouter before Start to
// register the API routes.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		addr:   fmt.Sprintf("%s:%d", host, port),
	}
}

// RouterConfig holds the dependencies wired into the API router.
type RouterConfig struct {
	Config               *config.Config
	TokenVerifier        authService.TokenVerifier
	IdentityUseCase      authUseCase.IdentityUseCase
	AuthorizationUseCase authUseCase.AuthorizationUseCase
	IdentityHandler      *authHTTP.IdentityHandler
	PermissionHandler    *authHTTP.PermissionHandler
	EventHandler         *eventHTTP.EventHandler
	MetricsProvider      *metrics.Provider
}

// SetupRouter builds the Gin router with all middleware and API routes.
//
// Two authenticated route groups share the same token verification but
// resolve different identity kinds: /v1 resolves staff accounts, /v1/portal
// resolves guardians. Rate limiting runs before authentication so
// unauthenticated traffic is throttled too.
func (s *Server) SetupRouter(cfg RouterConfig) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if cfg.MetricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(
			cfg.MetricsProvider.MeterProvider(),
			cfg.Config.MetricsNamespace,
		))
	}

	if corsMiddleware := createCORSMiddleware(
		cfg.Config.CORSEnabled,
		cfg.Config.CORSAllowOrigins,
		s.logger,
	); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.Config.RateLimitEnabled {
		router.Use(authHTTP.RateLimitMiddleware(
			cfg.Config.RateLimitRequestsPerSec,
			cfg.Config.RateLimitBurst,
			s.logger,
		))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")

	staff := v1.Group("")
	staff.Use(authHTTP.AuthenticationMiddleware(
		cfg.TokenVerifier,
		cfg.IdentityUseCase,
		authDomain.StaffIdentity,
		s.logger,
	))
	staff.GET("/me", cfg.IdentityHandler.MeHandler)
	staff.GET("/permissions",
		authHTTP.RequirePermission(cfg.AuthorizationUseCase, authDomain.PermRolesRead, s.logger),
		cfg.PermissionHandler.ListHandler,
	)
	staff.GET("/events",
		authHTTP.RequirePermission(cfg.AuthorizationUseCase, authDomain.PermEventsRead, s.logger),
		cfg.EventHandler.ListHandler,
	)
	staff.POST("/events",
		authHTTP.RequirePermission(cfg.AuthorizationUseCase, authDomain.PermEventsCreate, s.logger),
		cfg.EventHandler.CreateHandler,
	)
	staff.GET("/events/:id",
		authHTTP.RequirePermission(cfg.AuthorizationUseCase, authDomain.PermEventsRead, s.logger),
		cfg.EventHandler.GetHandler,
	)

	portal := v1.Group("/portal")
	portal.Use(authHTTP.AuthenticationMiddleware(
		cfg.TokenVerifier,
		cfg.IdentityUseCase,
		authDomain.PortalIdentity,
		s.logger,
	))
	portal.GET("/me", cfg.IdentityHandler.MeHandler)

	s.router = router
}

// Router returns the configured router. Useful for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic. The database
// is the only hard dependency checked.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"database": "ok"}

	ready := s.db != nil
	if ready {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			ready = false
		}
	}

	if !ready {
		components["database"] = "error"
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting http server", slog.String("addr", s.addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
