// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"recruitadmin/src/app/http/handler"
	"recruitadmin/src/app/middleware"
	"recruitadmin/src/core/ports"
	"recruitadmin/src/core/usecase"
	"recruitadmin/src/infra/config"
)

// Repositories bundles the persistence ports the server needs.
type Repositories struct {
	DB                     ports.Repository
	RecruitYears           ports.RecruitYearRepository
	Companies              ports.CompanyRepository
	EventMasters           ports.EventMasterRepository
	Events                 ports.EventRepository
	EducationalBackgrounds ports.EducationalBackgroundRepository
	References             ports.ReferenceReader
}

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server

	// Handlers
	healthHandler      *handler.HealthHandler
	recruitYearHandler *handler.RecruitYearHandler
	companyHandler     *handler.CompanyHandler
	eventMasterHandler *handler.EventMasterHandler
	eventHandler       *handler.EventHandler
	backgroundHandler  *handler.EducationalBackgroundHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, repos Repositories) *Server {
	// Set Gin mode based on log level
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	router := gin.New()

	// Create services
	healthService := usecase.NewHealthService(repos.DB, log)
	recruitYearService := usecase.NewRecruitYearService(repos.RecruitYears, log)
	companyService := usecase.NewCompanyService(repos.Companies, log)
	eventMasterService := usecase.NewEventMasterService(repos.EventMasters, log)
	eventService := usecase.NewEventService(repos.Events, repos.References, log)
	backgroundService := usecase.NewEducationalBackgroundService(repos.EducationalBackgrounds, log)

	s := &Server{
		cfg:                cfg,
		log:                log,
		router:             router,
		healthHandler:      handler.NewHealthHandler(healthService),
		recruitYearHandler: handler.NewRecruitYearHandler(recruitYearService),
		companyHandler:     handler.NewCompanyHandler(companyService),
		eventMasterHandler: handler.NewEventMasterHandler(eventMasterService),
		eventHandler:       handler.NewEventHandler(eventService),
		backgroundHandler:  handler.NewEducationalBackgroundHandler(backgroundService),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Order matters: Recovery should be first to catch all panics
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Logging(s.log))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check endpoints (no auth required)
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	// API v1 routes
	v1 := s.router.Group("/v1")
	{
		// Recruit years
		v1.PUT("/recruit-years", s.recruitYearHandler.Upsert)
		v1.POST("/recruit-years", s.recruitYearHandler.Create)
		v1.PUT("/recruit-years/:recruit_year_id", s.recruitYearHandler.Update)
		v1.GET("/recruit-years/:recruit_year_id", s.recruitYearHandler.Get)
		v1.DELETE("/recruit-years/:recruit_year_id", s.recruitYearHandler.Delete)

		// Companies
		v1.POST("/companies", s.companyHandler.Create)
		v1.PUT("/companies/:company_id", s.companyHandler.Update)
		v1.GET("/companies/:company_id", s.companyHandler.Get)
		v1.DELETE("/companies/:company_id", s.companyHandler.Delete)

		// Event masters
		v1.POST("/event-masters", s.eventMasterHandler.Create)
		v1.PUT("/event-masters/:event_master_id", s.eventMasterHandler.Update)
		v1.GET("/event-masters/:event_master_id", s.eventMasterHandler.Get)
		v1.DELETE("/event-masters/:event_master_id", s.eventMasterHandler.Delete)

		// Events
		v1.POST("/events", s.eventHandler.Create)
		v1.POST("/events/bulk", s.eventHandler.BulkCreate)
		v1.PUT("/events/:event_id/schedule", s.eventHandler.Reschedule)
		v1.PUT("/events/:event_id/interviewers", s.eventHandler.AssignInterviewers)
		v1.GET("/events/:event_id", s.eventHandler.Get)
		v1.DELETE("/events/:event_id", s.eventHandler.Delete)

		// Educational backgrounds
		v1.POST("/educational-backgrounds", s.backgroundHandler.Create)
		v1.PUT("/educational-backgrounds/:background_id", s.backgroundHandler.Update)
		v1.GET("/educational-backgrounds/:background_id", s.backgroundHandler.Get)
		v1.DELETE("/educational-backgrounds/:background_id", s.backgroundHandler.Delete)
	}

	// Handle 404
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{
				"code":       "NOT_FOUND",
				"message":    "The requested resource was not found",
				"request_id": middleware.GetRequestID(c),
			},
		})
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until shutdown.
// It handles graceful shutdown on SIGINT/SIGTERM.
func (s *Server) Run() error {
	// Channel to receive shutdown signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Channel to receive server errors
	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	// Graceful shutdown
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// WaitForReady waits until the server is ready to accept connections.
// Useful for integration tests.
func (s *Server) WaitForReady(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(fmt.Sprintf("http://%s/health", s.cfg.Server.Addr()))
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("server not ready after %v", timeout)
}
