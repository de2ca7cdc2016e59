package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/m-mizutani/briefhub/pkg/repository"
	"github.com/m-mizutani/briefhub/pkg/usecase/brief"
	"github.com/m-mizutani/briefhub/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Server serves the brief HTTP API
type Server struct {
	addr   string
	uc     *brief.UseCase
	repo   repository.Repository
	router *gin.Engine
}

func New(addr string, uc *brief.UseCase, repo repository.Repository) *Server {
	s := &Server{
		addr: addr,
		uc:   uc,
		repo: repo,
	}
	s.buildRouter()
	return s
}

func (s *Server) buildRouter() {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger())
	router.Use(corsMiddleware())

	router.GET("/", s.handleRoot)
	router.GET("/health", s.handleHealth)

	api := router.Group("/api")
	{
		api.POST("/briefs", s.handleCreateBrief)
		api.GET("/briefs", s.handleListBriefs)
		api.GET("/briefs/:id", s.handleGetBrief)
		api.DELETE("/briefs/:id", s.handleDeleteBrief)
	}

	s.router = router
}

// Handler exposes the router for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.From(ctx).Info("starting HTTP server", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return goerr.Wrap(err, "HTTP server failed")
	case <-ctx.Done():
	}

	logging.From(ctx).Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return goerr.Wrap(err, "server shutdown failed")
	}
	return nil
}
