// Package server exposes databoxes over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ivoronin/databoxes/internal/store"
)

// VersionHeader carries the server version on every response.
const VersionHeader = "X-Databoxes-Version"

const shutdownTimeout = 10 * time.Second

// Server serves the databox listing API.
type Server struct {
	store   store.Store
	log     *slog.Logger
	version string
	router  *gin.Engine
}

// New builds a Server and its routes.
func New(s store.Store, log *slog.Logger, version string) *Server {
	gin.SetMode(gin.ReleaseMode)

	srv := &Server{store: s, log: log, version: version}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))
	router.Use(versionMiddleware(version))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	boxes := router.Group("/databoxes")
	boxes.GET("", srv.listDataboxes)
	boxes.GET("/:id", srv.getDatabox)

	srv.router = router
	return srv
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", "addr", addr, "version", s.version)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info("server stopped")
	return nil
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func versionMiddleware(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header(VersionHeader, version)
		c.Next()
	}
}
