// Package gin serves scraped novels over HTTP using the Gin framework.
package gin

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/novelfetch"
	"github.com/gin-gonic/gin"
)

// ShutdownTimeout bounds how long in-flight requests may finish after the
// server is asked to stop.
const ShutdownTimeout = 10 * time.Second

// Server exposes a NovelScraper over HTTP.
type Server struct {
	scraper novelfetch.NovelScraper
	logger  *slog.Logger
	engine  *gin.Engine
}

// NewServer creates a Server with its routes registered.
// A nil logger discards request logs.
func NewServer(scraper novelfetch.NovelScraper, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Server{
		scraper: scraper,
		logger:  logger,
		engine:  gin.New(),
	}
	s.engine.Use(gin.Recovery(), requestLogger(logger))
	s.engine.GET("/healthz", s.handleHealth)
	s.engine.GET("/novels/honeyfeed/:novel_id", s.handleGetNovel)
	return s
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// requestLogger logs one line per request after it completes.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(begin),
		)
	}
}
