// Command novelfetchd serves scraped novels over HTTP.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fwojciec/novelfetch"
	nfgin "github.com/fwojciec/novelfetch/gin"
	"github.com/fwojciec/novelfetch/goquery"
	nfhttp "github.com/fwojciec/novelfetch/http"
	"github.com/fwojciec/novelfetch/scrape"
	nfslog "github.com/fwojciec/novelfetch/slog"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(ctx, os.Getenv, logger); err != nil {
		logger.Error("server stopped", "err", err)
		stop()
		os.Exit(1)
	}
}

// run serves until ctx is canceled.
func run(ctx context.Context, getenv func(string) string, logger *slog.Logger) error {
	cfg, err := LoadConfig(getenv)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	srv := NewServer(cfg, logger)
	return srv.ListenAndServe(ctx, ":"+cfg.Port)
}

// NewServer wires the scraping stack behind the HTTP server.
func NewServer(cfg Config, logger *slog.Logger) *nfgin.Server {
	var fetcher novelfetch.Fetcher = nfhttp.NewFetcher(nfhttp.WithTimeout(cfg.Timeout))
	fetcher = nfslog.NewLoggingFetcher(fetcher, logger)

	scraper := &scrape.Scraper{
		Fetcher:     fetcher,
		Parser:      goquery.NewParser(goquery.WithBaseURL(cfg.BaseURL)),
		Logger:      logger,
		BaseURL:     cfg.BaseURL,
		Concurrency: cfg.Concurrency,
	}

	return nfgin.NewServer(nfslog.NewLoggingScraper(scraper, logger), logger)
}
