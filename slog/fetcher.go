// Package slog provides logging decorators for novelfetch services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/novelfetch"
)

var _ novelfetch.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher logs every page request made by the wrapped Fetcher.
// Successful fetches are logged at debug level since a novel produces one
// per chapter; failures are logged as warnings with their error code.
type LoggingFetcher struct {
	next   novelfetch.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher wraps next.
func NewLoggingFetcher(next novelfetch.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	elapsed := time.Since(begin)

	if err != nil {
		f.logger.WarnContext(ctx, "fetch failed",
			"url", url,
			"code", novelfetch.ErrorCode(err),
			"duration", elapsed,
			"err", err,
		)
		return "", err
	}
	f.logger.DebugContext(ctx, "fetch",
		"url", url,
		"bytes", len(html),
		"duration", elapsed,
	)
	return html, nil
}

func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
