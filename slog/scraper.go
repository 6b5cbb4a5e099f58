package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/novelfetch"
)

// Ensure LoggingScraper implements novelfetch.NovelScraper.
var _ novelfetch.NovelScraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a NovelScraper with logging.
type LoggingScraper struct {
	next   novelfetch.NovelScraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next novelfetch.NovelScraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// ScrapeNovel delegates to the wrapped scraper and logs the outcome.
func (s *LoggingScraper) ScrapeNovel(ctx context.Context, novelID string, filter *novelfetch.ChapterFilter) (novel *novelfetch.Novel, err error) {
	defer func(begin time.Time) {
		chapters, empty := 0, 0
		if novel != nil {
			chapters = len(novel.Chapters)
			for _, ch := range novel.Chapters {
				if ch.Content == "" {
					empty++
				}
			}
		}
		s.logger.Info("scrape novel",
			"novel_id", novelID,
			"chapters", chapters,
			"empty", empty,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ScrapeNovel(ctx, novelID, filter)
}
