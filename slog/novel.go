package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/novelfetch"
)

// Ensure LoggingNovelService implements novelfetch.NovelService.
var _ novelfetch.NovelService = (*LoggingNovelService)(nil)

// LoggingNovelService wraps a NovelService with debug logging.
type LoggingNovelService struct {
	next   novelfetch.NovelService
	logger *slog.Logger
}

// NewLoggingNovelService creates a new LoggingNovelService.
func NewLoggingNovelService(next novelfetch.NovelService, logger *slog.Logger) *LoggingNovelService {
	return &LoggingNovelService{next: next, logger: logger}
}

func (s *LoggingNovelService) SaveNovel(ctx context.Context, novel *novelfetch.Novel) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("save novel",
			"novel_id", novel.NovelID,
			"chapters", len(novel.Chapters),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveNovel(ctx, novel)
}

func (s *LoggingNovelService) FindNovelByID(ctx context.Context, novelID string) (novel *novelfetch.Novel, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find novel",
			"novel_id", novelID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindNovelByID(ctx, novelID)
}

func (s *LoggingNovelService) FindNovels(ctx context.Context, filter novelfetch.NovelFilter) (novels []*novelfetch.Novel, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find novels",
			"count", len(novels),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindNovels(ctx, filter)
}

func (s *LoggingNovelService) DeleteNovel(ctx context.Context, novelID string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("delete novel",
			"novel_id", novelID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteNovel(ctx, novelID)
}
