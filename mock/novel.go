package mock

import (
	"context"

	"github.com/fwojciec/novelfetch"
)

var _ novelfetch.NovelScraper = (*NovelScraper)(nil)

// NovelScraper is a mock implementation of novelfetch.NovelScraper.
type NovelScraper struct {
	ScrapeNovelFn func(ctx context.Context, novelID string, filter *novelfetch.ChapterFilter) (*novelfetch.Novel, error)
}

func (s *NovelScraper) ScrapeNovel(ctx context.Context, novelID string, filter *novelfetch.ChapterFilter) (*novelfetch.Novel, error) {
	return s.ScrapeNovelFn(ctx, novelID, filter)
}

var _ novelfetch.NovelService = (*NovelService)(nil)

// NovelService is a mock implementation of novelfetch.NovelService.
type NovelService struct {
	SaveNovelFn     func(ctx context.Context, novel *novelfetch.Novel) error
	FindNovelByIDFn func(ctx context.Context, novelID string) (*novelfetch.Novel, error)
	FindNovelsFn    func(ctx context.Context, filter novelfetch.NovelFilter) ([]*novelfetch.Novel, error)
	DeleteNovelFn   func(ctx context.Context, novelID string) error
}

func (s *NovelService) SaveNovel(ctx context.Context, novel *novelfetch.Novel) error {
	return s.SaveNovelFn(ctx, novel)
}

func (s *NovelService) FindNovelByID(ctx context.Context, novelID string) (*novelfetch.Novel, error) {
	return s.FindNovelByIDFn(ctx, novelID)
}

func (s *NovelService) FindNovels(ctx context.Context, filter novelfetch.NovelFilter) ([]*novelfetch.Novel, error) {
	return s.FindNovelsFn(ctx, filter)
}

func (s *NovelService) DeleteNovel(ctx context.Context, novelID string) error {
	return s.DeleteNovelFn(ctx, novelID)
}
