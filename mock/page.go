package mock

import (
	"context"

	"github.com/fwojciec/novelfetch"
)

// The page pipeline: fetch HTML, parse it, extract or convert content.
var (
	_ novelfetch.Fetcher    = (*Fetcher)(nil)
	_ novelfetch.PageParser = (*PageParser)(nil)
	_ novelfetch.Extractor  = (*Extractor)(nil)
	_ novelfetch.Converter  = (*Converter)(nil)
)

type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

// Close succeeds when CloseFn is unset.
func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

type PageParser struct {
	ParseTableOfContentsFn func(html string, filter *novelfetch.ChapterFilter) (*novelfetch.TableOfContents, error)
	ParseChapterFn         func(html string) (string, error)
}

func (p *PageParser) ParseTableOfContents(html string, filter *novelfetch.ChapterFilter) (*novelfetch.TableOfContents, error) {
	return p.ParseTableOfContentsFn(html, filter)
}

func (p *PageParser) ParseChapter(html string) (string, error) {
	return p.ParseChapterFn(html)
}

type Extractor struct {
	ExtractFn func(html string) (*novelfetch.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*novelfetch.ExtractResult, error) {
	return e.ExtractFn(html)
}

type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
