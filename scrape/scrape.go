// Package scrape assembles novels from their table of contents and chapter
// pages. It coordinates fetching, parsing and per-chapter failure handling.
package scrape

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/novelfetch"
	"golang.org/x/sync/errgroup"
)

// Ensure Scraper implements novelfetch.NovelScraper at compile time.
var _ novelfetch.NovelScraper = (*Scraper)(nil)

// Scraper assembles novels chapter by chapter.
type Scraper struct {
	Fetcher novelfetch.Fetcher
	Parser  novelfetch.PageParser

	// Logger receives a warning for every chapter whose content could not
	// be fetched or extracted. Defaults to discarding output.
	Logger *slog.Logger

	// BaseURL is the site origin. Defaults to novelfetch.DefaultBaseURL.
	BaseURL string

	// Concurrency bounds the number of chapters fetched at once.
	// Values below 2 fetch chapters one at a time in discovery order.
	Concurrency int

	// Progress, if set, receives events as chapters complete. It is
	// always called from the goroutine running ScrapeNovel.
	Progress ProgressFunc
}

// ProgressEvent reports progress during a scrape.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Number    int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// chapterResult holds the outcome of processing a single chapter.
type chapterResult struct {
	position int
	content  string
	err      error
}

// ScrapeNovel implements novelfetch.NovelScraper.
//
// Failures fetching or parsing the table of contents are returned
// unmodified. A chapter that cannot be fetched or extracted keeps its
// place in the result with empty content. A canceled context aborts the
// scrape and returns the context error.
func (s *Scraper) ScrapeNovel(ctx context.Context, novelID string, filter *novelfetch.ChapterFilter) (*novelfetch.Novel, error) {
	tocURL := novelfetch.TableOfContentsURL(s.baseURL(), novelID)

	html, err := s.Fetcher.Fetch(ctx, tocURL)
	if err != nil {
		return nil, err
	}

	toc, err := s.Parser.ParseTableOfContents(html, filter)
	if err != nil {
		return nil, err
	}

	chapters, err := s.scrapeChapters(ctx, toc.Entries)
	if err != nil {
		return nil, err
	}

	return &novelfetch.Novel{
		Title:    toc.Title,
		NovelID:  novelID,
		URL:      tocURL,
		Chapters: chapters,
	}, nil
}

// scrapeChapters fetches every entry through a bounded worker pool. Each
// worker writes to the slot of its entry, so the output keeps discovery
// order whatever the completion order.
func (s *Scraper) scrapeChapters(ctx context.Context, entries []novelfetch.ChapterEntry) ([]novelfetch.Chapter, error) {
	total := len(entries)
	resultCh := make(chan chapterResult, total)

	s.notify(ProgressEvent{Type: ProgressStarted, Total: total})

	var g errgroup.Group
	g.SetLimit(s.concurrency())

	go func() {
		for i, entry := range entries {
			if ctx.Err() != nil {
				break
			}
			g.Go(func() error {
				content, err := s.scrapeChapter(ctx, entry.URL)
				resultCh <- chapterResult{position: i, content: content, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	chapters := make([]novelfetch.Chapter, total)
	for i, entry := range entries {
		chapters[i] = novelfetch.Chapter{
			Number: entry.Number,
			Title:  entry.Title,
			URL:    entry.URL,
		}
	}

	completed := 0
	for result := range resultCh {
		completed++
		ch := &chapters[result.position]

		if result.err != nil {
			s.logger().Warn("chapter content unavailable",
				"number", ch.Number,
				"url", ch.URL,
				"err", result.err)
			s.notify(ProgressEvent{
				Type:      ProgressFailed,
				Completed: completed,
				Total:     total,
				Number:    ch.Number,
				URL:       ch.URL,
				Error:     result.err,
			})
			continue
		}

		ch.Content = result.content
		s.notify(ProgressEvent{
			Type:      ProgressCompleted,
			Completed: completed,
			Total:     total,
			Number:    ch.Number,
			URL:       ch.URL,
		})
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.notify(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	return chapters, nil
}

// scrapeChapter fetches a chapter page and extracts its content.
func (s *Scraper) scrapeChapter(ctx context.Context, url string) (string, error) {
	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	return s.Parser.ParseChapter(html)
}

func (s *Scraper) notify(event ProgressEvent) {
	if s.Progress != nil {
		s.Progress(event)
	}
}

func (s *Scraper) baseURL() string {
	if s.BaseURL == "" {
		return novelfetch.DefaultBaseURL
	}
	return s.BaseURL
}

func (s *Scraper) concurrency() int {
	if s.Concurrency < 1 {
		return 1
	}
	return s.Concurrency
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s.Logger
}
