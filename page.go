package novelfetch

import "context"

// Fetcher downloads pages from a novel site.
type Fetcher interface {
	// Fetch returns the body served at url. A failed request, including
	// a non-2xx status, is reported as ETRANSPORT unless ctx ended first.
	Fetch(ctx context.Context, url string) (html string, err error)

	Close() error
}

// PageParser reads novel data out of fetched pages.
type PageParser interface {
	// ParseTableOfContents returns the novel title and the chapter entries
	// that pass filter, numbered by their position on the page.
	// Returns ENOTFOUND if no title can be located.
	ParseTableOfContents(html string, filter *ChapterFilter) (*TableOfContents, error)

	// ParseChapter returns the chapter's narrative text in the restricted
	// markup vocabulary. Returns ENOTFOUND if no content can be located.
	ParseChapter(html string) (string, error)
}

// ExtractResult is the readable part of a page.
type ExtractResult struct {
	Title       string
	ContentHTML string
}

// Extractor pulls the main text out of an arbitrary page. It backs
// ParseChapter for chapter pages that match no known layout.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter turns HTML into Markdown.
type Converter interface {
	Convert(html string) (string, error)
}
