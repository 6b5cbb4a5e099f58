package novelfetch

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// DefaultBaseURL is the origin of the fiction-hosting site novels are fetched from.
const DefaultBaseURL = "https://www.honeyfeed.fm"

// Chapter represents a single chapter of a novel.
type Chapter struct {
	// Number is the 1-indexed position of the chapter in the table of
	// contents. It is assigned before filtering and never renumbered.
	Number  int    `json:"number"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// Novel represents a scraped novel with its chapters in discovery order.
type Novel struct {
	Title    string    `json:"title"`
	NovelID  string    `json:"novel_id"`
	URL      string    `json:"url"`
	Chapters []Chapter `json:"chapters"`
}

// Validate returns an error if the novel contains invalid fields.
func (n *Novel) Validate() error {
	if n.NovelID == "" {
		return Errorf(EINVALID, "novel ID required")
	}
	if n.Title == "" {
		return Errorf(EINVALID, "novel title required")
	}
	for _, ch := range n.Chapters {
		if ch.Number < 1 {
			return Errorf(EINVALID, "chapter number must be positive, got %d", ch.Number)
		}
		if ch.Title == "" {
			return Errorf(EINVALID, "chapter %d title required", ch.Number)
		}
	}
	return nil
}

// TableOfContentsURL returns the chapter list URL for a novel.
func TableOfContentsURL(baseURL, novelID string) string {
	return strings.TrimSuffix(baseURL, "/") + "/novels/" + url.PathEscape(novelID) + "/chapters"
}

// ChapterFilter selects chapters by their 1-indexed position.
//
// When Numbers is non-empty only those positions are kept and the range is
// ignored. Otherwise Start and End bound the position inclusively; zero
// means unbounded.
type ChapterFilter struct {
	Numbers []int `json:"numbers,omitempty"`
	Start   int   `json:"start,omitempty"`
	End     int   `json:"end,omitempty"`
}

// Match reports whether the chapter at position passes the filter.
// A nil filter matches every position.
func (f *ChapterFilter) Match(position int) bool {
	if f == nil {
		return true
	}

	if len(f.Numbers) > 0 {
		for _, n := range f.Numbers {
			if n == position {
				return true
			}
		}
		return false
	}

	if f.Start > 0 && position < f.Start {
		return false
	}
	if f.End > 0 && position > f.End {
		return false
	}
	return true
}

// Validate returns an error if the filter can never be satisfied or
// contains non-positive positions.
func (f *ChapterFilter) Validate() error {
	if f == nil {
		return nil
	}
	for _, n := range f.Numbers {
		if n < 1 {
			return Errorf(EINVALID, "chapter numbers are 1-indexed, got %d", n)
		}
	}
	if f.Start < 0 || f.End < 0 {
		return Errorf(EINVALID, "chapter range bounds must not be negative")
	}
	if f.Start > 0 && f.End > 0 && f.Start > f.End {
		return Errorf(EINVALID, "chapter range start %d is after end %d", f.Start, f.End)
	}
	return nil
}

// ParseChapterNumbers parses a comma-separated list of chapter positions
// such as "1,3,7". Blank items are ignored.
func ParseChapterNumbers(s string) ([]int, error) {
	var numbers []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid chapter number %q", field)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// ChapterEntry is a chapter link discovered on the table of contents page.
type ChapterEntry struct {
	Number int
	Title  string
	URL    string
}

// TableOfContents is the parsed table of contents page of a novel.
type TableOfContents struct {
	Title   string
	Entries []ChapterEntry
}

// NovelScraper assembles a novel from its source pages.
type NovelScraper interface {
	// ScrapeNovel fetches the table of contents for novelID, then every
	// chapter that passes filter. A nil filter keeps all chapters.
	// Returns ETRANSPORT if the table of contents cannot be fetched and
	// ENOTFOUND if the novel title cannot be located.
	ScrapeNovel(ctx context.Context, novelID string, filter *ChapterFilter) (*Novel, error)
}

// NovelService represents a local library of scraped novels.
type NovelService interface {
	// SaveNovel stores a novel, replacing any previous copy with the same NovelID.
	SaveNovel(ctx context.Context, novel *Novel) error

	// FindNovelByID retrieves a novel by its source NovelID.
	// Returns ENOTFOUND if the novel does not exist.
	FindNovelByID(ctx context.Context, novelID string) (*Novel, error)

	// FindNovels retrieves stored novels ordered by NovelID.
	FindNovels(ctx context.Context, filter NovelFilter) ([]*Novel, error)

	// DeleteNovel removes a novel and its chapters.
	// Returns ENOTFOUND if the novel does not exist.
	DeleteNovel(ctx context.Context, novelID string) error
}

// NovelFilter represents a filter for FindNovels.
type NovelFilter struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
