package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/novelfetch"
)

// chapterContainerSelectors name the elements known to wrap the chapter
// list. Anchors are taken from the first selector that matches.
var chapterContainerSelectors = []string{
	"div.chapter-list",
	"ul.chapters",
	"div.chapters",
}

// chapterLinkSelector matches chapter links anywhere on the page. It is
// used when no known container is present.
const chapterLinkSelector = `a[href*="/chapters/"]`

// ExtractChapters returns the chapter links of a table of contents page
// that pass filter. Entries are numbered by their position among all
// candidate anchors, before filtering. Relative hrefs are resolved
// against baseURL. Anchors with no text or href are skipped but still
// consume a number.
func ExtractChapters(doc *goquery.Document, baseURL string, filter *novelfetch.ChapterFilter) ([]novelfetch.ChapterEntry, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, novelfetch.Errorf(novelfetch.EINVALID, "invalid base URL: %v", err)
	}

	var entries []novelfetch.ChapterEntry
	chapterAnchors(doc).Each(func(i int, sel *goquery.Selection) {
		number := i + 1
		if !filter.Match(number) {
			return
		}

		title := normalizeText(sel.Text())
		href, _ := sel.Attr("href")
		link := resolveURL(base, href)
		if title == "" || link == "" {
			return
		}

		entries = append(entries, novelfetch.ChapterEntry{
			Number: number,
			Title:  title,
			URL:    link,
		})
	})
	return entries, nil
}

// chapterAnchors returns the candidate chapter anchors in document order.
// A matching container wins even if it holds no anchors.
func chapterAnchors(doc *goquery.Document) *goquery.Selection {
	for _, selector := range chapterContainerSelectors {
		container := doc.Find(selector).First()
		if container.Length() > 0 {
			return container.Find("a")
		}
	}
	return doc.Find(chapterLinkSelector)
}

// resolveURL resolves href against base. Returns an empty string when href
// is blank, unparseable or not an HTTP link.
func resolveURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || isNonHTTPLink(href) {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(href)
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
