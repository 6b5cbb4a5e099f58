package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/novelfetch"
)

// titleStrategy locates the novel title on a table of contents page.
type titleStrategy struct {
	selector string
	clean    func(string) string
}

// titleStrategies are tried in order; the first non-empty result wins.
var titleStrategies = []titleStrategy{
	{selector: "h1.novel-title"},
	{selector: "h1"},
	{selector: "div.title"},
	{selector: "title", clean: trimSiteSuffix},
}

// ExtractTitle returns the novel title from a table of contents page.
// Returns ENOTFOUND if no strategy yields a non-empty title.
func ExtractTitle(doc *goquery.Document) (string, error) {
	for _, s := range titleStrategies {
		sel := doc.Find(s.selector).First()
		if sel.Length() == 0 {
			continue
		}

		title := normalizeText(sel.Text())
		if s.clean != nil {
			title = s.clean(title)
		}
		if title != "" {
			return title, nil
		}
	}
	return "", novelfetch.Errorf(novelfetch.ENOTFOUND, "novel title not found")
}

// trimSiteSuffix strips the site name from a document title such as
// "My Novel | Honeyfeed" or "My Novel - Honeyfeed".
func trimSiteSuffix(title string) string {
	title, _, _ = strings.Cut(title, "|")
	title, _, _ = strings.Cut(title, "-")
	return strings.TrimSpace(title)
}

// normalizeText trims s and collapses internal whitespace runs to a single space.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
