package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/novelfetch"
)

// contentStrategy returns the candidate paragraphs of a chapter page in
// reading order, or an empty selection when its layout is absent.
type contentStrategy func(doc *goquery.Document) *goquery.Selection

// contentStrategies are tried in order; the first one that yields at least
// one non-blank paragraph wins.
var contentStrategies = []contentStrategy{
	pagedParagraphs,
	containerParagraphs("div.chapter-content"),
	containerParagraphs("div.content"),
	containerParagraphs("article"),
}

// ExtractContent returns the narrative text of a chapter page as
// simplified paragraphs concatenated without a separator. Navigation,
// login prompts and footers outside the content container never reach
// the output. Returns ENOTFOUND if no strategy yields content.
func ExtractContent(doc *goquery.Document) (string, error) {
	for _, strategy := range contentStrategies {
		if content := renderParagraphs(strategy(doc)); content != "" {
			return content, nil
		}
	}
	return "", novelfetch.Errorf(novelfetch.ENOTFOUND, "chapter content not found")
}

// pagedParagraphs walks the chapter body layout: the body holds a
// wrap-body, whose first div holds one div per page, each with id
// "page-N". Paragraphs are returned in page order, then document order.
func pagedParagraphs(doc *goquery.Document) *goquery.Selection {
	pages := doc.Find("div#chapter-body").First().
		Find("div.wrap-body").First().
		Find("div").First().
		Find(`div[id^="page-"]`)

	paragraphs := doc.Selection.Slice(0, 0)
	pages.Each(func(_ int, page *goquery.Selection) {
		paragraphs = paragraphs.AddSelection(page.Find("p"))
	})
	return paragraphs
}

// containerParagraphs returns a strategy taking the paragraphs of the
// first element matching selector.
func containerParagraphs(selector string) contentStrategy {
	return func(doc *goquery.Document) *goquery.Selection {
		return doc.Find(selector).First().Find("p")
	}
}

// renderParagraphs simplifies every paragraph with visible text.
func renderParagraphs(paragraphs *goquery.Selection) string {
	var b strings.Builder
	paragraphs.Each(func(_ int, p *goquery.Selection) {
		if strings.TrimSpace(p.Text()) == "" {
			return
		}
		b.WriteString(Simplify(p))
	})
	return b.String()
}
