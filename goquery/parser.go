// Package goquery extracts novel data from table of contents and chapter
// pages using CSS selector strategies.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/novelfetch"
)

// Ensure Parser implements novelfetch.PageParser at compile time.
var _ novelfetch.PageParser = (*Parser)(nil)

// Parser implements novelfetch.PageParser with ordered selector strategies.
type Parser struct {
	baseURL  string
	fallback novelfetch.Extractor
}

// Option configures a Parser.
type Option func(*Parser)

// WithBaseURL sets the origin relative chapter links are resolved against.
func WithBaseURL(baseURL string) Option {
	return func(p *Parser) {
		p.baseURL = baseURL
	}
}

// WithFallbackExtractor sets a generic extractor consulted when no known
// chapter layout matches. Its output is simplified like any other content.
func WithFallbackExtractor(e novelfetch.Extractor) Option {
	return func(p *Parser) {
		p.fallback = e
	}
}

// NewParser creates a new Parser with the given options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		baseURL: novelfetch.DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseTableOfContents implements novelfetch.PageParser.
func (p *Parser) ParseTableOfContents(html string, filter *novelfetch.ChapterFilter) (*novelfetch.TableOfContents, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	title, err := ExtractTitle(doc)
	if err != nil {
		return nil, err
	}

	entries, err := ExtractChapters(doc, p.baseURL, filter)
	if err != nil {
		return nil, err
	}

	return &novelfetch.TableOfContents{
		Title:   title,
		Entries: entries,
	}, nil
}

// ParseChapter implements novelfetch.PageParser.
func (p *Parser) ParseChapter(html string) (string, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return "", err
	}

	content, err := ExtractContent(doc)
	if err == nil || p.fallback == nil || novelfetch.ErrorCode(err) != novelfetch.ENOTFOUND {
		return content, err
	}
	return p.extractFallback(html)
}

func (p *Parser) extractFallback(html string) (string, error) {
	result, err := p.fallback.Extract(html)
	if err != nil {
		return "", novelfetch.Errorf(novelfetch.ENOTFOUND, "chapter content not found: %v", err)
	}

	doc, err := parseDocument(result.ContentHTML)
	if err != nil {
		return "", err
	}

	content := renderParagraphs(doc.Find("p"))
	if content == "" {
		return "", novelfetch.Errorf(novelfetch.ENOTFOUND, "chapter content not found")
	}
	return content, nil
}

func parseDocument(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, novelfetch.Errorf(novelfetch.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}
