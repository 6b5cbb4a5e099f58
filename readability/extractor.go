// Package readability provides a site-agnostic chapter extractor built on
// go-readability, used when a chapter page matches no known layout.
package readability

import (
	"strings"

	"github.com/fwojciec/novelfetch"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements novelfetch.Extractor at compile time.
var _ novelfetch.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the main text of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the readable article of rawHTML.
// Returns ENOTFOUND when readability finds no article body.
func (e *Extractor) Extract(rawHTML string) (*novelfetch.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, novelfetch.Errorf(novelfetch.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, novelfetch.Errorf(novelfetch.ENOTFOUND, "readability: %v", err)
	}
	if strings.TrimSpace(article.TextContent) == "" {
		return nil, novelfetch.Errorf(novelfetch.ENOTFOUND, "readability found no article")
	}

	return &novelfetch.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
