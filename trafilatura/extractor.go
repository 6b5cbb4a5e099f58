// Package trafilatura provides a site-agnostic chapter extractor built on
// go-trafilatura, used when a chapter page matches no known layout.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/novelfetch"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements novelfetch.Extractor at compile time.
var _ novelfetch.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main text of a page.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor. Reader comments and tables are
// excluded since neither belongs to chapter text.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback:  true,
			ExcludeComments: true,
			ExcludeTables:   true,
		},
	}
}

// Extract returns the main content of rawHTML.
// Returns ENOTFOUND when trafilatura finds no content.
func (e *Extractor) Extract(rawHTML string) (*novelfetch.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, novelfetch.Errorf(novelfetch.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, novelfetch.Errorf(novelfetch.ENOTFOUND, "trafilatura: %v", err)
	}
	if result.ContentNode == nil {
		return nil, novelfetch.Errorf(novelfetch.ENOTFOUND, "trafilatura found no content")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, err
	}

	return &novelfetch.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
