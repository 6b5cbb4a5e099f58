// Package htmltomarkdown renders simplified chapter markup as Markdown
// using html-to-markdown's CommonMark plugin.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/novelfetch"
)

var _ novelfetch.Converter = (*Converter)(nil)

// Converter turns chapter HTML into Markdown.
type Converter struct {
	em     string
	strong string
	conv   *converter.Converter
}

// Option configures a Converter.
type Option func(*Converter)

// WithEmphasis sets the delimiters written for <em>/<i> and
// <strong>/<b>. The defaults are "*" and "**".
func WithEmphasis(em, strong string) Option {
	return func(c *Converter) {
		c.em = em
		c.strong = strong
	}
}

func NewConverter(opts ...Option) *Converter {
	c := &Converter{em: "*", strong: "**"}
	for _, opt := range opts {
		opt(c)
	}
	c.conv = converter.NewConverter(converter.WithPlugins(
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(
			commonmark.WithEmDelimiter(c.em),
			commonmark.WithStrongDelimiter(c.strong),
		),
	))
	return c
}

// Convert returns EINVALID for blank input.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", novelfetch.Errorf(novelfetch.EINVALID, "no chapter markup to convert")
	}
	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", novelfetch.Errorf(novelfetch.EINTERNAL, "markdown conversion: %v", err)
	}
	return md, nil
}
