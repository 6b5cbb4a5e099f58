// Package epub builds EPUB books from scraped novels without Calibre.
package epub

import (
	"fmt"
	"html"
	"strings"

	goepub "github.com/bmaupin/go-epub"
	"github.com/fwojciec/novelfetch"
)

// DefaultLang is the book language recorded in the package metadata.
const DefaultLang = "en"

// Ensure Writer implements novelfetch.BookWriter at compile time.
var _ novelfetch.BookWriter = (*Writer)(nil)

// Writer implements novelfetch.BookWriter using go-epub.
// Each chapter becomes one section headed by its chapter heading.
type Writer struct {
	lang   string
	author string
}

// Option configures a Writer.
type Option func(*Writer)

// WithLang sets the book language.
func WithLang(lang string) Option {
	return func(w *Writer) {
		w.lang = lang
	}
}

// WithAuthor sets the book author.
func WithAuthor(author string) Option {
	return func(w *Writer) {
		w.author = author
	}
}

// NewWriter creates a new Writer.
func NewWriter(opts ...Option) *Writer {
	w := &Writer{lang: DefaultLang}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteBook writes n as an EPUB file at path.
func (w *Writer) WriteBook(n *novelfetch.Novel, path string) error {
	if n == nil || strings.TrimSpace(n.Title) == "" {
		return novelfetch.Errorf(novelfetch.EINVALID, "novel title required")
	}
	if path == "" {
		return novelfetch.Errorf(novelfetch.EINVALID, "output path required")
	}

	book := goepub.NewEpub(n.Title)
	book.SetLang(w.lang)
	if w.author != "" {
		book.SetAuthor(w.author)
	}
	if n.URL != "" {
		book.SetIdentifier(n.URL)
	}

	for i, ch := range n.Chapters {
		heading := novelfetch.ChapterHeading(ch)
		filename := fmt.Sprintf("chapter-%04d.xhtml", i+1)
		if _, err := book.AddSection(sectionBody(heading, ch.Content), heading, filename, ""); err != nil {
			return novelfetch.Errorf(novelfetch.EINTERNAL, "add chapter %d: %v", ch.Number, err)
		}
	}

	if err := book.Write(path); err != nil {
		return fmt.Errorf("write epub: %w", err)
	}
	return nil
}

func sectionBody(heading, content string) string {
	body := "<h1>" + html.EscapeString(heading) + "</h1>"
	if strings.TrimSpace(content) == "" {
		return body
	}
	return body + "\n" + content
}
