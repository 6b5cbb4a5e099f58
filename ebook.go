package novelfetch

import (
	"context"
	"path/filepath"
	"strings"
)

// OutputFormat is a target document format.
type OutputFormat string

// Supported output formats.
const (
	FormatHTML     OutputFormat = "html"
	FormatAZW3     OutputFormat = "azw3"
	FormatEPUB     OutputFormat = "epub"
	FormatMarkdown OutputFormat = "md"
)

// ParseOutputFormat returns the format named s.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatHTML, FormatAZW3, FormatEPUB, FormatMarkdown:
		return f, nil
	}
	return "", Errorf(EINVALID, "unsupported output format %q", s)
}

// Ext returns the file extension for the format, including the dot.
func (f OutputFormat) Ext() string {
	return "." + string(f)
}

// ReplaceExt returns path with its extension replaced by the format's.
func ReplaceExt(path string, format OutputFormat) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + format.Ext()
}

// EbookConverter converts an intermediate HTML document into an e-reader format.
type EbookConverter interface {
	// Convert converts the file at inputPath and returns the path of the
	// written output, which is inputPath with the format's extension.
	// Returns ETOOLNOTFOUND if the conversion tool is not installed and
	// ETOOLFAILED if it exits unsuccessfully.
	Convert(ctx context.Context, inputPath string, format OutputFormat) (outputPath string, err error)
}

// BookWriter builds an e-book directly from a scraped novel.
type BookWriter interface {
	// WriteBook writes n to path, replacing any existing file.
	WriteBook(n *Novel, path string) error
}
