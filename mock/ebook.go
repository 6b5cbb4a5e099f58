package mock

import (
	"context"

	"github.com/fwojciec/novelfetch"
)

var _ novelfetch.EbookConverter = (*EbookConverter)(nil)

// EbookConverter is a mock implementation of novelfetch.EbookConverter.
type EbookConverter struct {
	ConvertFn func(ctx context.Context, inputPath string, format novelfetch.OutputFormat) (string, error)
}

func (c *EbookConverter) Convert(ctx context.Context, inputPath string, format novelfetch.OutputFormat) (string, error) {
	return c.ConvertFn(ctx, inputPath, format)
}

var _ novelfetch.BookWriter = (*BookWriter)(nil)

// BookWriter is a mock implementation of novelfetch.BookWriter.
type BookWriter struct {
	WriteBookFn func(n *novelfetch.Novel, path string) error
}

func (w *BookWriter) WriteBook(n *novelfetch.Novel, path string) error {
	return w.WriteBookFn(n, path)
}
