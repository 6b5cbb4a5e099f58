package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/novelfetch"
)

// Ensure LoggingEbookConverter implements novelfetch.EbookConverter.
var _ novelfetch.EbookConverter = (*LoggingEbookConverter)(nil)

// LoggingEbookConverter wraps an EbookConverter with logging.
type LoggingEbookConverter struct {
	next   novelfetch.EbookConverter
	logger *slog.Logger
}

// NewLoggingEbookConverter creates a new LoggingEbookConverter.
func NewLoggingEbookConverter(next novelfetch.EbookConverter, logger *slog.Logger) *LoggingEbookConverter {
	return &LoggingEbookConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs the conversion.
func (c *LoggingEbookConverter) Convert(ctx context.Context, inputPath string, format novelfetch.OutputFormat) (outputPath string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("convert ebook",
			"input", inputPath,
			"output", outputPath,
			"format", string(format),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Convert(ctx, inputPath, format)
}
