package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/novelfetch"
	"github.com/fwojciec/novelfetch/fs"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	format, err := novelfetch.ParseOutputFormat(c.Format)
	if err != nil {
		return err
	}

	filter, err := c.Filter()
	if err != nil {
		return err
	}

	conv := &Conversion{
		Scraper:  deps.Scraper,
		Store:    deps.Store,
		Ebooks:   deps.Ebooks,
		Books:    deps.Books,
		Markdown: deps.Markdown,
		Stdout:   deps.Stdout,
	}
	_, err = conv.Run(deps.Ctx, ConvertRequest{
		NovelID:  c.NovelID,
		Format:   format,
		Filter:   filter,
		Override: c.Override,
		Native:   c.Native,
	})
	return err
}

// ConvertRequest describes a single conversion.
type ConvertRequest struct {
	NovelID  string
	Format   novelfetch.OutputFormat
	Filter   *novelfetch.ChapterFilter
	Override bool
	Native   bool
}

// Conversion produces novel files in a data directory. The rendered HTML
// document is kept as a cache: when it exists and Override is unset the
// novel is not scraped again.
type Conversion struct {
	Scraper  novelfetch.NovelScraper
	Store    *fs.Store
	Ebooks   novelfetch.EbookConverter
	Books    novelfetch.BookWriter
	Markdown novelfetch.Converter
	Stdout   io.Writer
}

// Run converts the requested novel and returns the path of the output file.
func (c *Conversion) Run(ctx context.Context, req ConvertRequest) (string, error) {
	if req.Native {
		if req.Format != novelfetch.FormatEPUB {
			return "", novelfetch.Errorf(novelfetch.EINVALID, "--native only applies to the epub format")
		}
		return c.writeBook(ctx, req)
	}

	htmlPath, err := c.Store.Path(req.NovelID, novelfetch.FormatHTML)
	if err != nil {
		return "", err
	}

	exists, err := c.Store.Exists(htmlPath)
	if err != nil {
		return "", fmt.Errorf("check %s: %w", htmlPath, err)
	}

	if exists && !req.Override {
		fmt.Fprintf(c.Stdout, "Found existing %s, skipping scrape\n", htmlPath)
	} else {
		novel, err := c.Scraper.ScrapeNovel(ctx, req.NovelID, req.Filter)
		if err != nil {
			return "", err
		}
		if err := c.Store.Write(htmlPath, novelfetch.RenderHTML(novel)); err != nil {
			return "", fmt.Errorf("write %s: %w", htmlPath, err)
		}
		fmt.Fprintf(c.Stdout, "Saved to %s\n", htmlPath)
	}

	var outputPath string
	switch req.Format {
	case novelfetch.FormatHTML:
		return htmlPath, nil
	case novelfetch.FormatMarkdown:
		outputPath, err = c.writeMarkdown(req.NovelID, htmlPath)
	default:
		outputPath, err = c.Ebooks.Convert(ctx, htmlPath, req.Format)
	}
	if err != nil {
		return "", err
	}

	fmt.Fprintf(c.Stdout, "Converted to %s\n", outputPath)
	return outputPath, nil
}

// writeBook scrapes the novel and builds the EPUB directly from its chapters.
func (c *Conversion) writeBook(ctx context.Context, req ConvertRequest) (string, error) {
	outputPath, err := c.Store.Path(req.NovelID, novelfetch.FormatEPUB)
	if err != nil {
		return "", err
	}

	novel, err := c.Scraper.ScrapeNovel(ctx, req.NovelID, req.Filter)
	if err != nil {
		return "", err
	}

	if err := c.Store.EnsureDir(); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	if err := c.Books.WriteBook(novel, outputPath); err != nil {
		return "", err
	}

	fmt.Fprintf(c.Stdout, "Converted to %s\n", outputPath)
	return outputPath, nil
}

// writeMarkdown converts the HTML document at htmlPath to Markdown.
func (c *Conversion) writeMarkdown(novelID, htmlPath string) (string, error) {
	doc, err := c.Store.Read(htmlPath)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", htmlPath, err)
	}

	md, err := c.Markdown.Convert(doc)
	if err != nil {
		return "", err
	}

	outputPath, err := c.Store.Path(novelID, novelfetch.FormatMarkdown)
	if err != nil {
		return "", err
	}
	if err := c.Store.Write(outputPath, md); err != nil {
		return "", fmt.Errorf("write %s: %w", outputPath, err)
	}
	return outputPath, nil
}
