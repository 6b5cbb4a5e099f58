package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/novelfetch"
	"github.com/fwojciec/novelfetch/fs"
	"github.com/fwojciec/novelfetch/readability"
	"github.com/fwojciec/novelfetch/trafilatura"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Novels   novelfetch.NovelService
	Scraper  novelfetch.NovelScraper
	Store    *fs.Store
	Ebooks   novelfetch.EbookConverter
	Books    novelfetch.BookWriter
	Markdown novelfetch.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Fetch   FetchCmd   `cmd:"" help:"Scrape a novel and print it as JSON"`
	Convert ConvertCmd `cmd:"" help:"Scrape a novel and convert it to an e-book"`
	List    ListCmd    `cmd:"" help:"List saved novels"`
	Show    ShowCmd    `cmd:"" help:"Show a saved novel"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a saved novel"`
}

// ScrapeFlags are the options shared by commands that scrape a novel.
type ScrapeFlags struct {
	Chapters    []int         `short:"n" name:"chapter" help:"Chapter number to include (repeatable)"`
	Start       int           `help:"First chapter to include"`
	End         int           `help:"Last chapter to include"`
	Concurrency int           `short:"c" help:"Chapters fetched at once (default 1)"`
	Timeout     time.Duration `short:"t" help:"Per-request timeout (default 10s)"`
	Browser     bool          `help:"Fetch pages with a headless browser"`
	Fallback    string        `placeholder:"EXTRACTOR" help:"Content extractor for unrecognized chapter layouts (readability, trafilatura)"`
	Verbose     bool          `short:"v" help:"Log every request"`
}

// Filter returns the chapter filter selected by the flags, or nil when
// every chapter is selected.
func (f ScrapeFlags) Filter() (*novelfetch.ChapterFilter, error) {
	if len(f.Chapters) == 0 && f.Start == 0 && f.End == 0 {
		return nil, nil
	}
	filter := &novelfetch.ChapterFilter{Numbers: f.Chapters, Start: f.Start, End: f.End}
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return filter, nil
}

// FallbackExtractor returns the extractor named by --fallback, or nil when
// none is selected.
func (f ScrapeFlags) FallbackExtractor() (novelfetch.Extractor, error) {
	switch f.Fallback {
	case "":
		return nil, nil
	case "readability":
		return readability.NewExtractor(), nil
	case "trafilatura":
		return trafilatura.NewExtractor(), nil
	}
	return nil, novelfetch.Errorf(novelfetch.EINVALID, "unknown fallback extractor %q", f.Fallback)
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	NovelID string `arg:"" help:"Honeyfeed novel ID"`
	ScrapeFlags
	Save   bool   `help:"Save the novel to the local library"`
	Output string `short:"o" type:"path" help:"Write JSON to a file instead of stdout"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	NovelID string `arg:"" help:"Honeyfeed novel ID"`
	ScrapeFlags
	Format   string `short:"f" default:"azw3" enum:"html,azw3,epub,md" help:"Output format (html, azw3, epub, md)"`
	Override bool   `help:"Scrape again even if an HTML copy exists"`
	Native   bool   `help:"Build EPUB files without Calibre"`
	DataDir  string `type:"path" name:"data-dir" help:"Directory for generated files"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Offset int `help:"Number of novels to skip"`
	Limit  int `help:"Maximum number of novels to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	NovelID string `arg:"" help:"Honeyfeed novel ID"`
	Full    bool   `help:"Print chapter text as Markdown"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	NovelID string `arg:"" help:"Honeyfeed novel ID"`
	Force   bool   `help:"Confirm deletion"`
}
