package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/novelfetch"
	"github.com/fwojciec/novelfetch/fs"
	"github.com/fwojciec/novelfetch/scrape"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	filter, err := c.Filter()
	if err != nil {
		return err
	}

	novel, err := deps.Scraper.ScrapeNovel(deps.Ctx, c.NovelID, filter)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(novel, "", "  ")
	if err != nil {
		return fmt.Errorf("encode novel: %w", err)
	}
	data = append(data, '\n')

	if c.Output != "" {
		if err := fs.WriteFile(c.Output, data); err != nil {
			return fmt.Errorf("write %s: %w", c.Output, err)
		}
		fmt.Fprintf(deps.Stderr, "Wrote %s\n", c.Output)
	} else if _, err := deps.Stdout.Write(data); err != nil {
		return err
	}

	if c.Save {
		if err := deps.Novels.SaveNovel(deps.Ctx, novel); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stderr, "Saved novel %s to library\n", novel.NovelID)
	}

	fmt.Fprintf(deps.Stderr, "  Scraped %d chapters (%d empty, %s)\n",
		len(novel.Chapters), emptyChapters(novel), scrape.FormatBytes(scrape.ContentBytes(novel)))

	return nil
}

func emptyChapters(n *novelfetch.Novel) int {
	count := 0
	for _, ch := range n.Chapters {
		if ch.Content == "" {
			count++
		}
	}
	return count
}
