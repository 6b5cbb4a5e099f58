package main

import (
	"fmt"

	"github.com/fwojciec/novelfetch"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	novel, err := deps.Novels.FindNovelByID(deps.Ctx, c.NovelID)
	if err != nil {
		if novelfetch.ErrorCode(err) == novelfetch.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "Hint: Use 'novelfetch list' to see saved novels.")
		}
		return err
	}

	if c.Full {
		md, err := novelfetch.RenderMarkdown(novel, deps.Markdown)
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, md)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%s (%d chapters)\n%s\n\n", novel.Title, len(novel.Chapters), novel.URL)
	for _, ch := range novel.Chapters {
		status := fmt.Sprintf("%d bytes", len(ch.Content))
		if ch.Content == "" {
			status = "empty"
		}
		fmt.Fprintf(deps.Stdout, "  %s  [%s]\n", novelfetch.ChapterHeading(ch), status)
	}

	return nil
}
