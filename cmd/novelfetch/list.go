package main

import (
	"fmt"

	"github.com/fwojciec/novelfetch"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	novels, err := deps.Novels.FindNovels(deps.Ctx, novelfetch.NovelFilter{Offset: c.Offset, Limit: c.Limit})
	if err != nil {
		return err
	}

	if len(novels) == 0 {
		fmt.Fprintln(deps.Stdout, "No novels saved. Use 'novelfetch fetch <novel-id> --save' to add one.")
		return nil
	}

	for _, n := range novels {
		fmt.Fprintf(deps.Stdout, "%s  %s  (%d chapters)\n", n.NovelID, n.Title, len(n.Chapters))
	}

	return nil
}
