package main

import (
	"fmt"

	"github.com/fwojciec/novelfetch"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		return novelfetch.Errorf(novelfetch.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Novels.DeleteNovel(deps.Ctx, c.NovelID); err != nil {
		if novelfetch.ErrorCode(err) == novelfetch.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "Hint: Use 'novelfetch list' to see saved novels.")
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted novel %s\n", c.NovelID)
	return nil
}
