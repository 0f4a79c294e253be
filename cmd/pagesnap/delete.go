package main

import (
	"fmt"

	"github.com/pagesnap/pagesnap"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return pagesnap.Errorf(pagesnap.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Records.DeleteRecord(deps.Ctx, c.ID); err != nil {
		if pagesnap.ErrorCode(err) == pagesnap.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: record %q not found. Use 'pagesnap list' to see stored records.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagesnap.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted record %q\n", c.ID)
	return nil
}
