package main

import (
	"encoding/json"
	"fmt"

	"github.com/pagesnap/pagesnap"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	rec, err := deps.Records.FindRecordByID(deps.Ctx, c.ID)
	if err != nil {
		if pagesnap.ErrorCode(err) == pagesnap.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: record %q not found. Use 'pagesnap list' to see stored records.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagesnap.ErrorMessage(err))
		}
		return err
	}

	if c.Markdown {
		fmt.Fprintln(deps.Stdout, rec.Markdown)
		return nil
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(data))

	return nil
}
