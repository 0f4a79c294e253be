package main

import (
	"fmt"
	"time"

	"github.com/pagesnap/pagesnap"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := pagesnap.RecordFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesnap.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'pagesnap capture' to create one.")
		return nil
	}

	for _, rec := range records {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n",
			rec.ID, rec.Crawl.LoadedTime.Format(time.RFC3339), rec.URL)
	}

	return nil
}
