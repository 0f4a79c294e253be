package main

import (
	"fmt"

	"github.com/pagesnap/pagesnap"
)

// Run executes the capture command.
func (c *CaptureCmd) Run(deps *Dependencies) error {
	rec, err := deps.Pipeline.Capture(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesnap.ErrorMessage(err))
		return err
	}

	if c.Store {
		if err := deps.Records.CreateRecord(deps.Ctx, rec); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagesnap.ErrorMessage(err))
			return err
		}
	}

	if err := deps.Writer.WriteRecord(deps.Ctx, rec); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesnap.ErrorMessage(err))
		return err
	}

	title := "(no title)"
	if rec.Metadata.Title != nil {
		title = *rec.Metadata.Title
	}

	fmt.Fprintf(deps.Stdout, "Captured %s\n", rec.Crawl.LoadedURL)
	fmt.Fprintf(deps.Stdout, "  Title:    %s\n", title)
	fmt.Fprintf(deps.Stdout, "  Markdown: %d bytes\n", len(rec.Markdown))
	if rec.ScreenshotURL != nil {
		fmt.Fprintf(deps.Stdout, "  Screenshot: %s\n", *rec.ScreenshotURL)
	}
	if rec.ID != "" {
		fmt.Fprintf(deps.Stdout, "  Record:   %s\n", rec.ID)
	}

	return nil
}
