package main

import (
	"context"
	"io"
	"time"

	"github.com/pagesnap/pagesnap"
	"github.com/pagesnap/pagesnap/capture"
	"github.com/pagesnap/pagesnap/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Records  pagesnap.RecordService
	Pipeline *capture.Pipeline
	Writer   pagesnap.RecordWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Capture CaptureCmd `cmd:"" help:"Capture and normalize a single page"`
	List    ListCmd    `cmd:"" help:"List stored capture records"`
	Show    ShowCmd    `cmd:"" help:"Show a stored capture record"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored capture record"`
}

// CaptureCmd is the "capture" subcommand.
type CaptureCmd struct {
	URL        string        `arg:"" help:"Page URL to capture"`
	Out        string        `short:"o" default:"captures" help:"Output directory for record JSON and screenshots"`
	Engine     string        `default:"rod" enum:"rod,chromedp" help:"Rendering engine"`
	Extractor  string        `default:"goquery" enum:"goquery,readability,trafilatura" help:"Content extraction engine"`
	Timeout    time.Duration `default:"15s" help:"Scroll stabilization timeout"`
	Settle     time.Duration `default:"500ms" help:"Pause between scroll and height reading"`
	Screenshot bool          `default:"true" negatable:"" help:"Capture a full-page screenshot"`
	Store      bool          `default:"true" negatable:"" help:"Save the record to the capture history database"`
	Verbose    bool          `short:"v" help:"Log browser operations"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	URL   string `help:"Filter records by page URL"`
	Limit int    `default:"20" help:"Maximum number of records to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID       string `arg:"" help:"Record ID"`
	Markdown bool   `help:"Print only the markdown content"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Record ID"`
	Force bool   `help:"Confirm deletion"`
}
