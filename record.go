package pagesnap

import (
	"context"
	"time"
)

// PageMetadata holds document-level descriptive fields read from a page.
// Every field except CanonicalURL is independently nullable: the absence
// of one field never invalidates the others. CanonicalURL is always the
// page's resolved URL at extraction time.
type PageMetadata struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Author       *string `json:"author"`
	Keywords     *string `json:"keywords"`
	LanguageCode *string `json:"languageCode"`
	CanonicalURL string  `json:"canonicalUrl"`
}

// CrawlInfo describes how and when a page was loaded.
type CrawlInfo struct {
	LoadedURL   string    `json:"loadedUrl"`
	LoadedTime  time.Time `json:"loadedTime"`
	ReferrerURL string    `json:"referrerUrl"`
	Depth       int       `json:"depth"`
}

// CrawlRecord is the normalized result of capturing one page. It is
// assembled once per pipeline run and immutable thereafter.
type CrawlRecord struct {
	ID            string       `json:"id,omitempty"`
	URL           string       `json:"url"`
	Crawl         CrawlInfo    `json:"crawl"`
	Metadata      PageMetadata `json:"metadata"`
	ScreenshotURL *string      `json:"screenshotUrl"`
	Text          string       `json:"text"`
	HTML          string       `json:"html"`
	Markdown      string       `json:"markdown"`
	ContentHash   string       `json:"contentHash,omitempty"`
}

// Validate returns an error if the record contains invalid fields.
func (r *CrawlRecord) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "record URL required")
	}
	if r.Metadata.CanonicalURL == "" {
		return Errorf(EINVALID, "record canonical URL required")
	}
	return nil
}

// RecordService represents a service for managing capture records.
type RecordService interface {
	// CreateRecord persists a new record, assigning its ID and content hash.
	CreateRecord(ctx context.Context, rec *CrawlRecord) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindRecordByID(ctx context.Context, id string) (*CrawlRecord, error)

	// FindRecords retrieves records matching the filter, newest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*CrawlRecord, error)

	// DeleteRecord permanently removes a record.
	// Returns ENOTFOUND if the record does not exist.
	DeleteRecord(ctx context.Context, id string) error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RecordWriter writes records to an output sink.
type RecordWriter interface {
	WriteRecord(ctx context.Context, rec *CrawlRecord) error
}

// ScreenshotStore persists captured screenshots and returns a reference
// suitable for the record's screenshotUrl field.
type ScreenshotStore interface {
	SaveScreenshot(ctx context.Context, pageURL string, png []byte) (string, error)
}
