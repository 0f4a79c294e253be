package mock

import (
	"context"

	"github.com/pagesnap/pagesnap"
)

var _ pagesnap.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of pagesnap.RecordService.
type RecordService struct {
	CreateRecordFn   func(ctx context.Context, rec *pagesnap.CrawlRecord) error
	FindRecordByIDFn func(ctx context.Context, id string) (*pagesnap.CrawlRecord, error)
	FindRecordsFn    func(ctx context.Context, filter pagesnap.RecordFilter) ([]*pagesnap.CrawlRecord, error)
	DeleteRecordFn   func(ctx context.Context, id string) error
}

func (s *RecordService) CreateRecord(ctx context.Context, rec *pagesnap.CrawlRecord) error {
	return s.CreateRecordFn(ctx, rec)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*pagesnap.CrawlRecord, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter pagesnap.RecordFilter) ([]*pagesnap.CrawlRecord, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}

var _ pagesnap.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of pagesnap.RecordWriter.
type RecordWriter struct {
	WriteRecordFn func(ctx context.Context, rec *pagesnap.CrawlRecord) error
}

func (w *RecordWriter) WriteRecord(ctx context.Context, rec *pagesnap.CrawlRecord) error {
	return w.WriteRecordFn(ctx, rec)
}

var _ pagesnap.ScreenshotStore = (*ScreenshotStore)(nil)

// ScreenshotStore is a mock implementation of pagesnap.ScreenshotStore.
type ScreenshotStore struct {
	SaveScreenshotFn func(ctx context.Context, pageURL string, png []byte) (string, error)
}

func (s *ScreenshotStore) SaveScreenshot(ctx context.Context, pageURL string, png []byte) (string, error) {
	return s.SaveScreenshotFn(ctx, pageURL, png)
}
