package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/pagesnap/pagesnap"
)

// Compile-time interface verification.
var _ pagesnap.RecordService = (*RecordService)(nil)

// RecordService implements pagesnap.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

const recordColumns = `id, url, loaded_url, loaded_time, referrer_url, depth,
	title, description, author, keywords, language_code, canonical_url,
	screenshot_url, text, html, markdown, content_hash`

// CreateRecord persists a new record, assigning its ID and content hash.
func (s *RecordService) CreateRecord(ctx context.Context, rec *pagesnap.CrawlRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.ContentHash = hashContent(rec.Markdown)
	if rec.Crawl.LoadedTime.IsZero() {
		rec.Crawl.LoadedTime = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.URL, rec.Crawl.LoadedURL, rec.Crawl.LoadedTime.Format(time.RFC3339),
		rec.Crawl.ReferrerURL, rec.Crawl.Depth,
		rec.Metadata.Title, rec.Metadata.Description, rec.Metadata.Author,
		rec.Metadata.Keywords, rec.Metadata.LanguageCode, rec.Metadata.CanonicalURL,
		rec.ScreenshotURL, rec.Text, rec.HTML, rec.Markdown, rec.ContentHash)

	return err
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*pagesnap.CrawlRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+recordColumns+`
		FROM records
		WHERE id = ?
	`, id)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, pagesnap.Errorf(pagesnap.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindRecords retrieves records matching the filter, newest first.
func (s *RecordService) FindRecords(ctx context.Context, filter pagesnap.RecordFilter) ([]*pagesnap.CrawlRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT ` + recordColumns + ` FROM records WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY loaded_time DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*pagesnap.CrawlRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// DeleteRecord permanently removes a record.
func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return pagesnap.Errorf(pagesnap.ENOTFOUND, "record not found")
	}
	return nil
}

// scanner is the shared subset of sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanRecord reads one record row.
func scanRecord(row scanner) (*pagesnap.CrawlRecord, error) {
	var rec pagesnap.CrawlRecord
	var loadedTime string

	err := row.Scan(&rec.ID, &rec.URL, &rec.Crawl.LoadedURL, &loadedTime,
		&rec.Crawl.ReferrerURL, &rec.Crawl.Depth,
		&rec.Metadata.Title, &rec.Metadata.Description, &rec.Metadata.Author,
		&rec.Metadata.Keywords, &rec.Metadata.LanguageCode, &rec.Metadata.CanonicalURL,
		&rec.ScreenshotURL, &rec.Text, &rec.HTML, &rec.Markdown, &rec.ContentHash)
	if err != nil {
		return nil, err
	}

	rec.Crawl.LoadedTime, err = time.Parse(time.RFC3339, loadedTime)
	if err != nil {
		return nil, fmt.Errorf("failed to parse loaded_time: %w", err)
	}

	return &rec, nil
}
