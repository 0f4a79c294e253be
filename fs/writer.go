// Package fs provides file-based output for capture records.
package fs

import (
	"context"
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pagesnap/pagesnap"
)

// URLToPath converts a page URL to a relative file path with the given
// extension. Example: https://example.com/docs/api → example.com/docs/api.json
func URLToPath(rawURL, ext string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", pagesnap.Errorf(pagesnap.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Host == "" {
		return "", pagesnap.Errorf(pagesnap.EINVALID, "URL %q has no host", rawURL)
	}

	path := strings.TrimSuffix(u.Path, "/")
	if path == "" {
		return filepath.Join(u.Host, "index"+ext), nil
	}

	return filepath.Join(u.Host, strings.TrimPrefix(path, "/")+ext), nil
}

// Ensure Writer implements pagesnap.RecordWriter at compile time.
var _ pagesnap.RecordWriter = (*Writer)(nil)

// Writer writes capture records as pretty-printed JSON files under a
// base directory, one file per page URL.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteRecord writes a record to disk as a JSON file.
func (w *Writer) WriteRecord(ctx context.Context, rec *pagesnap.CrawlRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(rec.URL, ".json")
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fullPath, append(data, '\n'), 0644)
}
