package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pagesnap/pagesnap"
)

// Ensure ScreenshotDir implements pagesnap.ScreenshotStore at compile time.
var _ pagesnap.ScreenshotStore = (*ScreenshotDir)(nil)

// ScreenshotDir persists screenshots as PNG files under a base directory
// and returns paths relative to it.
type ScreenshotDir struct {
	baseDir string
}

// NewScreenshotDir creates a new ScreenshotDir.
func NewScreenshotDir(baseDir string) *ScreenshotDir {
	return &ScreenshotDir{baseDir: baseDir}
}

// SaveScreenshot writes the PNG bytes to a URL-derived path and returns
// the relative path as the record's screenshot reference.
func (s *ScreenshotDir) SaveScreenshot(ctx context.Context, pageURL string, png []byte) (string, error) {
	relPath, err := URLToPath(pageURL, ".png")
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(s.baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(fullPath, png, 0644); err != nil {
		return "", err
	}

	return relPath, nil
}
