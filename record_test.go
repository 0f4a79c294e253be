package pagesnap_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pagesnap/pagesnap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrawlRecord_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid record", func(t *testing.T) {
		t.Parallel()

		rec := &pagesnap.CrawlRecord{
			URL:      "https://example.com",
			Metadata: pagesnap.PageMetadata{CanonicalURL: "https://example.com/"},
		}

		require.NoError(t, rec.Validate())
	})

	t.Run("requires URL", func(t *testing.T) {
		t.Parallel()

		rec := &pagesnap.CrawlRecord{
			Metadata: pagesnap.PageMetadata{CanonicalURL: "https://example.com/"},
		}

		err := rec.Validate()
		require.Error(t, err)
		assert.Equal(t, pagesnap.EINVALID, pagesnap.ErrorCode(err))
	})

	t.Run("requires canonical URL", func(t *testing.T) {
		t.Parallel()

		rec := &pagesnap.CrawlRecord{URL: "https://example.com"}

		err := rec.Validate()
		require.Error(t, err)
		assert.Equal(t, pagesnap.EINVALID, pagesnap.ErrorCode(err))
	})
}

func TestCrawlRecord_JSON(t *testing.T) {
	t.Parallel()

	t.Run("serializes the full wire shape", func(t *testing.T) {
		t.Parallel()

		author := "Ada"
		shot := "example.com/index.png"
		rec := &pagesnap.CrawlRecord{
			URL: "https://example.com",
			Crawl: pagesnap.CrawlInfo{
				LoadedURL:   "https://example.com/",
				LoadedTime:  time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
				ReferrerURL: "https://example.com/",
				Depth:       0,
			},
			Metadata: pagesnap.PageMetadata{
				Author:       &author,
				CanonicalURL: "https://example.com/",
			},
			ScreenshotURL: &shot,
			Text:          "Hello",
			HTML:          "<p>Hello</p>",
			Markdown:      "Hello",
		}

		data, err := json.Marshal(rec)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(data, &got))

		assert.Equal(t, "https://example.com", got["url"])
		assert.Equal(t, "example.com/index.png", got["screenshotUrl"])
		assert.Equal(t, "Hello", got["text"])
		assert.Equal(t, "<p>Hello</p>", got["html"])
		assert.Equal(t, "Hello", got["markdown"])

		crawl, ok := got["crawl"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "https://example.com/", crawl["loadedUrl"])
		assert.Equal(t, "https://example.com/", crawl["referrerUrl"])
		assert.Equal(t, float64(0), crawl["depth"])

		meta, ok := got["metadata"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Ada", meta["author"])
		assert.Equal(t, "https://example.com/", meta["canonicalUrl"])

		// Absent metadata fields serialize as null, not as missing keys.
		assert.Contains(t, meta, "title")
		assert.Nil(t, meta["title"])
		assert.Nil(t, meta["description"])
	})

	t.Run("null screenshot reference survives round trip", func(t *testing.T) {
		t.Parallel()

		rec := &pagesnap.CrawlRecord{
			URL:      "https://example.com",
			Metadata: pagesnap.PageMetadata{CanonicalURL: "https://example.com/"},
		}

		data, err := json.Marshal(rec)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Contains(t, got, "screenshotUrl")
		assert.Nil(t, got["screenshotUrl"])
	})
}
