package pagesnap_test

import (
	"context"
	"testing"

	"github.com/pagesnap/pagesnap"
	"github.com/pagesnap/pagesnap/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataExtractor_ExtractMetadata(t *testing.T) {
	t.Parallel()

	t.Run("collects every available field", func(t *testing.T) {
		t.Parallel()

		attrs := map[string]map[string]string{
			`meta[name="description"]`: {"content": "A tiny page"},
			`meta[name="author"]`:      {"content": "Ada"},
			`meta[name="keywords"]`:    {"content": "go,web"},
			"html":                     {"lang": "en"},
		}

		page := &mock.PageHandle{
			TitleFn: func(_ context.Context) (string, error) {
				return "Hi", nil
			},
			CurrentURLFn: func() string {
				return "https://example.com/"
			},
			FindElementFn: func(_ context.Context, selector string) (pagesnap.Element, error) {
				found, ok := attrs[selector]
				if !ok {
					return nil, pagesnap.Errorf(pagesnap.ENOTFOUND, "no element matches %q", selector)
				}
				return &mock.Element{
					AttributeFn: func(_ context.Context, name string) (string, error) {
						return found[name], nil
					},
				}, nil
			},
		}

		var e pagesnap.MetadataExtractor
		meta := e.ExtractMetadata(context.Background(), page)

		require.NotNil(t, meta.Title)
		assert.Equal(t, "Hi", *meta.Title)
		require.NotNil(t, meta.Description)
		assert.Equal(t, "A tiny page", *meta.Description)
		require.NotNil(t, meta.Author)
		assert.Equal(t, "Ada", *meta.Author)
		require.NotNil(t, meta.Keywords)
		assert.Equal(t, "go,web", *meta.Keywords)
		require.NotNil(t, meta.LanguageCode)
		assert.Equal(t, "en", *meta.LanguageCode)
		assert.Equal(t, "https://example.com/", meta.CanonicalURL)
	})

	t.Run("missing fields stay nil without affecting the rest", func(t *testing.T) {
		t.Parallel()

		page := &mock.PageHandle{
			TitleFn: func(_ context.Context) (string, error) {
				return "Hi", nil
			},
			CurrentURLFn: func() string {
				return "https://example.com/"
			},
			// FindElementFn unset: every lookup reports ENOTFOUND.
		}

		var e pagesnap.MetadataExtractor
		meta := e.ExtractMetadata(context.Background(), page)

		require.NotNil(t, meta.Title)
		assert.Equal(t, "Hi", *meta.Title)
		assert.Nil(t, meta.Description)
		assert.Nil(t, meta.Author)
		assert.Nil(t, meta.Keywords)
		assert.Nil(t, meta.LanguageCode)
		assert.Equal(t, "https://example.com/", meta.CanonicalURL)
	})

	t.Run("canonical URL is set even when everything else is absent", func(t *testing.T) {
		t.Parallel()

		page := &mock.PageHandle{
			CurrentURLFn: func() string {
				return "https://example.com/post"
			},
		}

		var e pagesnap.MetadataExtractor
		meta := e.ExtractMetadata(context.Background(), page)

		assert.Nil(t, meta.Title)
		assert.Nil(t, meta.Description)
		assert.Nil(t, meta.Author)
		assert.Nil(t, meta.Keywords)
		assert.Nil(t, meta.LanguageCode)
		assert.Equal(t, "https://example.com/post", meta.CanonicalURL)
	})

	t.Run("empty attribute values count as absent", func(t *testing.T) {
		t.Parallel()

		page := &mock.PageHandle{
			FindElementFn: func(_ context.Context, selector string) (pagesnap.Element, error) {
				return &mock.Element{
					AttributeFn: func(_ context.Context, name string) (string, error) {
						return "", nil
					},
				}, nil
			},
		}

		var e pagesnap.MetadataExtractor
		meta := e.ExtractMetadata(context.Background(), page)

		assert.Nil(t, meta.Description)
		assert.Nil(t, meta.LanguageCode)
	})
}
