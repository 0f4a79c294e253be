//go:build integration

package chromedp_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pagesnap/pagesnap"
	"github.com/pagesnap/pagesnap/chromedp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixturePage = `<!DOCTYPE html>
<html lang="en">
<head>
  <title>Fixture</title>
  <meta name="author" content="Ada">
</head>
<body>
  <main><p>Hello</p></main>
</body>
</html>`

func TestBrowser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(fixturePage))
	}))
	defer srv.Close()

	browser, err := chromedp.NewBrowser()
	require.NoError(t, err)
	defer browser.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	page, err := browser.NewPage(ctx)
	require.NoError(t, err)
	defer page.Close()

	t.Run("loads and resolves the URL", func(t *testing.T) {
		loadedURL, err := page.Load(ctx, srv.URL)
		require.NoError(t, err)
		assert.Equal(t, srv.URL+"/", loadedURL)
	})

	t.Run("reads the title", func(t *testing.T) {
		title, err := page.Title(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Fixture", title)
	})

	t.Run("evaluates expressions", func(t *testing.T) {
		require.NoError(t, page.Eval(ctx, "window.scrollTo(0, document.body.scrollHeight)"))

		height, err := page.EvalNumber(ctx, "document.body.scrollHeight")
		require.NoError(t, err)
		assert.Greater(t, height, 0.0)
	})

	t.Run("finds elements and attributes", func(t *testing.T) {
		el, err := page.FindElement(ctx, `meta[name="author"]`)
		require.NoError(t, err)

		author, err := el.Attribute(ctx, "content")
		require.NoError(t, err)
		assert.Equal(t, "Ada", author)

		_, err = el.Attribute(ctx, "href")
		require.Error(t, err)
		assert.Equal(t, pagesnap.ENOTFOUND, pagesnap.ErrorCode(err))

		_, err = page.FindElement(ctx, "#does-not-exist")
		require.Error(t, err)
		assert.Equal(t, pagesnap.ENOTFOUND, pagesnap.ErrorCode(err))
	})

	t.Run("reads source text and screenshot", func(t *testing.T) {
		html, err := page.PageSource(ctx)
		require.NoError(t, err)
		assert.Contains(t, html, "<main><p>Hello</p></main>")

		text, err := page.PlainText(ctx)
		require.NoError(t, err)
		assert.Contains(t, text, "Hello")

		png, err := page.Screenshot(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, png)
	})
}
