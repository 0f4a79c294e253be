package htmltomarkdown_test

import (
	"regexp"
	"testing"

	"github.com/pagesnap/pagesnap"
	"github.com/pagesnap/pagesnap/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("paragraph", func(t *testing.T) {
		t.Parallel()

		got, err := htmltomarkdown.NewConverter().Convert("<p>Hello</p>")
		require.NoError(t, err)
		assert.Equal(t, "Hello", got)
	})

	t.Run("headings and emphasis", func(t *testing.T) {
		t.Parallel()

		got, err := htmltomarkdown.NewConverter().Convert(
			"<h1>Title</h1><p>Some <strong>bold</strong> and <em>italic</em> text.</p>")
		require.NoError(t, err)

		assert.Contains(t, got, "# Title")
		assert.Contains(t, got, "**bold**")
		assert.Contains(t, got, "*italic*")
	})

	t.Run("links and lists", func(t *testing.T) {
		t.Parallel()

		got, err := htmltomarkdown.NewConverter().Convert(
			`<ul><li><a href="https://example.com">a link</a></li><li>plain</li></ul>`)
		require.NoError(t, err)

		assert.Contains(t, got, "[a link](https://example.com)")
		assert.Contains(t, got, "- plain")
	})

	t.Run("clamps deep headings", func(t *testing.T) {
		t.Parallel()

		got, err := htmltomarkdown.NewConverter().Convert(
			"<h5>Five</h5><h6>Six</h6>")
		require.NoError(t, err)

		assert.Contains(t, got, "#### Five")
		assert.Contains(t, got, "#### Six")
		assert.NotContains(t, got, "##### ")
	})

	t.Run("never emits runs of blank lines", func(t *testing.T) {
		t.Parallel()

		got, err := htmltomarkdown.NewConverter().Convert(
			"<p>a</p><div></div><div></div><div></div><p>b</p>")
		require.NoError(t, err)

		assert.NotRegexp(t, regexp.MustCompile(`\n{3,}`), got)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		got, err := htmltomarkdown.NewConverter().Convert("<div>  <p>x</p>  </div>")
		require.NoError(t, err)

		assert.Equal(t, "x", got)
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		const input = `<h2>Section</h2><p>Text with <a href="/rel">link</a>.</p><ul><li>one</li><li>two</li></ul>`

		conv := htmltomarkdown.NewConverter()
		first, err := conv.Convert(input)
		require.NoError(t, err)
		second, err := conv.Convert(input)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("   \n ")
		require.Error(t, err)
		assert.Equal(t, pagesnap.EINVALID, pagesnap.ErrorCode(err))
	})
}
