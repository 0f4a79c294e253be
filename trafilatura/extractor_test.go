package trafilatura_test

import (
	"strings"
	"testing"

	"github.com/pagesnap/pagesnap"
	"github.com/pagesnap/pagesnap/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func articlePage() string {
	para := "<p>Trafilatura scores text density, so the fixture needs several " +
		"full paragraphs of prose. This one describes the rollout of a new " +
		"deployment system across a mid-sized engineering organization and " +
		"the lessons learned from running it in production for a year.</p>"

	var b strings.Builder
	b.WriteString(`<html><head><title>Deployment Lessons</title></head><body>`)
	b.WriteString(`<nav><a href="/">Home</a></nav>`)
	b.WriteString(`<main><h1>Deployment Lessons</h1>`)
	for i := 0; i < 6; i++ {
		b.WriteString(para)
	}
	b.WriteString(`</main>`)
	b.WriteString(`<footer>All rights reserved.</footer>`)
	b.WriteString(`</body></html>`)
	return b.String()
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts the main content", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(articlePage())
		require.NoError(t, err)

		assert.Contains(t, result.ContentHTML, "deployment system")
		assert.NotContains(t, result.ContentHTML, "All rights reserved.")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().Extract("")
		require.Error(t, err)
		assert.Equal(t, pagesnap.EINVALID, pagesnap.ErrorCode(err))
	})

	t.Run("contentless document reports not found", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().Extract(`<html><body></body></html>`)
		require.Error(t, err)
		assert.Equal(t, pagesnap.ENOTFOUND, pagesnap.ErrorCode(err))
	})
}
