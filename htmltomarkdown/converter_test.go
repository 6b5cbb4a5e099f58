package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/novelfetch"
	"github.com/fwojciec/novelfetch/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("separates paragraphs", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p>First paragraph.</p><p>Second paragraph.</p>`)

		require.NoError(t, err)
		assert.Equal(t, "First paragraph.\n\nSecond paragraph.", md)
	})

	t.Run("converts bold and italic", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p><strong>Bold</strong> and <em>italic</em> text.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "**Bold**")
		assert.Contains(t, md, "*italic*")
	})

	t.Run("uses configured emphasis delimiters", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter(htmltomarkdown.WithEmphasis("_", "__"))
		md, err := conv.Convert(`<p><b>Bold</b> and <i>italic</i> text.</p>`)

		require.NoError(t, err)
		assert.Equal(t, "__Bold__ and _italic_ text.", md)
	})

	t.Run("converts line breaks inside a paragraph", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p><b><i>[Divine Staff of Holy Light]<br/>Attributes: Holy, Wind</i></b></p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Divine Staff of Holy Light")
		assert.Contains(t, md, "Attributes: Holy, Wind")
		assert.NotContains(t, md, "<br")
	})

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<h3>Interlude</h3><p>Text</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "### Interlude")
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<ul><li>Holy</li><li>Wind</li></ul><ol><li>First</li></ol>`)

		require.NoError(t, err)
		assert.Contains(t, md, "- Holy")
		assert.Contains(t, md, "- Wind")
		assert.Contains(t, md, "1. First")
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("   ")

		require.Error(t, err)
		assert.Equal(t, novelfetch.EINVALID, novelfetch.ErrorCode(err))
	})

	t.Run("renders a novel", func(t *testing.T) {
		t.Parallel()

		n := &novelfetch.Novel{
			Title:   "Staff Life",
			NovelID: "21714",
			Chapters: []novelfetch.Chapter{
				{Number: 1, Title: "Awakening", Content: "<p>I am a <em>staff</em>.</p>"},
				{Number: 2, Title: "Missing"},
			},
		}

		md, err := novelfetch.RenderMarkdown(n, htmltomarkdown.NewConverter())

		require.NoError(t, err)
		assert.Contains(t, md, "# Staff Life\n")
		assert.Contains(t, md, "## Chapter 1: Awakening\n")
		assert.Contains(t, md, "I am a *staff*.")
		assert.Contains(t, md, "## Chapter 2: Missing\n")
	})
}
