package goquery_test

import (
	"testing"

	"github.com/fwojciec/novelfetch"
	"github.com/fwojciec/novelfetch/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "prefers the novel title heading",
			html: `<html><body><h1>Honeyfeed</h1><h1 class="novel-title">The Novel</h1></body></html>`,
			want: "The Novel",
		},
		{
			name: "falls back to the first heading",
			html: `<html><body><h1> First  Heading </h1><h1>Second</h1></body></html>`,
			want: "First Heading",
		},
		{
			name: "falls back to the title div",
			html: `<html><body><div class="title">Div Title</div></body></html>`,
			want: "Div Title",
		},
		{
			name: "trims the site name from the document title",
			html: `<html><head><title>My Novel | Honeyfeed</title></head><body></body></html>`,
			want: "My Novel",
		},
		{
			name: "trims a dash separated suffix from the document title",
			html: `<html><head><title>My Novel - Web Novel | Honeyfeed</title></head><body></body></html>`,
			want: "My Novel",
		},
		{
			name: "skips a blank heading",
			html: `<html><body><h1>  </h1><div class="title">Div Title</div></body></html>`,
			want: "Div Title",
		},
		{
			name: "reads the Honeyfeed chapter list",
			html: honeyfeedTOCPage,
			want: "Reincarnated as a Staff",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := goquery.ExtractTitle(newDocument(t, tt.html))

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("returns ENOTFOUND without a title", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.ExtractTitle(newDocument(t, `<html><body><p>Nothing here</p></body></html>`))

		require.Error(t, err)
		assert.Equal(t, novelfetch.ENOTFOUND, novelfetch.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when only the site name remains", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.ExtractTitle(newDocument(t, `<html><head><title> | Honeyfeed</title></head></html>`))

		require.Error(t, err)
		assert.Equal(t, novelfetch.ENOTFOUND, novelfetch.ErrorCode(err))
	})
}
