package novelfetch_test

import (
	"testing"

	"github.com/fwojciec/novelfetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChapterFilter_Match(t *testing.T) {
	t.Parallel()

	t.Run("nil filter matches everything", func(t *testing.T) {
		t.Parallel()

		var f *novelfetch.ChapterFilter

		assert.True(t, f.Match(1))
		assert.True(t, f.Match(500))
	})

	t.Run("explicit numbers take precedence over range", func(t *testing.T) {
		t.Parallel()

		f := &novelfetch.ChapterFilter{Numbers: []int{1}, Start: 2, End: 5}

		assert.True(t, f.Match(1))
		for i := 2; i <= 5; i++ {
			assert.False(t, f.Match(i), "position %d should be excluded", i)
		}
	})

	t.Run("range is inclusive", func(t *testing.T) {
		t.Parallel()

		f := &novelfetch.ChapterFilter{Start: 2, End: 4}

		assert.False(t, f.Match(1))
		assert.True(t, f.Match(2))
		assert.True(t, f.Match(4))
		assert.False(t, f.Match(5))
	})

	t.Run("open-ended range", func(t *testing.T) {
		t.Parallel()

		from := &novelfetch.ChapterFilter{Start: 3}
		upTo := &novelfetch.ChapterFilter{End: 3}

		assert.False(t, from.Match(2))
		assert.True(t, from.Match(300))
		assert.True(t, upTo.Match(1))
		assert.False(t, upTo.Match(4))
	})
}

func TestChapterFilter_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts nil filter", func(t *testing.T) {
		t.Parallel()

		var f *novelfetch.ChapterFilter
		assert.NoError(t, f.Validate())
	})

	t.Run("rejects zero chapter number", func(t *testing.T) {
		t.Parallel()

		f := &novelfetch.ChapterFilter{Numbers: []int{0}}
		err := f.Validate()

		require.Error(t, err)
		assert.Equal(t, novelfetch.EINVALID, novelfetch.ErrorCode(err))
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		t.Parallel()

		f := &novelfetch.ChapterFilter{Start: 5, End: 2}
		err := f.Validate()

		require.Error(t, err)
		assert.Equal(t, novelfetch.EINVALID, novelfetch.ErrorCode(err))
	})
}

func TestNovel_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires novel ID", func(t *testing.T) {
		t.Parallel()

		n := &novelfetch.Novel{Title: "A Novel"}
		assert.Equal(t, novelfetch.EINVALID, novelfetch.ErrorCode(n.Validate()))
	})

	t.Run("requires chapter titles", func(t *testing.T) {
		t.Parallel()

		n := &novelfetch.Novel{
			Title:    "A Novel",
			NovelID:  "1",
			Chapters: []novelfetch.Chapter{{Number: 1}},
		}
		assert.Equal(t, novelfetch.EINVALID, novelfetch.ErrorCode(n.Validate()))
	})

	t.Run("accepts non-contiguous chapter numbers", func(t *testing.T) {
		t.Parallel()

		n := &novelfetch.Novel{
			Title:   "A Novel",
			NovelID: "1",
			Chapters: []novelfetch.Chapter{
				{Number: 2, Title: "Two"},
				{Number: 7, Title: "Seven"},
			},
		}
		assert.NoError(t, n.Validate())
	})
}

func TestTableOfContentsURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"https://www.honeyfeed.fm/novels/21714/chapters",
		novelfetch.TableOfContentsURL(novelfetch.DefaultBaseURL, "21714"))
	assert.Equal(t,
		"http://127.0.0.1:8080/novels/7/chapters",
		novelfetch.TableOfContentsURL("http://127.0.0.1:8080/", "7"))
}

func TestParseOutputFormat(t *testing.T) {
	t.Parallel()

	f, err := novelfetch.ParseOutputFormat("AZW3")
	require.NoError(t, err)
	assert.Equal(t, novelfetch.FormatAZW3, f)

	_, err = novelfetch.ParseOutputFormat("pdf")
	require.Error(t, err)
	assert.Equal(t, novelfetch.EINVALID, novelfetch.ErrorCode(err))
}

func TestReplaceExt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "data/honeyfeed_21714.azw3", novelfetch.ReplaceExt("data/honeyfeed_21714.html", novelfetch.FormatAZW3))
	assert.Equal(t, "book.epub", novelfetch.ReplaceExt("book", novelfetch.FormatEPUB))
}

func TestParseChapterNumbers(t *testing.T) {
	t.Parallel()

	t.Run("parses a comma-separated list", func(t *testing.T) {
		t.Parallel()

		got, err := novelfetch.ParseChapterNumbers("1, 3,7")

		require.NoError(t, err)
		assert.Equal(t, []int{1, 3, 7}, got)
	})

	t.Run("ignores blank items", func(t *testing.T) {
		t.Parallel()

		got, err := novelfetch.ParseChapterNumbers(",2,,")

		require.NoError(t, err)
		assert.Equal(t, []int{2}, got)
	})

	t.Run("returns nil for an empty string", func(t *testing.T) {
		t.Parallel()

		got, err := novelfetch.ParseChapterNumbers("")

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("rejects non-numeric items", func(t *testing.T) {
		t.Parallel()

		_, err := novelfetch.ParseChapterNumbers("1,two")

		require.Error(t, err)
		assert.Equal(t, novelfetch.EINVALID, novelfetch.ErrorCode(err))
		assert.Contains(t, novelfetch.ErrorMessage(err), `"two"`)
	})
}
