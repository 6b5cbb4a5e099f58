package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/novelfetch"
	"github.com/fwojciec/novelfetch/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNovel(novelID string) *novelfetch.Novel {
	return &novelfetch.Novel{
		Title:   "Staff Life " + novelID,
		NovelID: novelID,
		URL:     "https://www.honeyfeed.fm/novels/" + novelID + "/chapters",
		Chapters: []novelfetch.Chapter{
			{Number: 1, Title: "Awakening", URL: "https://www.honeyfeed.fm/chapters/1", Content: "<p>One</p><p>Two</p>"},
			{Number: 3, Title: "Dungeon", URL: "https://www.honeyfeed.fm/chapters/3", Content: ""},
			{Number: 7, Title: "Tower", URL: "https://www.honeyfeed.fm/chapters/7", Content: "<p><b>Seven</b></p>"},
		},
	}
}

func TestNovelService_SaveNovel(t *testing.T) {
	t.Parallel()

	t.Run("stores the novel and its chapters in order", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewNovelService(db)
		ctx := context.Background()
		novel := testNovel("21714")

		require.NoError(t, svc.SaveNovel(ctx, novel))

		found, err := svc.FindNovelByID(ctx, "21714")
		require.NoError(t, err)
		assert.Equal(t, novel, found)
	})

	t.Run("replaces a previous copy", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewNovelService(db)
		ctx := context.Background()

		require.NoError(t, svc.SaveNovel(ctx, testNovel("21714")))

		updated := testNovel("21714")
		updated.Title = "Staff Life (Revised)"
		updated.Chapters = updated.Chapters[:1]
		require.NoError(t, svc.SaveNovel(ctx, updated))

		found, err := svc.FindNovelByID(ctx, "21714")
		require.NoError(t, err)
		assert.Equal(t, "Staff Life (Revised)", found.Title)
		assert.Len(t, found.Chapters, 1)

		var chapterCount int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chapters").Scan(&chapterCount))
		assert.Equal(t, 1, chapterCount)
	})

	t.Run("stores a novel without chapters", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewNovelService(db)
		ctx := context.Background()
		novel := testNovel("1")
		novel.Chapters = nil

		require.NoError(t, svc.SaveNovel(ctx, novel))

		found, err := svc.FindNovelByID(ctx, "1")
		require.NoError(t, err)
		assert.Empty(t, found.Chapters)
	})

	t.Run("rejects an invalid novel", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewNovelService(db)
		novel := testNovel("21714")
		novel.Title = ""

		err := svc.SaveNovel(context.Background(), novel)

		require.Error(t, err)
		assert.Equal(t, novelfetch.EINVALID, novelfetch.ErrorCode(err))
	})
}

func TestNovelService_FindNovelByID(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND for an unknown novel", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewNovelService(setupTestDB(t))

		_, err := svc.FindNovelByID(context.Background(), "404")

		require.Error(t, err)
		assert.Equal(t, novelfetch.ENOTFOUND, novelfetch.ErrorCode(err))
	})

	t.Run("returns EINTERNAL when stored content was altered", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewNovelService(db)
		ctx := context.Background()
		require.NoError(t, svc.SaveNovel(ctx, testNovel("21714")))

		_, err := db.ExecContext(ctx, "UPDATE chapters SET content = '<p>Tampered</p>' WHERE number = 7")
		require.NoError(t, err)

		_, err = svc.FindNovelByID(ctx, "21714")

		require.Error(t, err)
		assert.Equal(t, novelfetch.EINTERNAL, novelfetch.ErrorCode(err))
		assert.Contains(t, novelfetch.ErrorMessage(err), "chapter 7")
	})
}

func TestNovelService_FindNovels(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) *sqlite.NovelService {
		t.Helper()
		svc := sqlite.NewNovelService(setupTestDB(t))
		for _, id := range []string{"300", "100", "200"} {
			require.NoError(t, svc.SaveNovel(context.Background(), testNovel(id)))
		}
		return svc
	}

	t.Run("returns novels ordered by novel ID with chapters", func(t *testing.T) {
		t.Parallel()

		novels, err := seed(t).FindNovels(context.Background(), novelfetch.NovelFilter{})

		require.NoError(t, err)
		require.Len(t, novels, 3)
		assert.Equal(t, "100", novels[0].NovelID)
		assert.Equal(t, "200", novels[1].NovelID)
		assert.Equal(t, "300", novels[2].NovelID)
		assert.Len(t, novels[0].Chapters, 3)
	})

	tests := []struct {
		filter novelfetch.NovelFilter
		want   []string
	}{
		{filter: novelfetch.NovelFilter{Limit: 2}, want: []string{"100", "200"}},
		{filter: novelfetch.NovelFilter{Limit: 1, Offset: 1}, want: []string{"200"}},
		{filter: novelfetch.NovelFilter{Offset: 2}, want: []string{"300"}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("paginates with limit %d offset %d", tt.filter.Limit, tt.filter.Offset), func(t *testing.T) {
			t.Parallel()

			novels, err := seed(t).FindNovels(context.Background(), tt.filter)

			require.NoError(t, err)
			var got []string
			for _, n := range novels {
				got = append(got, n.NovelID)
			}
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("returns no novels from an empty library", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewNovelService(setupTestDB(t))

		novels, err := svc.FindNovels(context.Background(), novelfetch.NovelFilter{})

		require.NoError(t, err)
		assert.Empty(t, novels)
	})
}

func TestNovelService_DeleteNovel(t *testing.T) {
	t.Parallel()

	t.Run("removes the novel and its chapters", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewNovelService(db)
		ctx := context.Background()
		require.NoError(t, svc.SaveNovel(ctx, testNovel("21714")))

		require.NoError(t, svc.DeleteNovel(ctx, "21714"))

		_, err := svc.FindNovelByID(ctx, "21714")
		assert.Equal(t, novelfetch.ENOTFOUND, novelfetch.ErrorCode(err))

		var chapterCount int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chapters").Scan(&chapterCount))
		assert.Zero(t, chapterCount)
	})

	t.Run("returns ENOTFOUND for an unknown novel", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewNovelService(setupTestDB(t))

		err := svc.DeleteNovel(context.Background(), "404")

		require.Error(t, err)
		assert.Equal(t, novelfetch.ENOTFOUND, novelfetch.ErrorCode(err))
	})
}
