package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/novelfetch"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ novelfetch.NovelService = (*NovelService)(nil)

// NovelService implements novelfetch.NovelService using SQLite.
type NovelService struct {
	db *DB
}

// NewNovelService creates a new NovelService.
func NewNovelService(db *DB) *NovelService {
	return &NovelService{db: db}
}

// SaveNovel stores a novel and its chapters in one transaction, replacing
// any previous copy with the same NovelID.
func (s *NovelService) SaveNovel(ctx context.Context, novel *novelfetch.Novel) error {
	if err := novel.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM novels WHERE novel_id = ?", novel.NovelID); err != nil {
		return err
	}

	id := uuid.New().String()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO novels (id, novel_id, title, url, saved_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, novel.NovelID, novel.Title, novel.URL, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	for i, ch := range novel.Chapters {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO chapters (id, novel_id, position, number, title, url, content, content_hash)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), id, i, ch.Number, ch.Title, ch.URL, ch.Content, hashContent(ch.Content)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindNovelByID retrieves a novel by its source NovelID.
func (s *NovelService) FindNovelByID(ctx context.Context, novelID string) (*novelfetch.Novel, error) {
	var id string
	var novel novelfetch.Novel

	err := s.db.QueryRowContext(ctx, `
		SELECT id, novel_id, title, url
		FROM novels
		WHERE novel_id = ?
	`, novelID).Scan(&id, &novel.NovelID, &novel.Title, &novel.URL)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, novelfetch.Errorf(novelfetch.ENOTFOUND, "novel %s not found", novelID)
	}
	if err != nil {
		return nil, err
	}

	novel.Chapters, err = s.findChapters(ctx, id)
	if err != nil {
		return nil, err
	}
	return &novel, nil
}

// FindNovels retrieves stored novels ordered by NovelID.
func (s *NovelService) FindNovels(ctx context.Context, filter novelfetch.NovelFilter) ([]*novelfetch.Novel, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, novel_id, title, url FROM novels ORDER BY novel_id ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}

	// Rows are drained before loading chapters: the pool holds one connection.
	var ids []string
	var novels []*novelfetch.Novel
	for rows.Next() {
		var id string
		var novel novelfetch.Novel
		if err := rows.Scan(&id, &novel.NovelID, &novel.Title, &novel.URL); err != nil {
			rows.Close()
			return nil, err
		}
		ids = append(ids, id)
		novels = append(novels, &novel)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i, novel := range novels {
		if novel.Chapters, err = s.findChapters(ctx, ids[i]); err != nil {
			return nil, err
		}
	}
	return novels, nil
}

// DeleteNovel removes a novel and its chapters.
func (s *NovelService) DeleteNovel(ctx context.Context, novelID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM novels WHERE novel_id = ?", novelID)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return novelfetch.Errorf(novelfetch.ENOTFOUND, "novel %s not found", novelID)
	}
	return nil
}

// findChapters loads the chapters of a novel row in stored order and
// verifies each content hash.
func (s *NovelService) findChapters(ctx context.Context, id string) ([]novelfetch.Chapter, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT number, title, url, content, content_hash
		FROM chapters
		WHERE novel_id = ?
		ORDER BY position ASC
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chapters := []novelfetch.Chapter{}
	for rows.Next() {
		var ch novelfetch.Chapter
		var hash string
		if err := rows.Scan(&ch.Number, &ch.Title, &ch.URL, &ch.Content, &hash); err != nil {
			return nil, err
		}
		if hashContent(ch.Content) != hash {
			return nil, novelfetch.Errorf(novelfetch.EINTERNAL, "chapter %d content hash mismatch", ch.Number)
		}
		chapters = append(chapters, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading chapters: %w", err)
	}
	return chapters, nil
}
