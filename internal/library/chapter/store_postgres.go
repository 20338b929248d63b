// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package chapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minhle/folio/internal/platform/database/schema"
	"github.com/minhle/folio/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed chapter store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var chapterColumns = strings.Join(schema.LibraryChapter.Columns(), ", ")

// ListByBook returns a book's chapters ordered ascending by page number.
func (repository *PostgresRepository) ListByBook(context context.Context, bookID string) ([]*Chapter, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC",
		chapterColumns, schema.LibraryChapter.Table,
		schema.LibraryChapter.BookID, schema.LibraryChapter.PageNumber,
	)

	rows, err := repository.db.Query(context, query, bookID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_chapters")
	}
	defer rows.Close()

	chapters := []*Chapter{}
	for rows.Next() {
		chapter := &Chapter{}
		err := rows.Scan(
			&chapter.ID, &chapter.BookID, &chapter.Title, &chapter.PageNumber,
			&chapter.OverrideURL, &chapter.CreatedAt, &chapter.UpdatedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_chapter")
		}
		chapters = append(chapters, chapter)
	}

	return chapters, nil
}

// FindByID retrieves a single chapter record by its primary key.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Chapter, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		chapterColumns, schema.LibraryChapter.Table, schema.LibraryChapter.ID,
	)

	chapter := &Chapter{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&chapter.ID, &chapter.BookID, &chapter.Title, &chapter.PageNumber,
		&chapter.OverrideURL, &chapter.CreatedAt, &chapter.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_chapter_by_id")
	}
	return chapter, nil
}

// Create inserts a new chapter record.
func (repository *PostgresRepository) Create(context context.Context, chapter *Chapter) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING createdat, updatedat`,
		schema.LibraryChapter.Table, chapterColumns,
	)

	err := repository.db.QueryRow(context, query,
		chapter.ID, chapter.BookID, chapter.Title, chapter.PageNumber, chapter.OverrideURL,
	).Scan(&chapter.CreatedAt, &chapter.UpdatedAt)

	return dberr.Wrap(err, "create_chapter")
}

// Update modifies a chapter's metadata.
func (repository *PostgresRepository) Update(context context.Context, chapter *Chapter) error {
	const query = `
		UPDATE library.chapter
		SET
			title = COALESCE(NULLIF($2, ''), title),
			pagenumber = CASE WHEN $3 > 0 THEN $3 ELSE pagenumber END,
			overrideurl = $4,
			updatedat = NOW()
		WHERE id = $1
		RETURNING bookid, title, pagenumber, updatedat
	`
	err := repository.db.QueryRow(context, query,
		chapter.ID, chapter.Title, chapter.PageNumber, chapter.OverrideURL,
	).Scan(&chapter.BookID, &chapter.Title, &chapter.PageNumber, &chapter.UpdatedAt)

	return dberr.Wrap(err, "update_chapter")
}

// Delete removes a chapter row.
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
		schema.LibraryChapter.Table, schema.LibraryChapter.ID)
	_, err := repository.db.Exec(context, query, id)
	return dberr.Wrap(err, "delete_chapter")
}
