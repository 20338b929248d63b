// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package book

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minhle/folio/internal/platform/database/schema"
	"github.com/minhle/folio/internal/platform/dberr"
)

var bookColumns = strings.Join(schema.LibraryBook.Columns(), ", ")

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed book store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Catalogue Retrieval

/*
List returns a filtered and paginated slice of the catalogue.

Description: Uses ILIKE for title/author search and COUNT(*) OVER() for
total metadata. Chapters are not hydrated on listings.

Parameters:
  - context: context.Context
  - filter: Filter
  - limit, offset: int

Returns:
  - []*Book: Slice of matching books
  - int: Total record count
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Book, int, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf(
		"SELECT %s, COUNT(*) OVER() as total FROM %s WHERE 1=1",
		bookColumns, schema.LibraryBook.Table,
	))

	args := []any{}
	argID := 1

	if !filter.IncludeHidden {
		queryBuilder.WriteString(" AND isvisible = TRUE")
	}

	if filter.Query != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND (title ILIKE $%d OR author ILIKE $%d)", argID, argID))
		args = append(args, "%"+filter.Query+"%")
		argID++
	}

	if filter.CategoryID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND categoryid = $%d", argID))
		args = append(args, *filter.CategoryID)
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY title ASC LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_books")
	}
	defer rows.Close()

	var books []*Book
	var total int
	for rows.Next() {
		entry := &Book{}
		err := rows.Scan(
			&entry.ID, &entry.Title, &entry.Slug, &entry.Author, &entry.URL, &entry.CoverURL, &entry.CategoryID,
			&entry.ContentType, &entry.IsVisible, &entry.CreatedAt, &entry.UpdatedAt, &total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_book")
		}
		books = append(books, entry)
	}

	return books, total, nil
}

// FindByID retrieves a single book with its chapters hydrated.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Book, error) {
	return repository.findOne(context, "id = $1", id, "get_book_by_id")
}

// FindBySlug retrieves a book by its unique URL slug, chapters hydrated.
func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Book, error) {
	return repository.findOne(context, "slug = $1", slug, "get_book_by_slug")
}

func (repository *PostgresRepository) findOne(context context.Context, predicate, argument, operation string) (*Book, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s",
		bookColumns, schema.LibraryBook.Table, predicate,
	)

	found := &Book{}
	err := repository.db.QueryRow(context, query, argument).Scan(
		&found.ID, &found.Title, &found.Slug, &found.Author, &found.URL, &found.CoverURL, &found.CategoryID,
		&found.ContentType, &found.IsVisible, &found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, operation)
	}

	if err := repository.hydrateChapters(context, found); err != nil {
		return nil, err
	}

	return found, nil
}

// hydrateChapters loads the book's chapters ordered ascending by page number.
func (repository *PostgresRepository) hydrateChapters(context context.Context, book *Book) error {
	query := fmt.Sprintf(
		"SELECT %s, %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC",
		schema.LibraryChapter.ID, schema.LibraryChapter.Title,
		schema.LibraryChapter.PageNumber, schema.LibraryChapter.OverrideURL,
		schema.LibraryChapter.Table, schema.LibraryChapter.BookID,
		schema.LibraryChapter.PageNumber,
	)
	rows, err := repository.db.Query(context, query, book.ID)
	if err != nil {
		return dberr.Wrap(err, "list_book_chapters")
	}
	defer rows.Close()

	for rows.Next() {
		chapter := Chapter{}
		if err := rows.Scan(&chapter.ID, &chapter.Title, &chapter.PageNumber, &chapter.OverrideURL); err != nil {
			return dberr.Wrap(err, "scan_book_chapter")
		}
		book.Chapters = append(book.Chapters, chapter)
	}

	return nil
}

// # Catalogue Mutation

// Create inserts a new book record.
func (repository *PostgresRepository) Create(context context.Context, book *Book) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING createdat, updatedat`,
		schema.LibraryBook.Table, bookColumns,
	)
	err := repository.db.QueryRow(context, query,
		book.ID, book.Title, book.Slug, book.Author, book.URL, book.CoverURL, book.CategoryID,
		book.ContentType, book.IsVisible,
	).Scan(&book.CreatedAt, &book.UpdatedAt)

	return dberr.Wrap(err, "create_book")
}

// Update modifies book metadata fields. Empty strings leave text columns
// untouched so partial PATCH payloads round-trip cleanly.
func (repository *PostgresRepository) Update(context context.Context, book *Book) error {
	const query = `
		UPDATE library.book
		SET
			title = COALESCE(NULLIF($2, ''), title),
			author = COALESCE(NULLIF($3, ''), author),
			url = COALESCE(NULLIF($4, ''), url),
			coverurl = COALESCE($5, coverurl),
			categoryid = COALESCE($6, categoryid),
			contenttype = COALESCE(NULLIF($7, ''), contenttype),
			isvisible = $8,
			updatedat = NOW()
		WHERE id = $1
		RETURNING title, slug, author, url, contenttype, updatedat
	`
	err := repository.db.QueryRow(context, query,
		book.ID, book.Title, book.Author, book.URL, book.CoverURL, book.CategoryID,
		string(book.ContentType), book.IsVisible,
	).Scan(&book.Title, &book.Slug, &book.Author, &book.URL, &book.ContentType, &book.UpdatedAt)

	return dberr.Wrap(err, "update_book")
}

// Delete removes a book row; chapters follow via ON DELETE CASCADE.
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
		schema.LibraryBook.Table, schema.LibraryBook.ID)
	_, err := repository.db.Exec(context, query, id)
	return dberr.Wrap(err, "delete_book")
}
