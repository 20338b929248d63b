// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minhle/folio/internal/platform/database/schema"
	"github.com/minhle/folio/internal/platform/dberr"
)

var categoryColumns = strings.Join(schema.LibraryCategory.Columns(), ", ")

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed category store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Forest Retrieval

// List returns every category with its direct book count.
func (repository *PostgresRepository) List(context context.Context) ([]*Category, error) {
	const query = `
		SELECT
			c.id, c.name, c.slug, c.description, c.parentid,
			COUNT(b.id) AS bookcount,
			c.createdat, c.updatedat
		FROM library.category c
		LEFT JOIN library.book b ON b.categoryid = c.id
		GROUP BY c.id
		ORDER BY c.name ASC
	`
	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	return scanCategories(rows)
}

// ListChildren returns the direct children of a node.
// A nil parentID selects root categories.
func (repository *PostgresRepository) ListChildren(context context.Context, parentID *string) ([]*Category, error) {
	const query = `
		SELECT
			c.id, c.name, c.slug, c.description, c.parentid,
			COUNT(b.id) AS bookcount,
			c.createdat, c.updatedat
		FROM library.category c
		LEFT JOIN library.book b ON b.categoryid = c.id
		WHERE c.parentid IS NOT DISTINCT FROM $1
		GROUP BY c.id
		ORDER BY c.name ASC
	`
	rows, err := repository.db.Query(context, query, parentID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_category_children")
	}
	defer rows.Close()

	return scanCategories(rows)
}

// FindByID retrieves a single category record by its primary key.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Category, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		categoryColumns, schema.LibraryCategory.Table, schema.LibraryCategory.ID,
	)
	category := &Category{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&category.ID, &category.Name, &category.Slug, &category.Description,
		&category.ParentID, &category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_category_by_id")
	}
	return category, nil
}

// FindBySlug retrieves a category by its unique URL slug.
func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Category, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		categoryColumns, schema.LibraryCategory.Table, schema.LibraryCategory.Slug,
	)
	category := &Category{}
	err := repository.db.QueryRow(context, query, slug).Scan(
		&category.ID, &category.Name, &category.Slug, &category.Description,
		&category.ParentID, &category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_category_by_slug")
	}
	return category, nil
}

// ListBooksIn returns the visible books shelved directly on a node.
// A nil categoryID selects unshelved books (the root shelf).
func (repository *PostgresRepository) ListBooksIn(context context.Context, categoryID *string) ([]*BookEntry, error) {
	const query = `
		SELECT id, title, slug, author, coverurl, contenttype
		FROM library.book
		WHERE categoryid IS NOT DISTINCT FROM $1 AND isvisible = TRUE
		ORDER BY title ASC
	`
	rows, err := repository.db.Query(context, query, categoryID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_books_in_category")
	}
	defer rows.Close()

	books := []*BookEntry{}
	for rows.Next() {
		entry := &BookEntry{}
		err := rows.Scan(&entry.ID, &entry.Title, &entry.Slug, &entry.Author, &entry.CoverURL, &entry.ContentType)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_book_entry")
		}
		books = append(books, entry)
	}

	return books, nil
}

// CountBooks returns the number of books shelved directly on a category.
func (repository *PostgresRepository) CountBooks(context context.Context, categoryID string) (int, error) {
	const query = `SELECT COUNT(*) FROM library.book WHERE categoryid = $1`

	var total int
	if err := repository.db.QueryRow(context, query, categoryID).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_category_books")
	}
	return total, nil
}

// # Forest Mutation

// Create inserts a new category record.
func (repository *PostgresRepository) Create(context context.Context, category *Category) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING createdat, updatedat`,
		schema.LibraryCategory.Table, categoryColumns,
	)
	err := repository.db.QueryRow(context, query,
		category.ID, category.Name, category.Slug, category.Description, category.ParentID,
	).Scan(&category.CreatedAt, &category.UpdatedAt)

	return dberr.Wrap(err, "create_category")
}

// Update modifies category metadata fields.
func (repository *PostgresRepository) Update(context context.Context, category *Category) error {
	const query = `
		UPDATE library.category
		SET name = COALESCE(NULLIF($2, ''), name), description = $3, updatedat = NOW()
		WHERE id = $1
		RETURNING name, slug, updatedat
	`
	err := repository.db.QueryRow(context, query, category.ID, category.Name, category.Description).
		Scan(&category.Name, &category.Slug, &category.UpdatedAt)
	return dberr.Wrap(err, "update_category")
}

// Delete removes a category row. The service guarantees the shelf is empty.
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
		schema.LibraryCategory.Table, schema.LibraryCategory.ID)
	_, err := repository.db.Exec(context, query, id)
	return dberr.Wrap(err, "delete_category")
}

// # Scan Helpers

type categoryRows interface {
	Next() bool
	Scan(dest ...any) error
}

func scanCategories(rows categoryRows) ([]*Category, error) {
	categories := []*Category{}
	for rows.Next() {
		category := &Category{}
		err := rows.Scan(
			&category.ID, &category.Name, &category.Slug, &category.Description,
			&category.ParentID, &category.BookCount, &category.CreatedAt, &category.UpdatedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, category)
	}
	return categories, nil
}
