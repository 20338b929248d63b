// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package book

import (
	"context"
	"log/slog"

	"github.com/minhle/folio/internal/platform/validate"
	"github.com/minhle/folio/pkg/slug"
	"github.com/minhle/folio/pkg/uuid"
)

// # Service Layer

// Service orchestrates business rules for the book catalogue.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new book [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Catalogue Reads

/*
ListBooks retrieves a paginated and filtered slice of the catalogue.

Parameters:
  - context: context.Context
  - filter: Filter (IncludeHidden is honored only for back-office callers)
  - limit, offset: int

Returns:
  - []*Book: List of books without chapters
  - int: Total matching count
  - error: Retrieval errors
*/
func (service *Service) ListBooks(context context.Context, filter Filter, limit, offset int) ([]*Book, int, error) {
	return service.repo.List(context, filter, limit, offset)
}

/*
GetBook retrieves a fully hydrated book by its UUID or slug, chapters
included and sorted ascending by page number.

Parameters:
  - context: context.Context
  - identifier: string

Returns:
  - *Book: Hydrated book entity
  - error: ErrNotFound if missing
*/
func (service *Service) GetBook(context context.Context, identifier string) (*Book, error) {
	var (
		found *Book
		err   error
	)

	// Discriminator: ID vs Slug
	// UUIDs have a fixed length of 36 characters in standard hyphenated format.
	if len(identifier) == 36 {
		found, err = service.repo.FindByID(context, identifier)
	} else {
		found, err = service.repo.FindBySlug(context, identifier)
	}
	if err != nil {
		return nil, err
	}

	found.SortChapters()
	return found, nil
}

// # Back-Office Mutations

/*
CreateBook registers a new document in the catalogue.

Parameters:
  - context: context.Context
  - book: *Book (Title and URL required; ContentType one of pdf/image/audio)

Returns:
  - error: Validation or persistence failures
*/
func (service *Service) CreateBook(context context.Context, book *Book) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, book.Title).MaxLen(FieldTitle, book.Title, 300)
	validator.Required(FieldURL, book.URL).URL(FieldURL, book.URL)
	validator.OneOf(FieldContentType, string(book.ContentType), ContentTypes...)

	if book.CoverURL != nil && *book.CoverURL != "" {
		validator.URL(FieldCoverURL, *book.CoverURL)
	}
	if book.CategoryID != nil {
		validator.UUID(FieldCategoryID, *book.CategoryID)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	book.ID = uuid.New()
	book.Slug = slug.From(book.Title)

	if err := service.repo.Create(context, book); err != nil {
		return err
	}

	service.logger.Info("book_created",
		slog.String("book_id", book.ID),
		slog.String("slug", book.Slug),
		slog.String("content_type", string(book.ContentType)),
	)

	return nil
}

/*
UpdateBook modifies catalogue metadata for an existing book.

Parameters:
  - context: context.Context
  - book: *Book (partial; zero values leave fields untouched)

Returns:
  - error: Validation or persistence failures
*/
func (service *Service) UpdateBook(context context.Context, book *Book) error {
	validator := &validate.Validator{}
	if book.Title != "" {
		validator.MaxLen(FieldTitle, book.Title, 300)
	}
	if book.URL != "" {
		validator.URL(FieldURL, book.URL)
	}
	if book.ContentType != "" {
		validator.OneOf(FieldContentType, string(book.ContentType), ContentTypes...)
	}
	if book.CoverURL != nil && *book.CoverURL != "" {
		validator.URL(FieldCoverURL, *book.CoverURL)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Update(context, book); err != nil {
		return err
	}

	book.SortChapters()

	service.logger.Info("book_updated", slog.String("book_id", book.ID))

	return nil
}

// DeleteBook removes a book and, through the schema's cascade, its chapters.
func (service *Service) DeleteBook(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("book_deleted", slog.String("book_id", id))

	return nil
}
