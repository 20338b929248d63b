// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package chapter

import (
	"context"
	"log/slog"

	"github.com/minhle/folio/internal/platform/validate"
	"github.com/minhle/folio/pkg/uuid"
)

// maxTargetPage bounds chapter jump targets. Documents this long do not
// occur in practice; the cap catches fat-fingered page numbers.
const maxTargetPage = 100000

// # Service Layer

// Service orchestrates business rules for chapter jump targets.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new chapter [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListChapters returns a book's chapters sorted ascending by page number.
func (service *Service) ListChapters(context context.Context, bookID string) ([]*Chapter, error) {
	return service.repo.ListByBook(context, bookID)
}

// GetChapter retrieves a single chapter by its UUID.
func (service *Service) GetChapter(context context.Context, id string) (*Chapter, error) {
	return service.repo.FindByID(context, id)
}

/*
CreateChapter adds a jump target to a book.

Parameters:
  - context: context.Context
  - chapter: *Chapter (BookID, Title required; PageNumber 1-based)

Returns:
  - error: Validation or persistence failures
*/
func (service *Service) CreateChapter(context context.Context, chapter *Chapter) error {
	if err := service.validate(chapter, true); err != nil {
		return err
	}

	chapter.ID = uuid.New()
	if chapter.PageNumber == 0 {
		chapter.PageNumber = 1
	}

	if err := service.repo.Create(context, chapter); err != nil {
		return err
	}

	service.logger.Info("chapter_created",
		slog.String("chapter_id", chapter.ID),
		slog.String("book_id", chapter.BookID),
		slog.Int("page_number", chapter.PageNumber),
	)

	return nil
}

// UpdateChapter modifies an existing jump target.
func (service *Service) UpdateChapter(context context.Context, chapter *Chapter) error {
	if err := service.validate(chapter, false); err != nil {
		return err
	}

	if err := service.repo.Update(context, chapter); err != nil {
		return err
	}

	service.logger.Info("chapter_updated", slog.String("chapter_id", chapter.ID))

	return nil
}

// DeleteChapter removes a jump target.
func (service *Service) DeleteChapter(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("chapter_deleted", slog.String("chapter_id", id))

	return nil
}

func (service *Service) validate(chapter *Chapter, creating bool) error {
	validator := &validate.Validator{}

	if creating {
		validator.Required(FieldTitle, chapter.Title)
		validator.UUID(FieldBookID, chapter.BookID)
	}
	if chapter.Title != "" {
		validator.MaxLen(FieldTitle, chapter.Title, 300)
	}
	if chapter.PageNumber != 0 {
		validator.Range(FieldPageNumber, chapter.PageNumber, 1, maxTargetPage)
	}
	if chapter.OverrideURL != nil && *chapter.OverrideURL != "" {
		validator.URL(FieldOverrideURL, *chapter.OverrideURL)
	}

	return validator.Err()
}
