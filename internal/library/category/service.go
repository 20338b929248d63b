// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package category

import (
	"context"
	"log/slog"

	"github.com/minhle/folio/internal/platform/apperr"
	"github.com/minhle/folio/internal/platform/validate"
	"github.com/minhle/folio/pkg/slug"
	"github.com/minhle/folio/pkg/uuid"
)

// maxBreadcrumbDepth caps the upward parent walk. The forest is acyclic by
// construction, but a corrupted parent link must not spin the walk forever.
const maxBreadcrumbDepth = 32

// # Service Layer

// Service orchestrates business rules for the shelving hierarchy.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new category [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Navigation

// ListCategories returns the entire forest as a flat list.
func (service *Service) ListCategories(context context.Context) ([]*Category, error) {
	return service.repo.List(context)
}

// GetCategory retrieves a category by its UUID or slug identifier.
func (service *Service) GetCategory(context context.Context, identifier string) (*Category, error) {

	// Discriminator: ID vs Slug
	// UUIDs have a fixed length of 36 characters in standard hyphenated format.
	if len(identifier) == 36 {
		return service.repo.FindByID(context, identifier)
	}

	return service.repo.FindBySlug(context, identifier)
}

/*
Browse computes the library view for one node of the forest.

Description: For the given node (nil = library root) it gathers the child
categories, the books shelved directly on the node, and the breadcrumb trail
from a root down to the node. The breadcrumb is rebuilt on every call by
walking parent links upwards; the walk is capped at [maxBreadcrumbDepth] hops
so malformed parent data degrades to a truncated trail instead of a hang.

Parameters:
  - context: context.Context
  - nodeID: *string (nil for the root shelf)

Returns:
  - *BrowseResult: Children, books, and breadcrumb for the node
  - error: ErrNotFound if the node does not exist
*/
func (service *Service) Browse(context context.Context, nodeID *string) (*BrowseResult, error) {
	result := &BrowseResult{
		Breadcrumb: []*Category{},
	}

	if nodeID != nil {
		current, err := service.repo.FindByID(context, *nodeID)
		if err != nil {
			return nil, err
		}
		result.Current = current

		breadcrumb, err := service.breadcrumbFor(context, current)
		if err != nil {
			return nil, err
		}
		result.Breadcrumb = breadcrumb
	}

	children, err := service.repo.ListChildren(context, nodeID)
	if err != nil {
		return nil, err
	}
	result.Children = children

	books, err := service.repo.ListBooksIn(context, nodeID)
	if err != nil {
		return nil, err
	}
	result.Books = books

	return result, nil
}

// breadcrumbFor walks parent links from the node up to a root and returns
// the trail in root-first order, ending with the node itself.
func (service *Service) breadcrumbFor(context context.Context, node *Category) ([]*Category, error) {
	trail := []*Category{node}

	cursor := node
	for hops := 0; cursor.ParentID != nil; hops++ {
		if hops >= maxBreadcrumbDepth {
			service.logger.Warn("breadcrumb_walk_capped",
				slog.String("category_id", node.ID),
				slog.Int("depth", hops),
			)
			break
		}

		parent, err := service.repo.FindByID(context, *cursor.ParentID)
		if err != nil {
			return nil, err
		}

		trail = append([]*Category{parent}, trail...)
		cursor = parent
	}

	return trail, nil
}

// # Back-Office Mutations

/*
CreateCategory registers a new shelf in the forest.

Parameters:
  - context: context.Context
  - category: *Category (Name required; ParentID optional)

Returns:
  - error: Validation or persistence failures
*/
func (service *Service) CreateCategory(context context.Context, category *Category) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, category.Name).MaxLen(FieldName, category.Name, 120)

	if category.ParentID != nil {
		validator.UUID(FieldParentID, *category.ParentID)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	// Parent must exist before we hang a child off it.
	if category.ParentID != nil {
		if _, err := service.repo.FindByID(context, *category.ParentID); err != nil {
			return err
		}
	}

	category.ID = uuid.New()
	category.Slug = slug.From(category.Name)

	if err := service.repo.Create(context, category); err != nil {
		return err
	}

	service.logger.Info("category_created",
		slog.String("category_id", category.ID),
		slog.String("slug", category.Slug),
	)

	return nil
}

// UpdateCategory modifies the metadata of an existing shelf.
func (service *Service) UpdateCategory(context context.Context, category *Category) error {
	validator := &validate.Validator{}
	if category.Name != "" {
		validator.MaxLen(FieldName, category.Name, 120)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Update(context, category); err != nil {
		return err
	}

	service.logger.Info("category_updated", slog.String("category_id", category.ID))

	return nil
}

/*
DeleteCategory removes an empty shelf from the forest.

Description: A category that still holds books is never deleted, not even
partially. The caller receives a conflict carrying the blocking count so the
back-office can render a confirmation message.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - error: Conflict when books are still shelved here; persistence failures otherwise
*/
func (service *Service) DeleteCategory(context context.Context, id string) error {
	blocked, err := service.repo.CountBooks(context, id)
	if err != nil {
		return err
	}

	if blocked > 0 {
		return apperr.Conflict("This category still contains books. Move or delete them before removing the category.")
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("category_deleted", slog.String("category_id", id))

	return nil
}
