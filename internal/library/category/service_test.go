// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package category

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhle/folio/internal/platform/apperr"
	"github.com/minhle/folio/pkg/pointer"
)

// fakeRepository backs the service with an in-memory forest for tests.
type fakeRepository struct {
	categories map[string]*Category
	books      map[string][]*BookEntry
	bookCounts map[string]int
	deleted    []string
}

func newFakeRepository(categories ...*Category) *fakeRepository {
	repo := &fakeRepository{
		categories: map[string]*Category{},
		books:      map[string][]*BookEntry{},
		bookCounts: map[string]int{},
	}
	for _, category := range categories {
		repo.categories[category.ID] = category
	}
	return repo
}

func (repo *fakeRepository) List(context.Context) ([]*Category, error) {
	all := []*Category{}
	for _, category := range repo.categories {
		all = append(all, category)
	}
	return all, nil
}

func (repo *fakeRepository) ListChildren(_ context.Context, parentID *string) ([]*Category, error) {
	children := []*Category{}
	for _, category := range repo.categories {
		switch {
		case parentID == nil && category.ParentID == nil:
			children = append(children, category)
		case parentID != nil && category.ParentID != nil && *category.ParentID == *parentID:
			children = append(children, category)
		}
	}
	return children, nil
}

func (repo *fakeRepository) FindByID(_ context.Context, id string) (*Category, error) {
	category, ok := repo.categories[id]
	if !ok {
		return nil, apperr.NotFound("category")
	}
	return category, nil
}

func (repo *fakeRepository) FindBySlug(_ context.Context, slug string) (*Category, error) {
	for _, category := range repo.categories {
		if category.Slug == slug {
			return category, nil
		}
	}
	return nil, apperr.NotFound("category")
}

func (repo *fakeRepository) ListBooksIn(_ context.Context, categoryID *string) ([]*BookEntry, error) {
	if categoryID == nil {
		return repo.books[""], nil
	}
	return repo.books[*categoryID], nil
}

func (repo *fakeRepository) CountBooks(_ context.Context, categoryID string) (int, error) {
	return repo.bookCounts[categoryID], nil
}

func (repo *fakeRepository) Create(_ context.Context, category *Category) error {
	repo.categories[category.ID] = category
	return nil
}

func (repo *fakeRepository) Update(_ context.Context, category *Category) error {
	repo.categories[category.ID] = category
	return nil
}

func (repo *fakeRepository) Delete(_ context.Context, id string) error {
	delete(repo.categories, id)
	repo.deleted = append(repo.deleted, id)
	return nil
}

func testService(repo Repository) *Service {
	return NewService(repo, slog.New(slog.DiscardHandler))
}

func TestBrowse_BreadcrumbChain(t *testing.T) {
	fiction := &Category{ID: "00000000-0000-0000-0000-00000000000a", Name: "Fiction", Slug: "fiction"}
	novels := &Category{ID: "00000000-0000-0000-0000-00000000000b", Name: "Novels", Slug: "novels", ParentID: &fiction.ID}
	classics := &Category{ID: "00000000-0000-0000-0000-00000000000c", Name: "Classics", Slug: "classics", ParentID: &novels.ID}

	service := testService(newFakeRepository(fiction, novels, classics))

	result, err := service.Browse(context.Background(), &classics.ID)
	require.NoError(t, err)

	require.Len(t, result.Breadcrumb, 3)
	assert.Equal(t, "Fiction", result.Breadcrumb[0].Name)
	assert.Equal(t, "Novels", result.Breadcrumb[1].Name)
	assert.Equal(t, "Classics", result.Breadcrumb[2].Name)
	assert.Equal(t, classics.ID, result.Current.ID)
}

func TestBrowse_Root(t *testing.T) {
	fiction := &Category{ID: "00000000-0000-0000-0000-00000000000a", Name: "Fiction"}
	novels := &Category{ID: "00000000-0000-0000-0000-00000000000b", Name: "Novels", ParentID: &fiction.ID}

	repo := newFakeRepository(fiction, novels)
	repo.books[""] = []*BookEntry{{ID: "b1", Title: "Unshelved Manual"}}
	service := testService(repo)

	result, err := service.Browse(context.Background(), nil)
	require.NoError(t, err)

	assert.Nil(t, result.Current)
	assert.Empty(t, result.Breadcrumb)
	require.Len(t, result.Children, 1)
	assert.Equal(t, "Fiction", result.Children[0].Name)
	require.Len(t, result.Books, 1)
	assert.Equal(t, "Unshelved Manual", result.Books[0].Title)
}

func TestBrowse_BreadcrumbCappedOnMalformedParents(t *testing.T) {
	// Two categories pointing at each other. The forest is acyclic by
	// construction, so this only happens with corrupted data; the walk must
	// terminate instead of spinning.
	left := &Category{ID: "00000000-0000-0000-0000-00000000000a", Name: "Left"}
	right := &Category{ID: "00000000-0000-0000-0000-00000000000b", Name: "Right", ParentID: &left.ID}
	left.ParentID = &right.ID

	service := testService(newFakeRepository(left, right))

	result, err := service.Browse(context.Background(), &left.ID)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(result.Breadcrumb), maxBreadcrumbDepth+1)
}

func TestDeleteCategory_BlockedByBooks(t *testing.T) {
	shelf := &Category{ID: "00000000-0000-0000-0000-00000000000a", Name: "Poetry"}
	repo := newFakeRepository(shelf)
	repo.bookCounts[shelf.ID] = 3

	service := testService(repo)

	err := service.DeleteCategory(context.Background(), shelf.ID)
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "CONFLICT", appError.Code)
	assert.Empty(t, repo.deleted, "no partial delete may be attempted")
}

func TestDeleteCategory_EmptyShelf(t *testing.T) {
	shelf := &Category{ID: "00000000-0000-0000-0000-00000000000a", Name: "Poetry"}
	repo := newFakeRepository(shelf)

	service := testService(repo)

	require.NoError(t, service.DeleteCategory(context.Background(), shelf.ID))
	assert.Equal(t, []string{shelf.ID}, repo.deleted)
}

func TestCreateCategory_RequiresExistingParent(t *testing.T) {
	service := testService(newFakeRepository())

	err := service.CreateCategory(context.Background(), &Category{
		Name:     "Orphans",
		ParentID: pointer.To("00000000-0000-0000-0000-0000000000ff"),
	})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "NOT_FOUND", appError.Code)
}

func TestCreateCategory_GeneratesSlug(t *testing.T) {
	repo := newFakeRepository()
	service := testService(repo)

	input := &Category{Name: "Science Fiction"}
	require.NoError(t, service.CreateCategory(context.Background(), input))

	assert.NotEmpty(t, input.ID)
	assert.Equal(t, "science-fiction", input.Slug)
}
