// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package book

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhle/folio/internal/platform/apperr"
)

type fakeRepository struct {
	byID   map[string]*Book
	bySlug map[string]*Book
}

func newFakeRepository(books ...*Book) *fakeRepository {
	repo := &fakeRepository{byID: map[string]*Book{}, bySlug: map[string]*Book{}}
	for _, entry := range books {
		repo.byID[entry.ID] = entry
		repo.bySlug[entry.Slug] = entry
	}
	return repo
}

func (repo *fakeRepository) List(_ context.Context, filter Filter, _, _ int) ([]*Book, int, error) {
	visible := []*Book{}
	for _, entry := range repo.byID {
		if entry.IsVisible || filter.IncludeHidden {
			visible = append(visible, entry)
		}
	}
	return visible, len(visible), nil
}

func (repo *fakeRepository) FindByID(_ context.Context, id string) (*Book, error) {
	if entry, ok := repo.byID[id]; ok {
		return entry, nil
	}
	return nil, apperr.NotFound("book")
}

func (repo *fakeRepository) FindBySlug(_ context.Context, slug string) (*Book, error) {
	if entry, ok := repo.bySlug[slug]; ok {
		return entry, nil
	}
	return nil, apperr.NotFound("book")
}

func (repo *fakeRepository) Create(_ context.Context, entry *Book) error {
	repo.byID[entry.ID] = entry
	repo.bySlug[entry.Slug] = entry
	return nil
}

func (repo *fakeRepository) Update(_ context.Context, entry *Book) error {
	repo.byID[entry.ID] = entry
	return nil
}

func (repo *fakeRepository) Delete(_ context.Context, id string) error {
	delete(repo.byID, id)
	return nil
}

func testService(repo Repository) *Service {
	return NewService(repo, slog.New(slog.DiscardHandler))
}

func TestGetBook_ChaptersSortedByPageNumber(t *testing.T) {
	entry := &Book{
		ID:   "00000000-0000-0000-0000-00000000000a",
		Slug: "walden",
		Chapters: []Chapter{
			{ID: "c3", Title: "Conclusion", PageNumber: 290},
			{ID: "c1", Title: "Economy", PageNumber: 1},
			{ID: "c2", Title: "Reading", PageNumber: 99},
		},
	}

	service := testService(newFakeRepository(entry))

	found, err := service.GetBook(context.Background(), "walden")
	require.NoError(t, err)

	require.Len(t, found.Chapters, 3)
	assert.Equal(t, "Economy", found.Chapters[0].Title)
	assert.Equal(t, "Reading", found.Chapters[1].Title)
	assert.Equal(t, "Conclusion", found.Chapters[2].Title)
}

func TestCreateBook_RejectsUnknownContentType(t *testing.T) {
	service := testService(newFakeRepository())

	err := service.CreateBook(context.Background(), &Book{
		Title:       "Walden",
		URL:         "https://files.folio.app/walden.epub",
		ContentType: "epub",
	})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
}

func TestCreateBook_GeneratesIdentityAndSlug(t *testing.T) {
	service := testService(newFakeRepository())

	input := &Book{
		Title:       "The Art of Computer Programming",
		Author:      "Donald Knuth",
		URL:         "https://files.folio.app/taocp-vol1.pdf",
		ContentType: ContentPDF,
	}
	require.NoError(t, service.CreateBook(context.Background(), input))

	assert.NotEmpty(t, input.ID)
	assert.Equal(t, "the-art-of-computer-programming", input.Slug)
}

func TestCreateBook_RequiresAbsoluteURL(t *testing.T) {
	service := testService(newFakeRepository())

	err := service.CreateBook(context.Background(), &Book{
		Title:       "Walden",
		URL:         "files/walden.pdf",
		ContentType: ContentPDF,
	})
	require.Error(t, err)
}
