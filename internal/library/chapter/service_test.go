// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package chapter

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhle/folio/internal/platform/apperr"
	"github.com/minhle/folio/pkg/pointer"
)

type fakeRepository struct {
	chapters map[string]*Chapter
	deleted  []string
}

func newFakeRepository(chapters ...*Chapter) *fakeRepository {
	repo := &fakeRepository{chapters: map[string]*Chapter{}}
	for _, chapter := range chapters {
		repo.chapters[chapter.ID] = chapter
	}
	return repo
}

func (repo *fakeRepository) ListByBook(_ context.Context, bookID string) ([]*Chapter, error) {
	matched := []*Chapter{}
	for _, chapter := range repo.chapters {
		if chapter.BookID == bookID {
			matched = append(matched, chapter)
		}
	}
	return matched, nil
}

func (repo *fakeRepository) FindByID(_ context.Context, id string) (*Chapter, error) {
	chapter, ok := repo.chapters[id]
	if !ok {
		return nil, apperr.NotFound("chapter")
	}
	return chapter, nil
}

func (repo *fakeRepository) Create(_ context.Context, chapter *Chapter) error {
	repo.chapters[chapter.ID] = chapter
	return nil
}

func (repo *fakeRepository) Update(_ context.Context, chapter *Chapter) error {
	repo.chapters[chapter.ID] = chapter
	return nil
}

func (repo *fakeRepository) Delete(_ context.Context, id string) error {
	delete(repo.chapters, id)
	repo.deleted = append(repo.deleted, id)
	return nil
}

func testService(repo Repository) *Service {
	return NewService(repo, slog.New(slog.DiscardHandler))
}

func TestCreateChapter_DefaultsToFirstPage(t *testing.T) {
	repo := newFakeRepository()
	service := testService(repo)

	input := &Chapter{
		BookID: "00000000-0000-0000-0000-00000000000a",
		Title:  "Prologue",
	}
	require.NoError(t, service.CreateChapter(context.Background(), input))

	assert.NotEmpty(t, input.ID)
	assert.Equal(t, 1, input.PageNumber)
}

func TestCreateChapter_RequiresTitleAndBook(t *testing.T) {
	service := testService(newFakeRepository())

	err := service.CreateChapter(context.Background(), &Chapter{})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
}

func TestCreateChapter_RejectsPageBeyondCap(t *testing.T) {
	service := testService(newFakeRepository())

	err := service.CreateChapter(context.Background(), &Chapter{
		BookID:     "00000000-0000-0000-0000-00000000000a",
		Title:      "Appendix Z",
		PageNumber: maxTargetPage + 1,
	})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
}

func TestCreateChapter_RejectsMalformedOverrideURL(t *testing.T) {
	service := testService(newFakeRepository())

	err := service.CreateChapter(context.Background(), &Chapter{
		BookID:      "00000000-0000-0000-0000-00000000000a",
		Title:       "Annex",
		OverrideURL: pointer.To("not a url"),
	})
	require.Error(t, err)
}

func TestUpdateChapter_PartialFieldsSkipCreateRules(t *testing.T) {
	existing := &Chapter{
		ID:         "00000000-0000-0000-0000-0000000000aa",
		BookID:     "00000000-0000-0000-0000-00000000000a",
		Title:      "Chapter One",
		PageNumber: 4,
	}
	repo := newFakeRepository(existing)
	service := testService(repo)

	// An update carries only the changed fields; empty title and book id
	// must not trip the creation requirements.
	require.NoError(t, service.UpdateChapter(context.Background(), &Chapter{
		ID:         existing.ID,
		PageNumber: 9,
	}))
}

func TestDeleteChapter_RemovesTarget(t *testing.T) {
	existing := &Chapter{
		ID:     "00000000-0000-0000-0000-0000000000aa",
		BookID: "00000000-0000-0000-0000-00000000000a",
		Title:  "Chapter One",
	}
	repo := newFakeRepository(existing)
	service := testService(repo)

	require.NoError(t, service.DeleteChapter(context.Background(), existing.ID))
	assert.Equal(t, []string{existing.ID}, repo.deleted)

	_, err := service.GetChapter(context.Background(), existing.ID)
	require.Error(t, err)
}
