// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package reader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhle/folio/internal/library/book"
	"github.com/minhle/folio/internal/platform/apperr"
	"github.com/minhle/folio/internal/render"
	"github.com/minhle/folio/pkg/pointer"
)

// fakeDocument serves canned page text.
type fakeDocument struct {
	pages int
}

func (document *fakeDocument) PageCount() int { return document.pages }

func (document *fakeDocument) ExtractPageText(_ context.Context, pageNumber int) (string, error) {
	return fmt.Sprintf("text of page %d", pageNumber), nil
}

// fakeRenderer serves documents per source URL and fails unknown ones.
type fakeRenderer struct {
	documents map[string]render.Document
}

func (renderer *fakeRenderer) LoadDocument(_ context.Context, sourceURL string) (render.Document, error) {
	if document, ok := renderer.documents[sourceURL]; ok {
		return document, nil
	}
	return nil, errors.New("the document could not be downloaded")
}

// fakeBooks serves a fixed catalogue by ID or slug.
type fakeBooks struct {
	books map[string]*book.Book
}

func (source *fakeBooks) GetBook(_ context.Context, identifier string) (*book.Book, error) {
	if found, ok := source.books[identifier]; ok {
		return found, nil
	}
	return nil, apperr.NotFound("book")
}

func testReader(owner *book.Book, documents map[string]render.Document) *Service {
	return NewService(
		&fakeBooks{books: map[string]*book.Book{owner.ID: owner, owner.Slug: owner}},
		&fakeRenderer{documents: documents},
		NewManager(),
		slog.New(slog.DiscardHandler),
	)
}

func waldenBook() *book.Book {
	return &book.Book{
		ID:   "00000000-0000-0000-0000-00000000000b",
		Slug: "walden",
		URL:  "https://files.folio.app/walden.pdf",
		Chapters: []book.Chapter{
			{ID: "ch-5", Title: "Solitude", PageNumber: 5},
			{ID: "ch-alt", Title: "Appendix", PageNumber: 1, OverrideURL: pointer.To("https://files.folio.app/appendix.pdf")},
		},
	}
}

func TestOpen_PaginatedBook(t *testing.T) {
	owner := waldenBook()
	service := testReader(owner, map[string]render.Document{
		owner.URL: &fakeDocument{pages: 10},
	})

	view, err := service.Open(context.Background(), "walden", nil)
	require.NoError(t, err)

	assert.Equal(t, 1, view.Session.CurrentPage)
	assert.Equal(t, 10, view.Session.TotalPages)
	assert.Equal(t, KindPaginated, view.Session.Kind)
	assert.False(t, view.Session.Loading)
	assert.Nil(t, view.Session.LastError)
	assert.Equal(t, "1 / 10", view.PageIndicator)
}

func TestOpen_StaticImageCompletesWithoutRenderer(t *testing.T) {
	owner := waldenBook()
	owner.URL = "https://files.folio.app/cover.jpg"

	// No documents registered: a renderer call would fail the load.
	service := testReader(owner, map[string]render.Document{})

	view, err := service.Open(context.Background(), owner.ID, nil)
	require.NoError(t, err)

	assert.Equal(t, KindStaticImage, view.Session.Kind)
	assert.Equal(t, 1, view.Session.TotalPages)
	assert.False(t, view.Session.Loading)
	assert.Nil(t, view.Session.LastError)
	assert.Equal(t, staticImageText, view.Session.PageText)
}

func TestOpen_LoadFailureLeavesSessionOpen(t *testing.T) {
	owner := waldenBook()
	service := testReader(owner, map[string]render.Document{})

	view, err := service.Open(context.Background(), owner.ID, nil)
	require.NoError(t, err, "a load failure is session state, not a request error")

	require.NotNil(t, view.Session.LastError)
	assert.False(t, view.Session.Loading)

	// Manual recovery: reset to the default source once it is reachable.
	_, err = service.ResetToDefaultSource(context.Background(), view.Session.ID)
	require.NoError(t, err)
}

func TestOpen_UnknownBook(t *testing.T) {
	owner := waldenBook()
	service := testReader(owner, map[string]render.Document{})

	_, err := service.Open(context.Background(), "no-such-book", nil)
	require.Error(t, err)
}

func TestSelectChapter_OverrideSwitchesSource(t *testing.T) {
	owner := waldenBook()
	service := testReader(owner, map[string]render.Document{
		owner.URL:                              &fakeDocument{pages: 10},
		"https://files.folio.app/appendix.pdf": &fakeDocument{pages: 4},
	})

	view, err := service.Open(context.Background(), owner.ID, nil)
	require.NoError(t, err)

	view, err = service.SelectChapter(context.Background(), view.Session.ID, "ch-alt")
	require.NoError(t, err)

	assert.Equal(t, "https://files.folio.app/appendix.pdf", view.Session.SourceURL)
	assert.Equal(t, 4, view.Session.TotalPages)
	assert.Equal(t, 1, view.Session.CurrentPage)
	require.NotNil(t, view.Session.ActiveChapterID)
	assert.Equal(t, "ch-alt", *view.Session.ActiveChapterID)
}

func TestEndToEnd_TenPageSpreadScenario(t *testing.T) {
	owner := waldenBook()
	service := testReader(owner, map[string]render.Document{
		owner.URL: &fakeDocument{pages: 10},
	})

	// Open on a chapter targeting page 5 with no override: same source,
	// page moves.
	view, err := service.Open(context.Background(), owner.ID, pointer.To("ch-5"))
	require.NoError(t, err)
	assert.Equal(t, 5, view.Session.CurrentPage)
	assert.Equal(t, owner.URL, view.Session.SourceURL)
	assert.Equal(t, ViewModeSingle, view.Session.ViewMode)

	// Resize past the breakpoint: spread mode kicks in.
	view, err = service.Resize(context.Background(), view.Session.ID, 1400, 900)
	require.NoError(t, err)
	assert.Equal(t, ViewModeSpread, view.Session.ViewMode)

	// Advance from page 5: step 2, showing the 7-8 spread.
	view, err = service.Advance(context.Background(), view.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, view.Session.CurrentPage)
	assert.Equal(t, "7-8 / 10", view.PageIndicator)

	// Two more advances: 9, then clamp at 10 with the spread suppressed.
	view, err = service.Advance(context.Background(), view.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, view.Session.CurrentPage)

	view, err = service.Advance(context.Background(), view.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, view.Session.CurrentPage)
	assert.Equal(t, "10 / 10", view.PageIndicator)
	require.Len(t, view.Layout.Pages, 1)
}

func TestNavigation_RefreshesPageText(t *testing.T) {
	owner := waldenBook()
	service := testReader(owner, map[string]render.Document{
		owner.URL: &fakeDocument{pages: 10},
	})

	view, err := service.Open(context.Background(), owner.ID, nil)
	require.NoError(t, err)
	sessionID := view.Session.ID

	require.Eventually(t, func() bool {
		text, err := service.PageText(context.Background(), sessionID)
		return err == nil && text == "text of page 1"
	}, time.Second, 5*time.Millisecond)

	_, err = service.Advance(context.Background(), sessionID)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		text, err := service.PageText(context.Background(), sessionID)
		return err == nil && text == "text of page 2"
	}, time.Second, 5*time.Millisecond)
}

func TestClose_Idempotent(t *testing.T) {
	owner := waldenBook()
	service := testReader(owner, map[string]render.Document{
		owner.URL: &fakeDocument{pages: 10},
	})

	view, err := service.Open(context.Background(), owner.ID, nil)
	require.NoError(t, err)

	service.Close(context.Background(), view.Session.ID)
	service.Close(context.Background(), view.Session.ID)

	_, err = service.Get(context.Background(), view.Session.ID)
	require.Error(t, err)
}
