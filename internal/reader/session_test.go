// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package reader

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDocument satisfies render.Document for state-machine tests.
type stubDocument struct {
	pages int
}

func (document *stubDocument) PageCount() int { return document.pages }

func (document *stubDocument) ExtractPageText(context.Context, int) (string, error) {
	return "", nil
}

func paginatedSession(totalPages, currentPage int, mode ViewMode) *Session {
	session := newSession("s1", "b1", Resolution{
		SourceURL:  "https://files.folio.app/walden.pdf",
		Kind:       KindPaginated,
		TargetPage: currentPage,
	})
	session.OnDocumentReady(&stubDocument{pages: totalPages})
	session.CurrentPage = currentPage
	session.ViewMode = mode
	return session
}

// # Navigation

func TestAdvance_SingleMode(t *testing.T) {
	session := paginatedSession(10, 1, ViewModeSingle)

	require.True(t, session.Advance())
	assert.Equal(t, 2, session.CurrentPage)
}

func TestAdvance_SpreadParityFromCover(t *testing.T) {
	session := paginatedSession(10, 1, ViewModeSpread)

	// The cover steps by 1 so the spread parity 2-3, 4-5, ... is established.
	require.True(t, session.Advance())
	assert.Equal(t, 2, session.CurrentPage)

	require.True(t, session.Advance())
	assert.Equal(t, 4, session.CurrentPage)
}

func TestAdvance_ClampsAtTotal(t *testing.T) {
	session := paginatedSession(10, 9, ViewModeSpread)

	require.True(t, session.Advance())
	assert.Equal(t, 10, session.CurrentPage)

	assert.False(t, session.Advance(), "advance at the last page is a no-op")
	assert.Equal(t, 10, session.CurrentPage)
}

func TestRetreat_SpreadParity(t *testing.T) {
	session := paginatedSession(10, 4, ViewModeSpread)

	require.True(t, session.Retreat())
	assert.Equal(t, 2, session.CurrentPage)

	// From page 2 the step shrinks to 1 so the cover is not skipped.
	require.True(t, session.Retreat())
	assert.Equal(t, 1, session.CurrentPage)

	assert.False(t, session.Retreat(), "retreat at page 1 is a no-op")
}

func TestAdvanceRetreat_RoundTripsInSpreadMode(t *testing.T) {
	for _, startPage := range []int{2, 3, 4, 5, 6, 7} {
		session := paginatedSession(20, startPage, ViewModeSpread)

		require.True(t, session.Advance())
		require.True(t, session.Retreat())
		assert.Equal(t, startPage, session.CurrentPage, "round trip from page %d", startPage)
	}
}

func TestJumpTo_Clamps(t *testing.T) {
	session := paginatedSession(10, 1, ViewModeSingle)

	session.JumpTo(42)
	assert.Equal(t, 10, session.CurrentPage)

	session.JumpTo(-3)
	assert.Equal(t, 1, session.CurrentPage)

	session.JumpTo(7)
	assert.Equal(t, 7, session.CurrentPage)
}

// # Zoom

func TestZoom_IdempotentAtBoundaries(t *testing.T) {
	session := paginatedSession(10, 1, ViewModeSingle)

	for range 40 {
		session.ZoomIn()
	}
	assert.InDelta(t, ZoomMax, session.Scale, 0.0001)

	for range 80 {
		session.ZoomOut()
	}
	assert.InDelta(t, ZoomMin, session.Scale, 0.0001)
}

// # Geometry

func TestSetContainerSize_SwitchesViewModeAtBreakpoint(t *testing.T) {
	session := paginatedSession(10, 5, ViewModeSingle)

	session.SetContainerSize(1400, 900)
	assert.Equal(t, ViewModeSpread, session.ViewMode)

	session.SetContainerSize(1000, 900)
	assert.Equal(t, ViewModeSingle, session.ViewMode)
}

func TestSetContainerSize_StaticImageStaysSingle(t *testing.T) {
	session := newSession("s1", "b1", Resolution{
		SourceURL:  "https://files.folio.app/cover.jpg",
		Kind:       KindStaticImage,
		TargetPage: 1,
	})

	session.SetContainerSize(1600, 900)
	assert.Equal(t, ViewModeSingle, session.ViewMode)
}

// # Chrome

func TestTogglePresentation_HidesAndRestoresSidebar(t *testing.T) {
	session := paginatedSession(10, 1, ViewModeSingle)
	require.True(t, session.SidebarVisible)

	session.TogglePresentation()
	assert.True(t, session.Presentation)
	assert.False(t, session.SidebarVisible)

	session.TogglePresentation()
	assert.False(t, session.Presentation)
	assert.True(t, session.SidebarVisible)
}

// # Source Adoption

func TestAdoptSource_StaticImageCompletesImmediately(t *testing.T) {
	session := paginatedSession(10, 5, ViewModeSpread)

	session.adoptSource(Resolution{
		SourceURL:  "https://files.folio.app/plate.png",
		Kind:       KindStaticImage,
		TargetPage: 1,
	})

	assert.False(t, session.Loading)
	assert.Equal(t, 1, session.TotalPages)
	assert.Equal(t, 1, session.CurrentPage)
	assert.Equal(t, ViewModeSingle, session.ViewMode)
	assert.Equal(t, staticImageText, session.PageText)
	assert.Nil(t, session.Document())
}

func TestAdoptSource_PaginatedInvalidatesTextAndHandle(t *testing.T) {
	session := paginatedSession(10, 5, ViewModeSingle)
	session.ApplyExtraction(5, "old page text")

	session.adoptSource(Resolution{
		SourceURL:  "https://files.folio.app/appendix.pdf",
		Kind:       KindPaginated,
		TargetPage: 1,
	})

	assert.True(t, session.Loading)
	assert.Empty(t, session.PageText)
	assert.Nil(t, session.Document())
	assert.Equal(t, 0, session.TotalPages)
}

func TestOnDocumentError_KeepsSessionOpen(t *testing.T) {
	session := newSession("s1", "b1", Resolution{
		SourceURL:  "https://files.folio.app/missing.pdf",
		Kind:       KindPaginated,
		TargetPage: 1,
	})

	session.OnDocumentError("the document could not be downloaded")

	assert.False(t, session.Loading)
	require.NotNil(t, session.LastError)
	assert.Contains(t, *session.LastError, "could not be downloaded")
}

// # Extraction Tagging

func TestApplyExtraction_DiscardsStaleResults(t *testing.T) {
	session := paginatedSession(10, 3, ViewModeSingle)

	staleTag := session.ExtractionTag()
	session.JumpTo(5)
	freshTag := session.ExtractionTag()

	require.True(t, session.ApplyExtraction(freshTag, "page five text"))
	assert.False(t, session.ApplyExtraction(staleTag, "page three text"),
		"an extraction for a page that is no longer current must be discarded")
	assert.Equal(t, "page five text", session.PageText)
}

// # Page Indicator

func TestPageIndicator(t *testing.T) {
	single := paginatedSession(10, 4, ViewModeSingle)
	assert.Equal(t, "4 / 10", single.PageIndicator())

	spread := paginatedSession(10, 4, ViewModeSpread)
	spread.SetContainerSize(1400, 900)
	assert.Equal(t, "4-5 / 10", spread.PageIndicator())

	lastPage := paginatedSession(10, 10, ViewModeSpread)
	lastPage.SetContainerSize(1400, 900)
	assert.Equal(t, "10 / 10", lastPage.PageIndicator())

	loading := newSession("s1", "b1", Resolution{
		SourceURL: "https://files.folio.app/walden.pdf", Kind: KindPaginated, TargetPage: 1,
	})
	assert.Empty(t, loading.PageIndicator())
}
