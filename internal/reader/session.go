// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package reader

import (
	"fmt"
	"time"

	"github.com/minhle/folio/internal/render"
)

// # Session State

// Session is the transient state of one open book. It lives in memory for
// the lifetime of the reading view and is never persisted. Every transition
// is a plain method so the engine is testable without HTTP or rendering.
type Session struct {
	ID     string `json:"id"`
	BookID string `json:"book_id"`

	// ActiveChapterID is nil until a chapter is selected.
	ActiveChapterID *string `json:"active_chapter_id,omitempty"`

	SourceURL string     `json:"source_url"`
	Kind      SourceKind `json:"kind"`

	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`

	Scale    float64  `json:"scale"`
	ViewMode ViewMode `json:"view_mode"`

	ContainerWidth  float64 `json:"container_width"`
	ContainerHeight float64 `json:"container_height"`

	Presentation   bool `json:"presentation"`
	SidebarVisible bool `json:"sidebar_visible"`

	Loading   bool    `json:"loading"`
	LastError *string `json:"last_error,omitempty"`

	// PageText is the extracted text of the page tagged by extractedPage.
	PageText string `json:"page_text,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	// defaultSourceURL is the owning book's primary source, kept for the
	// manual recovery action after a load failure.
	defaultSourceURL string

	// extractedPage tags which page PageText belongs to; stale extraction
	// results are discarded by comparing against it.
	extractedPage int

	// document is the open render handle. nil for static images and while
	// loading or failed. Invalidated the instant the source changes.
	document render.Document
}

// defaultContainerWidth seeds geometry until the client reports real
// dimensions through a resize.
const (
	defaultContainerWidth  = 1024.0
	defaultContainerHeight = 768.0
)

// newSession seeds a session for a freshly resolved source.
func newSession(id, bookID string, resolution Resolution) *Session {
	session := &Session{
		ID:              id,
		BookID:          bookID,
		Scale:           1.0,
		ViewMode:        ViewModeSingle,
		ContainerWidth:  defaultContainerWidth,
		ContainerHeight: defaultContainerHeight,
		SidebarVisible:  true,
		CurrentPage:     resolution.TargetPage,
		CreatedAt:       time.Now().UTC(),
	}
	session.adoptSource(resolution)
	return session
}

// adoptSource switches the active document. Extracted text and the open
// handle are invalidated; static images complete instantly with a
// synthesized text layer and a single page.
func (session *Session) adoptSource(resolution Resolution) {
	session.SourceURL = resolution.SourceURL
	session.Kind = resolution.Kind
	session.CurrentPage = resolution.TargetPage
	session.LastError = nil
	session.PageText = ""
	session.extractedPage = 0
	session.document = nil

	if resolution.Kind == KindStaticImage {
		session.TotalPages = 1
		session.CurrentPage = 1
		session.ViewMode = ViewModeSingle
		session.Loading = false
		session.PageText = staticImageText
		session.extractedPage = 1
		return
	}

	session.TotalPages = 0
	session.Loading = true
}

// # Document Lifecycle

// OnDocumentReady records a completed load: page count set, error cleared,
// current page clamped into the new bounds.
func (session *Session) OnDocumentReady(document render.Document) {
	session.document = document
	session.TotalPages = document.PageCount()
	session.Loading = false
	session.LastError = nil

	if session.CurrentPage > session.TotalPages {
		session.CurrentPage = session.TotalPages
	}
	if session.CurrentPage < 1 {
		session.CurrentPage = 1
	}
}

// OnDocumentError records a failed load. The session stays open so the
// caller can retry or reset to the book's default source.
func (session *Session) OnDocumentError(message string) {
	session.Loading = false
	session.document = nil
	session.LastError = &message
}

// # Navigation

/*
Advance moves forward through the document.

Description: No-op at the last page. The step is 2 in spread mode when past
the cover, 1 otherwise, and the result clamps at the total. The cover page
is always shown alone, so stepping from page 1 lands on page 2 and the
spread parity 2-3, 4-5, ... is preserved.

Returns:
  - bool: Whether the current page changed
*/
func (session *Session) Advance() bool {
	if session.CurrentPage >= session.TotalPages {
		return false
	}

	step := 1
	if session.ViewMode == ViewModeSpread && session.CurrentPage > 1 {
		step = 2
	}

	next := session.CurrentPage + step
	if next > session.TotalPages {
		next = session.TotalPages
	}

	session.CurrentPage = next
	return true
}

/*
Retreat moves backward through the document.

Description: No-op at page 1. The step is 2 in spread mode when the current
page is past 2, 1 otherwise, clamped at page 1. The asymmetric boundary
(page > 2 here versus page > 1 in [Session.Advance]) keeps the cover page
from being skipped or duplicated when stepping back onto it.

Returns:
  - bool: Whether the current page changed
*/
func (session *Session) Retreat() bool {
	if session.CurrentPage <= 1 {
		return false
	}

	step := 1
	if session.ViewMode == ViewModeSpread && session.CurrentPage > 2 {
		step = 2
	}

	previous := session.CurrentPage - step
	if previous < 1 {
		previous = 1
	}

	session.CurrentPage = previous
	return true
}

// JumpTo moves directly to a 1-based page, clamped into bounds. Used for
// chapter selection that keeps the current source.
func (session *Session) JumpTo(page int) {
	if page < 1 {
		page = 1
	}
	if session.TotalPages > 0 && page > session.TotalPages {
		page = session.TotalPages
	}
	session.CurrentPage = page
}

// # Zoom

// ZoomIn raises the scale one step, never past the maximum.
func (session *Session) ZoomIn() {
	session.Scale = ClampScale(session.Scale + ZoomStep)
}

// ZoomOut lowers the scale one step, never below the minimum.
func (session *Session) ZoomOut() {
	session.Scale = ClampScale(session.Scale - ZoomStep)
}

// # Geometry & Chrome

// SetContainerSize records the observed container dimensions and applies
// the responsive view-mode switch. Last write wins; there is no queuing.
func (session *Session) SetContainerSize(width, height float64) {
	session.ContainerWidth = width
	session.ContainerHeight = height
	session.ViewMode = AutoViewMode(width, session.Kind)
}

// TogglePresentation flips fullscreen reading. Entering hides the sidebar;
// exiting restores it.
func (session *Session) TogglePresentation() {
	session.Presentation = !session.Presentation
	session.SidebarVisible = !session.Presentation
}

// ToggleSidebar flips the chapter sidebar.
func (session *Session) ToggleSidebar() {
	session.SidebarVisible = !session.SidebarVisible
}

// # Extraction Tagging

// ExtractionTag returns the page number an extraction started now should
// carry. Results are applied only if the tag still matches on completion.
func (session *Session) ExtractionTag() int {
	return session.CurrentPage
}

// ApplyExtraction installs extracted page text unless it is stale. A result
// tagged with a page that is no longer current is discarded so an
// out-of-order completion never overwrites newer state.
func (session *Session) ApplyExtraction(pageTag int, text string) bool {
	if pageTag != session.CurrentPage {
		return false
	}
	session.PageText = text
	session.extractedPage = pageTag
	return true
}

// Document returns the open render handle, nil while loading, failed, or
// for static images.
func (session *Session) Document() render.Document {
	return session.document
}

// # Presentation Helpers

// PageIndicator formats the toolbar page display: "N / T" in single mode,
// "N-M / T" when a spread is active and the right-hand page exists.
func (session *Session) PageIndicator() string {
	if session.TotalPages == 0 {
		return ""
	}

	layout := session.Layout()
	if layout.SpreadActive && len(layout.Pages) == 2 {
		return fmt.Sprintf("%d-%d / %d", session.CurrentPage, session.CurrentPage+1, session.TotalPages)
	}

	return fmt.Sprintf("%d / %d", session.CurrentPage, session.TotalPages)
}

// Layout computes the render geometry for the session's current state.
func (session *Session) Layout() Layout {
	return ComputeLayout(LayoutInput{
		ContainerWidth:  session.ContainerWidth,
		ContainerHeight: session.ContainerHeight,
		Scale:           session.Scale,
		ViewMode:        session.ViewMode,
		CurrentPage:     session.CurrentPage,
		TotalPages:      session.TotalPages,
		Presentation:    session.Presentation,
		Kind:            session.Kind,
	})
}
