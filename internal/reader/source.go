// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

/*
Package reader implements the document reading engine.

A reader session is the server-side state of one open book: active source,
current page, zoom, view mode, and container geometry. The package is split
along the engine's seams:

  - source.go: classifies sources and resolves which document is active.
  - layout.go: pure render-geometry math for the current page or spread.
  - session.go: the state machine driven by navigation and layout events.
  - manager.go: ownership and lookup of live sessions.
  - service.go / http.go: orchestration and the HTTP surface.
*/
package reader

import (
	"strings"

	"github.com/minhle/folio/internal/library/book"
)

// # Source Classification

// SourceKind tags how the active document is rendered.
type SourceKind string

const (
	// KindPaginated marks a document with addressable pages.
	KindPaginated SourceKind = "paginated-document"

	// KindStaticImage marks a single-page raster image.
	KindStaticImage SourceKind = "static-image"
)

// staticImageExtensions is the raster extension set that forces
// [KindStaticImage]. Matching is case-insensitive.
var staticImageExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"webp": true,
	"gif":  true,
	"bmp":  true,
}

// staticImageText is synthesized for image sources, which carry no
// extractable text layer.
const staticImageText = "This page is a static image; it has no extractable text."

/*
Classify determines the [SourceKind] of a source reference.

Description: Total over every string input. The trailing path segment is
inspected with the query string and fragment stripped, so "cover.JPG?v=2"
classifies as a static image. Anything without a known raster extension is
treated as a paginated document.
*/
func Classify(reference string) SourceKind {
	trimmed := reference
	if cut := strings.IndexAny(trimmed, "?#"); cut >= 0 {
		trimmed = trimmed[:cut]
	}

	if slash := strings.LastIndexByte(trimmed, '/'); slash >= 0 {
		trimmed = trimmed[slash+1:]
	}

	dot := strings.LastIndexByte(trimmed, '.')
	if dot < 0 || dot == len(trimmed)-1 {
		return KindPaginated
	}

	extension := strings.ToLower(trimmed[dot+1:])
	if staticImageExtensions[extension] {
		return KindStaticImage
	}

	return KindPaginated
}

// # Source Resolution

// Resolution is the outcome of picking the active document for a session.
type Resolution struct {
	SourceURL string
	Kind      SourceKind

	// TargetPage is the 1-based page the session should land on.
	TargetPage int

	// SourceChanged reports whether the active document differs from the
	// one currently open, which invalidates extracted text and the
	// document handle.
	SourceChanged bool
}

/*
Resolve picks the active source for a book and an optional chapter.

Description: A chapter with an override URL replaces the active source and
jumps to the chapter's target page. A chapter without one keeps the current
source, provided it is already the book's primary source, and only moves the
page. With no chapter at all the book's primary source opens at page 1.

Parameters:
  - owner: *book.Book (the opened book)
  - selected: *book.Chapter (nil when opening the book directly)
  - currentURL: string (the session's active source, empty on first open)

Returns:
  - Resolution: Active source, kind, landing page, and change flag
*/
func Resolve(owner *book.Book, selected *book.Chapter, currentURL string) Resolution {
	if selected == nil {
		return Resolution{
			SourceURL:     owner.URL,
			Kind:          Classify(owner.URL),
			TargetPage:    1,
			SourceChanged: currentURL != owner.URL,
		}
	}

	targetPage := selected.PageNumber
	if targetPage < 1 {
		targetPage = 1
	}

	if selected.OverrideURL != nil && *selected.OverrideURL != "" {
		override := *selected.OverrideURL
		return Resolution{
			SourceURL:     override,
			Kind:          Classify(override),
			TargetPage:    targetPage,
			SourceChanged: currentURL != override,
		}
	}

	return Resolution{
		SourceURL:     owner.URL,
		Kind:          Classify(owner.URL),
		TargetPage:    targetPage,
		SourceChanged: currentURL != owner.URL,
	}
}
