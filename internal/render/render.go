// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

/*
Package render is the document rendering primitive behind the reader.

It turns a source URL into a page-addressable [Document]: the reader asks it
for the page count when a session opens and for per-page text whenever the
assistant needs grounding. Rendering to pixels happens client-side; the
server's responsibility ends at structure and text.

# Core Responsibility

  - Loading: Fetches and validates the document behind a source URL.
  - Paging: Reports the total page count for pagination.
  - Extraction: Produces best-effort plain text for a single page.
*/
package render

import "context"

// Document is an open, page-addressable document handle.
//
// A handle belongs to the source it was loaded from and must be dropped the
// moment the session switches sources.
type Document interface {
	// PageCount reports the total number of pages, always >= 1.
	PageCount() int

	// ExtractPageText returns best-effort plain text for a 1-based page.
	// Callers treat failures as non-fatal; extraction exists only to feed
	// the assistant.
	ExtractPageText(context context.Context, pageNumber int) (string, error)
}

// Renderer opens documents for the reader.
type Renderer interface {
	// LoadDocument fetches the source URL and returns an open handle.
	LoadDocument(context context.Context, sourceURL string) (Document, error)
}
