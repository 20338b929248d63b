// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

/*
Package book manages the library catalogue of readable documents.

A book points at exactly one primary source (a URL) and carries an ordered
collection of chapters. The reader opens books through this package; the
back-office maintains them.

# Core Responsibility

  - Catalogue: Defines the [Book] entity and its source metadata.
  - Ordering: Guarantees the chapter collection is sorted by page number.
  - Visibility: Hides drafts from the public listing without deleting them.
*/
package book

import (
	"sort"
	"time"
)

// # Content Enums

// ContentType tags the kind of document a book's primary source points at.
type ContentType string

const (
	ContentPDF   ContentType = "pdf"
	ContentImage ContentType = "image"
	ContentAudio ContentType = "audio"
)

// ContentTypes lists every accepted tag, for validation.
var ContentTypes = []string{string(ContentPDF), string(ContentImage), string(ContentAudio)}

// # Core Entities

// Book is one library entry: a document plus its chapter jump targets.
type Book struct {
	ID          string      `json:"id"` // UUIDv7
	Title       string      `json:"title"`
	Slug        string      `json:"slug"`
	Author      string      `json:"author"`
	URL         string      `json:"url"`
	CoverURL    *string     `json:"cover_url,omitempty"`
	CategoryID  *string     `json:"category_id,omitempty"`
	ContentType ContentType `json:"content_type"`
	IsVisible   bool        `json:"is_visible"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	// Chapters is sorted ascending by page number whenever the book is
	// loaded or mutated. Consumers may rely on the order.
	Chapters []Chapter `json:"chapters,omitempty"`
}

// Chapter is the embedded projection of a chapter used when a book is
// hydrated for the reader. The chapter package owns the full lifecycle.
type Chapter struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	PageNumber  int     `json:"page_number"`
	OverrideURL *string `json:"override_url,omitempty"`
}

// SortChapters restores the ascending page-number order in place.
func (book *Book) SortChapters() {
	sort.SliceStable(book.Chapters, func(i, j int) bool {
		return book.Chapters[i].PageNumber < book.Chapters[j].PageNumber
	})
}

// # Search & Filtering

// Filter holds parameters for listing the catalogue.
type Filter struct {
	Query      string  `json:"q"`
	CategoryID *string `json:"category_id"`

	// IncludeHidden is set only on back-office listings.
	IncludeHidden bool `json:"-"`
}

// # Field Identifiers

const (
	FieldTitle       = "title"
	FieldAuthor      = "author"
	FieldURL         = "url"
	FieldCoverURL    = "cover_url"
	FieldContentType = "content_type"
	FieldCategoryID  = "category_id"
)
