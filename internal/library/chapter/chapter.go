// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

/*
Package chapter manages jump targets within library books.

A chapter names a 1-based page inside its owning book's document. When a
chapter carries an override URL the reader switches to that document instead
of the book's primary source; without one the chapter is a plain page jump.
*/
package chapter

import "time"

// Chapter is a named jump target within a [Book].
type Chapter struct {
	ID     string `json:"id"` // UUIDv7
	BookID string `json:"book_id"`
	Title  string `json:"title"`

	// PageNumber is 1-based within the owning document.
	PageNumber int `json:"page_number"`

	// OverrideURL, when set, replaces the book's primary source for this
	// chapter. Absent means the chapter reads from the owning book.
	OverrideURL *string `json:"override_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldTitle       = "title"
	FieldPageNumber  = "page_number"
	FieldOverrideURL = "override_url"
	FieldBookID      = "book_id"
)
