// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

/*
Package category manages the shelving hierarchy of the library.

Categories form a forest: every category optionally points at a parent, and
books attach to at most one category. Browsing walks the forest downwards
(children and books of the current node) while breadcrumbs are reconstructed
by walking parent links upwards to a root.

# Core Responsibility

  - Hierarchy: Defines the [Category] entity and its parent link.
  - Navigation: Computes [BrowseResult] views (children, shelved books, breadcrumb).
  - Integrity: Refuses to delete a category that still holds books.

The reader front-end consumes this package read-only; mutations are reserved
for the back-office.
*/
package category

import "time"

// # Core Entities

// Category is a node in the library's shelving forest.
// A nil ParentID marks a root category.
type Category struct {
	ID          string    `json:"id"` // UUIDv7
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	ParentID    *string   `json:"parent_id,omitempty"`
	BookCount   int       `json:"book_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BookEntry is the slim projection of a book shown on browse shelves.
// The full record lives in the book package; browse listings only need
// enough to render a cover tile.
type BookEntry struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Author      string  `json:"author"`
	CoverURL    *string `json:"cover_url,omitempty"`
	ContentType string  `json:"content_type"`
}

// BrowseResult is the complete view of one node in the forest.
type BrowseResult struct {
	// Current is nil when browsing the library root.
	Current    *Category   `json:"current,omitempty"`
	Breadcrumb []*Category `json:"breadcrumb"`
	Children   []*Category `json:"children"`
	Books      []*BookEntry `json:"books"`
}

// # Field Identifiers

const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldParentID    = "parent_id"
)
