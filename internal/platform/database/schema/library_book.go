// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

// Package schema centralizes table and column identifiers for SQL queries.
//
// Repositories compose statements from these definitions instead of inline
// string literals, so a schema rename touches exactly one file.
package schema

// LibraryBookTable represents the 'library.book' table
type LibraryBookTable struct {
	Table       string
	ID          string
	Title       string
	Slug        string
	Author      string
	URL         string
	CoverURL    string
	CategoryID  string
	ContentType string
	IsVisible   string
	CreatedAt   string
	UpdatedAt   string
}

// LibraryBook is the schema definition for library.book
var LibraryBook = LibraryBookTable{
	Table:       "library.book",
	ID:          "id",
	Title:       "title",
	Slug:        "slug",
	Author:      "author",
	URL:         "url",
	CoverURL:    "coverurl",
	CategoryID:  "categoryid",
	ContentType: "contenttype",
	IsVisible:   "isvisible",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t LibraryBookTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Slug, t.Author, t.URL, t.CoverURL,
		t.CategoryID, t.ContentType, t.IsVisible, t.CreatedAt, t.UpdatedAt,
	}
}
