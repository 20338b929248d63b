// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package schema

// LibraryChapterTable represents the 'library.chapter' table
type LibraryChapterTable struct {
	Table       string
	ID          string
	BookID      string
	Title       string
	PageNumber  string
	OverrideURL string
	CreatedAt   string
	UpdatedAt   string
}

// LibraryChapter is the schema definition for library.chapter
var LibraryChapter = LibraryChapterTable{
	Table:       "library.chapter",
	ID:          "id",
	BookID:      "bookid",
	Title:       "title",
	PageNumber:  "pagenumber",
	OverrideURL: "overrideurl",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t LibraryChapterTable) Columns() []string {
	return []string{
		t.ID, t.BookID, t.Title, t.PageNumber, t.OverrideURL, t.CreatedAt, t.UpdatedAt,
	}
}
