// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package schema

// LibraryCategoryTable represents the 'library.category' table
type LibraryCategoryTable struct {
	Table       string
	ID          string
	Name        string
	Slug        string
	Description string
	ParentID    string
	CreatedAt   string
	UpdatedAt   string
}

// LibraryCategory is the schema definition for library.category
var LibraryCategory = LibraryCategoryTable{
	Table:       "library.category",
	ID:          "id",
	Name:        "name",
	Slug:        "slug",
	Description: "description",
	ParentID:    "parentid",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t LibraryCategoryTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Slug, t.Description, t.ParentID, t.CreatedAt, t.UpdatedAt,
	}
}
