package category

import "context"

// Repository abstracts persistence for the category forest.
type Repository interface {
	List(context context.Context) ([]*Category, error)
	ListChildren(context context.Context, parentID *string) ([]*Category, error)
	FindByID(context context.Context, id string) (*Category, error)
	FindBySlug(context context.Context, slug string) (*Category, error)
	ListBooksIn(context context.Context, categoryID *string) ([]*BookEntry, error)
	CountBooks(context context.Context, categoryID string) (int, error)
	Create(context context.Context, category *Category) error
	Update(context context.Context, category *Category) error
	Delete(context context.Context, id string) error
}
