package book

import "context"

// Repository abstracts persistence for the book catalogue.
type Repository interface {
	List(context context.Context, filter Filter, limit, offset int) ([]*Book, int, error)
	FindByID(context context.Context, id string) (*Book, error)
	FindBySlug(context context.Context, slug string) (*Book, error)
	Create(context context.Context, book *Book) error
	Update(context context.Context, book *Book) error
	Delete(context context.Context, id string) error
}
