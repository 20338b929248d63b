package chapter

import "context"

// Repository abstracts persistence for chapter jump targets.
type Repository interface {
	ListByBook(context context.Context, bookID string) ([]*Chapter, error)
	FindByID(context context.Context, id string) (*Chapter, error)
	Create(context context.Context, chapter *Chapter) error
	Update(context context.Context, chapter *Chapter) error
	Delete(context context.Context, id string) error
}
