// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package category

import (
	"context"

	"github.com/minhle/folio/internal/platform/apperr"
)

// OfflineRepository implements [Repository] when no database is configured.
//
// Reads present an empty library and mutations fail with a stable
// "not configured" error. No network or disk access ever happens, so the
// application still serves its full route surface offline.
type OfflineRepository struct{}

// NewOfflineRepository constructs the no-database category store.
func NewOfflineRepository() *OfflineRepository {
	return &OfflineRepository{}
}

func (repository *OfflineRepository) List(context.Context) ([]*Category, error) {
	return []*Category{}, nil
}

func (repository *OfflineRepository) ListChildren(context.Context, *string) ([]*Category, error) {
	return []*Category{}, nil
}

func (repository *OfflineRepository) FindByID(context.Context, string) (*Category, error) {
	return nil, apperr.NotFound("category")
}

func (repository *OfflineRepository) FindBySlug(context.Context, string) (*Category, error) {
	return nil, apperr.NotFound("category")
}

func (repository *OfflineRepository) ListBooksIn(context.Context, *string) ([]*BookEntry, error) {
	return []*BookEntry{}, nil
}

func (repository *OfflineRepository) CountBooks(context.Context, string) (int, error) {
	return 0, nil
}

func (repository *OfflineRepository) Create(context.Context, *Category) error {
	return errOffline()
}

func (repository *OfflineRepository) Update(context.Context, *Category) error {
	return errOffline()
}

func (repository *OfflineRepository) Delete(context.Context, string) error {
	return errOffline()
}

func errOffline() error {
	return apperr.ServiceUnavailable("The library database is not configured. Set DATABASE_URL to enable catalogue management.")
}
