// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package book

import (
	"context"

	"github.com/minhle/folio/internal/platform/apperr"
)

// OfflineRepository implements [Repository] when no database is configured.
// The catalogue reads empty and every mutation fails with a stable
// "not configured" error; no network access is attempted.
type OfflineRepository struct{}

// NewOfflineRepository constructs the no-database book store.
func NewOfflineRepository() *OfflineRepository {
	return &OfflineRepository{}
}

func (repository *OfflineRepository) List(context.Context, Filter, int, int) ([]*Book, int, error) {
	return []*Book{}, 0, nil
}

func (repository *OfflineRepository) FindByID(context.Context, string) (*Book, error) {
	return nil, apperr.NotFound("book")
}

func (repository *OfflineRepository) FindBySlug(context.Context, string) (*Book, error) {
	return nil, apperr.NotFound("book")
}

func (repository *OfflineRepository) Create(context.Context, *Book) error {
	return errOffline()
}

func (repository *OfflineRepository) Update(context.Context, *Book) error {
	return errOffline()
}

func (repository *OfflineRepository) Delete(context.Context, string) error {
	return errOffline()
}

func errOffline() error {
	return apperr.ServiceUnavailable("The library database is not configured. Set DATABASE_URL to enable catalogue management.")
}
