// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package chapter

import (
	"context"

	"github.com/minhle/folio/internal/platform/apperr"
)

// OfflineRepository implements [Repository] when no database is configured.
type OfflineRepository struct{}

// NewOfflineRepository constructs the no-database chapter store.
func NewOfflineRepository() *OfflineRepository {
	return &OfflineRepository{}
}

func (repository *OfflineRepository) ListByBook(context.Context, string) ([]*Chapter, error) {
	return []*Chapter{}, nil
}

func (repository *OfflineRepository) FindByID(context.Context, string) (*Chapter, error) {
	return nil, apperr.NotFound("chapter")
}

func (repository *OfflineRepository) Create(context.Context, *Chapter) error {
	return errOffline()
}

func (repository *OfflineRepository) Update(context.Context, *Chapter) error {
	return errOffline()
}

func (repository *OfflineRepository) Delete(context.Context, string) error {
	return errOffline()
}

func errOffline() error {
	return apperr.ServiceUnavailable("The library database is not configured. Set DATABASE_URL to enable catalogue management.")
}
