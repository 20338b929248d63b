// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package category

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhle/folio/internal/platform/apperr"
)

func TestOfflineRepository_ReadsEmptyWithoutError(t *testing.T) {
	repo := NewOfflineRepository()

	categories, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, categories)

	children, err := repo.ListChildren(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, children)

	books, err := repo.ListBooksIn(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, books)

	count, err := repo.CountBooks(context.Background(), "00000000-0000-0000-0000-00000000000a")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestOfflineRepository_MutationsUnavailable(t *testing.T) {
	repo := NewOfflineRepository()

	mutations := map[string]error{
		"create": repo.Create(context.Background(), &Category{Name: "Fiction"}),
		"update": repo.Update(context.Background(), &Category{ID: "00000000-0000-0000-0000-00000000000a"}),
		"delete": repo.Delete(context.Background(), "00000000-0000-0000-0000-00000000000a"),
	}

	for name, err := range mutations {
		appError := apperr.As(err)
		require.NotNil(t, appError, name)
		assert.Equal(t, "SERVICE_UNAVAILABLE", appError.Code, name)
	}
}
