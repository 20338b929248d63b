// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package book

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhle/folio/internal/platform/apperr"
)

func TestOfflineRepository_ReadsEmptyWithoutError(t *testing.T) {
	repo := NewOfflineRepository()

	books, total, err := repo.List(context.Background(), Filter{}, 1, 20)
	require.NoError(t, err)
	assert.Empty(t, books)
	assert.Zero(t, total)

	_, err = repo.FindByID(context.Background(), "00000000-0000-0000-0000-00000000000a")
	require.NotNil(t, apperr.As(err))
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestOfflineRepository_MutationsUnavailable(t *testing.T) {
	repo := NewOfflineRepository()

	mutations := map[string]error{
		"create": repo.Create(context.Background(), &Book{Title: "Moby-Dick"}),
		"update": repo.Update(context.Background(), &Book{ID: "00000000-0000-0000-0000-00000000000a"}),
		"delete": repo.Delete(context.Background(), "00000000-0000-0000-0000-00000000000a"),
	}

	for name, err := range mutations {
		appError := apperr.As(err)
		require.NotNil(t, appError, name)
		assert.Equal(t, "SERVICE_UNAVAILABLE", appError.Code, name)
	}
}
