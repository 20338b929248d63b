// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package chapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhle/folio/internal/platform/apperr"
)

func TestOfflineRepository_ReadsEmptyWithoutError(t *testing.T) {
	repo := NewOfflineRepository()

	chapters, err := repo.ListByBook(context.Background(), "00000000-0000-0000-0000-00000000000a")
	require.NoError(t, err)
	assert.Empty(t, chapters)

	_, err = repo.FindByID(context.Background(), "00000000-0000-0000-0000-0000000000aa")
	require.NotNil(t, apperr.As(err))
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestOfflineRepository_MutationsUnavailable(t *testing.T) {
	repo := NewOfflineRepository()

	mutations := map[string]error{
		"create": repo.Create(context.Background(), &Chapter{Title: "Prologue"}),
		"update": repo.Update(context.Background(), &Chapter{ID: "00000000-0000-0000-0000-0000000000aa"}),
		"delete": repo.Delete(context.Background(), "00000000-0000-0000-0000-0000000000aa"),
	}

	for name, err := range mutations {
		appError := apperr.As(err)
		require.NotNil(t, appError, name)
		assert.Equal(t, "SERVICE_UNAVAILABLE", appError.Code, name)
	}
}
