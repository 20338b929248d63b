// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package stats

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeStore struct {
	seen       map[string]bool
	total      int64
	markErr    error
	incrErr    error
	totalErr   error
	increments int
}

func newFakeStore() *fakeStore {
	return &fakeStore{seen: map[string]bool{}}
}

func (store *fakeStore) MarkSeen(_ context.Context, visitorID string, _ time.Duration) (bool, error) {
	if store.markErr != nil {
		return false, store.markErr
	}
	if store.seen[visitorID] {
		return false, nil
	}
	store.seen[visitorID] = true
	return true, nil
}

func (store *fakeStore) Increment(_ context.Context) (int64, error) {
	if store.incrErr != nil {
		return 0, store.incrErr
	}
	store.increments++
	store.total++
	return store.total, nil
}

func (store *fakeStore) Total(_ context.Context) (int64, error) {
	if store.totalErr != nil {
		return 0, store.totalErr
	}
	return store.total, nil
}

func newTestService(store Store) *Service {
	return NewService(store, slog.New(slog.DiscardHandler))
}

func TestRecordVisit_FirstSightingIncrements(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)

	total := service.RecordVisit(context.Background(), "visitor-a")

	assert.Equal(t, int64(1), total)
	assert.Equal(t, 1, store.increments)
}

func TestRecordVisit_RepeatVisitorReadsOnly(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)

	service.RecordVisit(context.Background(), "visitor-a")
	total := service.RecordVisit(context.Background(), "visitor-a")

	assert.Equal(t, int64(1), total)
	assert.Equal(t, 1, store.increments)
}

func TestRecordVisit_DistinctVisitorsEachCount(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)

	service.RecordVisit(context.Background(), "visitor-a")
	total := service.RecordVisit(context.Background(), "visitor-b")

	assert.Equal(t, int64(2), total)
	assert.Equal(t, 2, store.increments)
}

func TestRecordVisit_GuardFailureFallsBackToRead(t *testing.T) {
	store := newFakeStore()
	store.total = 7
	store.markErr = errors.New("connection refused")
	service := newTestService(store)

	total := service.RecordVisit(context.Background(), "visitor-a")

	assert.Equal(t, int64(7), total)
	assert.Equal(t, 0, store.increments)
}

func TestRecordVisit_IncrementFailureFallsBackToRead(t *testing.T) {
	store := newFakeStore()
	store.total = 3
	store.incrErr = errors.New("connection refused")
	service := newTestService(store)

	total := service.RecordVisit(context.Background(), "visitor-a")

	assert.Equal(t, int64(3), total)
}

func TestRecordVisit_ReadFailureReturnsZero(t *testing.T) {
	store := newFakeStore()
	store.markErr = errors.New("connection refused")
	store.totalErr = errors.New("connection refused")
	service := newTestService(store)

	total := service.RecordVisit(context.Background(), "visitor-a")

	assert.Equal(t, int64(0), total)
}

func TestNoopStore_AlwaysReturnsZero(t *testing.T) {
	service := newTestService(&NoopStore{})

	assert.Equal(t, int64(0), service.RecordVisit(context.Background(), "visitor-a"))
	assert.Equal(t, int64(0), service.Total(context.Background()))
}
