// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package stats

import (
	"context"
	"time"
)

// NoopStore implements [Store] when no cache is configured. Nothing is
// counted and the total always reads zero.
type NoopStore struct{}

// NewNoopStore constructs the no-cache visit counter.
func NewNoopStore() *NoopStore {
	return &NoopStore{}
}

func (NoopStore) MarkSeen(context.Context, string, time.Duration) (bool, error) {
	return false, nil
}

func (NoopStore) Increment(context.Context) (int64, error) {
	return 0, nil
}

func (NoopStore) Total(context.Context) (int64, error) {
	return 0, nil
}
