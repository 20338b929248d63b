// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package stats

import (
	"context"
	"log/slog"
)

// # Service Layer

// Service orchestrates the visit counter.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService constructs a new stats [Service].
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

/*
RecordVisit counts a visitor once per guard window and returns the total.

Description: The first sighting of a visitor increments the counter;
repeats only read it. Every failure degrades instead of surfacing: a
failed increment falls back to a plain read, a failed read falls back to
zero. The visitor always gets a number to display.

Parameters:
  - context: context.Context
  - visitorID: string (an opaque per-session identifier from the client)

Returns:
  - int64: The visit total to display, possibly stale
*/
func (service *Service) RecordVisit(context context.Context, visitorID string) int64 {
	first, err := service.store.MarkSeen(context, visitorID, seenWindow)
	if err != nil {
		service.logger.Warn("visit_guard_failed", slog.String("error", err.Error()))
		return service.readTotal(context)
	}

	if !first {
		return service.readTotal(context)
	}

	total, err := service.store.Increment(context)
	if err != nil {
		service.logger.Warn("visit_increment_failed", slog.String("error", err.Error()))
		return service.readTotal(context)
	}

	return total
}

// Total reads the current count for display.
func (service *Service) Total(context context.Context) int64 {
	return service.readTotal(context)
}

func (service *Service) readTotal(context context.Context) int64 {
	total, err := service.store.Total(context)
	if err != nil {
		service.logger.Warn("visit_read_failed", slog.String("error", err.Error()))
		return 0
	}
	return total
}
