// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

/*
Package stats tracks the site visit counter.

A visit is counted at most once per visitor session: the first report from
a visitor increments the global total, repeats within the guard window only
read it back. The counter is best-effort by design; when the backing store
is unreachable the reader still gets a total to display, falling back from
increment to plain read, and to zero as the last resort.
*/
package stats

import (
	"context"
	"time"
)

// seenWindow is how long a visitor's session guard lives: repeat visit
// reports inside the window do not increment the counter again.
const seenWindow = 24 * time.Hour

// Store abstracts the counter's persistence.
type Store interface {
	// MarkSeen records a visitor and reports whether this was the first
	// sighting inside the guard window.
	MarkSeen(context context.Context, visitorID string, window time.Duration) (bool, error)

	// Increment adds one visit and returns the new total.
	Increment(context context.Context) (int64, error)

	// Total reads the current visit count.
	Total(context context.Context) (int64, error)
}
