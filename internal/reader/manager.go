// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package reader

import (
	"sync"

	"github.com/minhle/folio/internal/platform/apperr"
)

// Manager owns every live reader session. Sessions are transient in-memory
// state: they are created when a book is opened, dropped when the reader
// closes, and never persisted.
//
// Each session is exclusively owned by one reading view; the manager's lock
// serializes the occasional cross-goroutine touch (navigation versus a
// completing text extraction) rather than providing general shared access.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager constructs an empty session manager.
func NewManager() *Manager {
	return &Manager{
		sessions: map[string]*Session{},
	}
}

// Put registers a session under its ID.
func (manager *Manager) Put(session *Session) {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.sessions[session.ID] = session
}

// With runs fn against a live session while holding the manager lock.
// All session mutation goes through here so transitions stay serialized.
func (manager *Manager) With(id string, fn func(session *Session) error) error {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	session, ok := manager.sessions[id]
	if !ok {
		return apperr.NotFound("reader session")
	}

	return fn(session)
}

// Delete drops a session. Unknown IDs are ignored; closing twice is fine.
func (manager *Manager) Delete(id string) {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	delete(manager.sessions, id)
}

// Len reports the number of live sessions, for health reporting.
func (manager *Manager) Len() int {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	return len(manager.sessions)
}
