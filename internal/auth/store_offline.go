// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

package auth

import (
	"context"
	"time"

	"github.com/minhle/folio/internal/platform/apperr"
)

// # Offline Fallbacks

// errAccountsOffline is returned by every account mutation when the server
// runs without a database. The reader itself stays fully usable.
func errAccountsOffline() error {
	return apperr.ServiceUnavailable("Accounts are not available because the database is not configured.").
		WithRemediation("Set DATABASE_URL to enable registration and login.")
}

// OfflineUserRepository satisfies [UserRepository] when no database is configured.
type OfflineUserRepository struct{}

func (OfflineUserRepository) FindByID(context.Context, string) (*User, error) {
	return nil, apperr.NotFound("Account not found")
}

func (OfflineUserRepository) FindByEmail(context.Context, string) (*User, error) {
	return nil, apperr.NotFound("Account not found with this email")
}

func (OfflineUserRepository) FindByUsername(context.Context, string) (*User, error) {
	return nil, apperr.NotFound("Account not found with this username")
}

func (OfflineUserRepository) Create(context.Context, *User) error { return errAccountsOffline() }

func (OfflineUserRepository) UpdatePassword(context.Context, string, string) error {
	return errAccountsOffline()
}

func (OfflineUserRepository) MarkVerified(context.Context, string) error {
	return errAccountsOffline()
}

// OfflineSessionRepository satisfies [SessionRepository] when no database is configured.
type OfflineSessionRepository struct{}

func (OfflineSessionRepository) Create(context.Context, *Session) error {
	return errAccountsOffline()
}

func (OfflineSessionRepository) FindByTokenHash(context.Context, string) (*Session, error) {
	return nil, apperr.NotFound("Session not found or expired")
}

func (OfflineSessionRepository) Revoke(context.Context, string) error     { return nil }
func (OfflineSessionRepository) RevokeAll(context.Context, string) error  { return nil }
func (OfflineSessionRepository) DeleteExpired(context.Context) error      { return nil }
func (OfflineSessionRepository) RevokeOthers(context.Context, string, string) error {
	return nil
}

// DisabledTokenRepository satisfies [TokenRepository] when no volatile store
// is configured. Sets succeed silently; lookups never match, so recovery
// flows degrade to "invalid token" instead of failing hard.
type DisabledTokenRepository struct{}

func (DisabledTokenRepository) Set(context.Context, string, string, time.Duration) error {
	return nil
}

func (DisabledTokenRepository) Get(context.Context, string) (string, error) {
	return "", apperr.NotFound("Token is invalid or expired")
}

func (DisabledTokenRepository) Delete(context.Context, string) error { return nil }
