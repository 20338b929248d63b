// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # SQLSTATE Classification
//
// Beyond the usual not-found mapping, this package inspects the Postgres
// SQLSTATE of failed statements. A known class of admin-form failures — a
// column missing from the deployed schema — is surfaced with the exact
// corrective ALTER TABLE statement so an operator can fix it in place.
package dberr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/minhle/folio/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// missingColumnRemediations maps known missing-column failures to the exact
// corrective DDL. Keyed by the column name reported in the Postgres error.
var missingColumnRemediations = map[string]string{
	"coverurl":    `ALTER TABLE library.book ADD COLUMN coverurl TEXT;`,
	"contenttype": `ALTER TABLE library.book ADD COLUMN contenttype TEXT NOT NULL DEFAULT 'pdf';`,
	"isvisible":   `ALTER TABLE library.book ADD COLUMN isvisible BOOLEAN NOT NULL DEFAULT TRUE;`,
	"overrideurl": `ALTER TABLE library.chapter ADD COLUMN overrideurl TEXT;`,
}

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. SQLSTATE classification
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return apperr.Conflict("A record with the same identity already exists")

		case pgerrcode.ForeignKeyViolation:
			return apperr.Conflict("The operation violates a reference to another record")

		case pgerrcode.UndefinedColumn:
			// Admin mutation against a stale schema. Surface the corrective
			// statement when the offending column is one we know about.
			appError := apperr.Unprocessable(
				fmt.Sprintf("The database schema is missing a column required by %s", action),
			)
			appError.Cause = err
			if fix, ok := missingColumnRemediations[missingColumn(pgErr)]; ok {
				appError.WithRemediation(fix)
			}
			return appError
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// missingColumn extracts the offending column name from an undefined-column
// error. Postgres reports it in ColumnName for some statement shapes and only
// inside the quoted message for others.
func missingColumn(pgErr *pgconn.PgError) string {
	if pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}
	for column := range missingColumnRemediations {
		if strings.Contains(pgErr.Message, `"`+column+`"`) {
			return column
		}
	}
	return ""
}
