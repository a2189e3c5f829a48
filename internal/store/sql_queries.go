// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"slices"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/griswall/playoff-pool/models"
)

const sessionsTable = "auth_sessions"

// sqlite uses ? placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var sessionColumns = []string{
	"access_token",
	"refresh_token",
	"token_type",
	"expires_at",
	"user_id",
	"user_email",
}

func buildSelectSessionQuery(key string) (string, []any, error) {
	return builder.
		Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"storage_key": key}).
		Limit(1).
		ToSql()
}

// buildUpsertSessionQuery inserts the session under key or replaces the one
// already stored there.
func buildUpsertSessionQuery(key string, s models.Session, now time.Time) (string, []any, error) {
	return builder.
		Insert(sessionsTable).
		Columns(slices.Concat([]string{"storage_key"}, sessionColumns, []string{"updated_at"})...).
		Values(
			key,
			s.AccessToken,
			s.RefreshToken,
			s.TokenType,
			unixOrZero(s.ExpiresAt),
			s.User.ID,
			s.User.Email,
			now.Unix(),
		).
		Suffix(`ON CONFLICT (storage_key) DO UPDATE SET
			access_token = excluded.access_token,
			refresh_token = excluded.refresh_token,
			token_type = excluded.token_type,
			expires_at = excluded.expires_at,
			user_id = excluded.user_id,
			user_email = excluded.user_email,
			updated_at = excluded.updated_at`).
		ToSql()
}

func buildDeleteSessionQuery(key string) (string, []any, error) {
	return builder.
		Delete(sessionsTable).
		Where(sq.Eq{"storage_key": key}).
		ToSql()
}

// unixOrZero stores an unknown expiry as 0.
func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func timeOrZero(unix int64) time.Time {
	if unix == 0 {
		return time.Time{}
	}
	return time.Unix(unix, 0).UTC()
}
