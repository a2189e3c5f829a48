// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/griswall/playoff-pool/internal/adapter"
	"github.com/griswall/playoff-pool/internal/logger"
	"github.com/griswall/playoff-pool/models"
)

type sessionRepository struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

// NewSessionRepository returns the SQLite implementation of
// [adapter.SessionStorage].
func NewSessionRepository(db *DB, log *logger.Logger) adapter.SessionStorage {
	return &sessionRepository{db: db, now: time.Now, logger: log}
}

// Load implements [adapter.SessionStorage].
func (r *sessionRepository) Load(ctx context.Context, key string) (models.Session, error) {
	if strings.TrimSpace(key) == "" {
		return models.Session{}, ErrEmptyKey
	}

	query, args, err := buildSelectSessionQuery(key)
	if err != nil {
		return models.Session{}, fmt.Errorf("build select session query: %w", err)
	}

	var (
		s         models.Session
		expiresAt int64
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&s.AccessToken,
		&s.RefreshToken,
		&s.TokenType,
		&expiresAt,
		&s.User.ID,
		&s.User.Email,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.Load").
			Str("key", key).
			Msg("failed to query session")
		return models.Session{}, fmt.Errorf("failed to load session: %w", err)
	}

	s.ExpiresAt = timeOrZero(expiresAt)
	return s, nil
}

// Save implements [adapter.SessionStorage].
func (r *sessionRepository) Save(ctx context.Context, key string, session models.Session) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}

	query, args, err := buildUpsertSessionQuery(key, session, r.now())
	if err != nil {
		return fmt.Errorf("build upsert session query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.Save").
			Str("key", key).
			Msg("failed to execute upsert for session")
		return fmt.Errorf("failed to save session: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrSessionNotSaved
	}

	return nil
}

// Delete implements [adapter.SessionStorage].
func (r *sessionRepository) Delete(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}

	query, args, err := buildDeleteSessionQuery(key)
	if err != nil {
		return fmt.Errorf("build delete session query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.Delete").
			Str("key", key).
			Msg("failed to delete session")
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
