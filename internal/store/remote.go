package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RemoteStore keeps preferences in Postgres, one row per (user, key).
// Every query is scoped by the derived user UUID since there is no
// server-side row isolation to lean on.
type RemoteStore struct {
	db     *pgxpool.Pool
	userID uuid.UUID
}

func NewRemoteStore(db *pgxpool.Pool, userID uuid.UUID) *RemoteStore {
	return &RemoteStore{db: db, userID: userID}
}

func (s *RemoteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(ctx,
		`SELECT value FROM user_preferences WHERE user_id = $1 AND key = $2`,
		s.userID, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read remote preference %q: %w", key, err)
	}
	return value, nil
}

func (s *RemoteStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.Exec(ctx, `
	INSERT INTO user_preferences (user_id, key, value, updated_at)
	VALUES ($1, $2, $3, NOW())
	ON CONFLICT (user_id, key) DO UPDATE SET
		value = EXCLUDED.value,
		updated_at = NOW()
	`, s.userID, key, value)
	if err != nil {
		return fmt.Errorf("failed to write remote preference %q: %w", key, err)
	}
	return nil
}

func (s *RemoteStore) Flush(ctx context.Context) error { return nil }
