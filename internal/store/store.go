// Package store is the persistence port behind the app's preference data:
// completed-task ledger, user settings and tracking consent. One small
// Get/Set/Flush interface with a sqlite local backend, a Postgres remote
// backend and a layered local-cache/remote-sync combination.
//
// Conflict policy is last-write-wins everywhere. Writes are user-serialized
// in practice (one screen at a time), so nothing fancier is needed.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("preference not found")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Flush pushes pending writes to any upstream backend. Backends that
	// are durable on write return nil.
	Flush(ctx context.Context) error
}

// WithPrefix scopes every key through the given prefix, so unrelated
// consumers can share one physical store.
func WithPrefix(s Store, prefix string) Store {
	return &prefixStore{s: s, prefix: prefix}
}

type prefixStore struct {
	s      Store
	prefix string
}

func (p *prefixStore) Get(ctx context.Context, key string) ([]byte, error) {
	return p.s.Get(ctx, p.prefix+key)
}

func (p *prefixStore) Set(ctx context.Context, key string, value []byte) error {
	return p.s.Set(ctx, p.prefix+key, value)
}

func (p *prefixStore) Flush(ctx context.Context) error {
	return p.s.Flush(ctx)
}
