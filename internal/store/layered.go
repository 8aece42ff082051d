package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
)

// Layered reads through a local cache and syncs writes upstream on Flush.
// Reads prefer local and fall back to remote (backfilling the cache); a
// remote write failure keeps the key dirty for the next Flush. Local and
// remote both apply last-write-wins, so the layering adds no new conflict
// rules.
type Layered struct {
	local  Store
	remote Store

	mu    sync.Mutex
	dirty map[string]bool
}

func NewLayered(local, remote Store) *Layered {
	return &Layered{
		local:  local,
		remote: remote,
		dirty:  make(map[string]bool),
	}
}

func (l *Layered) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := l.local.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, ErrNotFound) {
		log.Printf("store: local read failed for %q, trying remote: %v", key, err)
	}

	value, err = l.remote.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	if cacheErr := l.local.Set(ctx, key, value); cacheErr != nil {
		log.Printf("store: failed to backfill local cache for %q: %v", key, cacheErr)
	}
	return value, nil
}

func (l *Layered) Set(ctx context.Context, key string, value []byte) error {
	if err := l.local.Set(ctx, key, value); err != nil {
		return err
	}
	l.mu.Lock()
	l.dirty[key] = true
	l.mu.Unlock()
	return nil
}

func (l *Layered) Flush(ctx context.Context) error {
	l.mu.Lock()
	keys := make([]string, 0, len(l.dirty))
	for k := range l.dirty {
		keys = append(keys, k)
	}
	l.mu.Unlock()

	var firstErr error
	for _, key := range keys {
		value, err := l.local.Get(ctx, key)
		if err != nil {
			log.Printf("store: flush skipped %q, local read failed: %v", key, err)
			continue
		}
		if err := l.remote.Set(ctx, key, value); err != nil {
			log.Printf("store: flush failed for %q: %v", key, err)
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to flush %q: %w", key, err)
			}
			continue
		}
		l.mu.Lock()
		delete(l.dirty, key)
		l.mu.Unlock()
	}
	return firstErr
}
