package store

import (
	"context"
	"errors"
	"log"
)

const (
	consentRequestedKey = "tracking_permission_requested"
	consentStatusKey    = "tracking_permission_status"
)

// Consent status values mirror what the mobile permission prompt reports.
const (
	ConsentUndetermined = "undetermined"
	ConsentGranted      = "granted"
	ConsentDenied       = "denied"
)

// ConsentStore holds the tracking-permission flags. Unreadable state is
// treated as "never asked".
type ConsentStore struct {
	s Store
}

func NewConsentStore(s Store) *ConsentStore {
	return &ConsentStore{s: s}
}

func (c *ConsentStore) Requested(ctx context.Context) bool {
	raw, err := c.s.Get(ctx, consentRequestedKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("store: failed to read consent flag: %v", err)
		}
		return false
	}
	return string(raw) == "true"
}

func (c *ConsentStore) Status(ctx context.Context) string {
	raw, err := c.s.Get(ctx, consentStatusKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("store: failed to read consent status: %v", err)
		}
		return ConsentUndetermined
	}
	switch s := string(raw); s {
	case ConsentGranted, ConsentDenied:
		return s
	default:
		return ConsentUndetermined
	}
}

func (c *ConsentStore) SetStatus(ctx context.Context, status string) error {
	if err := c.s.Set(ctx, consentRequestedKey, []byte("true")); err != nil {
		return err
	}
	return c.s.Set(ctx, consentStatusKey, []byte(status))
}
