package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"soberSipAPI/internal/identity"
	"soberSipAPI/internal/store"
)

// PreferenceService hands out the typed preference stores for a user:
// settings, completed-task ledger and tracking consent, all over one
// layered local-cache/remote-sync port.
type PreferenceService struct {
	db    *pgxpool.Pool
	local store.Store

	mu     sync.Mutex
	stores map[string]store.Store
}

func NewPreferenceService(db *pgxpool.Pool, local store.Store) *PreferenceService {
	return &PreferenceService{
		db:     db,
		local:  local,
		stores: make(map[string]store.Store),
	}
}

// storeFor builds (and caches) the layered store scoped to one user. The
// shared local backend is partitioned by key prefix; the remote backend
// is scoped by the derived UUID.
func (s *PreferenceService) storeFor(clerkID string) (store.Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.stores[clerkID]; ok {
		return st, nil
	}

	derived, err := identity.NormalizeUserID(clerkID)
	if err != nil {
		return nil, fmt.Errorf("failed to derive user id: %w", err)
	}
	userID, err := uuid.Parse(derived)
	if err != nil {
		return nil, fmt.Errorf("derived id is not a uuid: %w", err)
	}

	layered := store.NewLayered(
		store.WithPrefix(s.local, derived+":"),
		store.NewRemoteStore(s.db, userID),
	)
	s.stores[clerkID] = layered
	return layered, nil
}

func (s *PreferenceService) Settings(ctx context.Context, clerkID string) (store.UserSettings, error) {
	st, err := s.storeFor(clerkID)
	if err != nil {
		return store.DefaultSettings(), err
	}
	return store.NewSettingsStore(st).Load(ctx), nil
}

func (s *PreferenceService) SaveSettings(ctx context.Context, clerkID string, settings store.UserSettings) error {
	st, err := s.storeFor(clerkID)
	if err != nil {
		return err
	}
	if err := store.NewSettingsStore(st).Save(ctx, settings); err != nil {
		return err
	}
	return st.Flush(ctx)
}

func (s *PreferenceService) CompletedTasks(ctx context.Context, clerkID string) (map[string]bool, error) {
	st, err := s.storeFor(clerkID)
	if err != nil {
		return nil, err
	}
	return store.NewTaskLedger(st).All(ctx), nil
}

func (s *PreferenceService) IsTaskCompleted(ctx context.Context, clerkID, taskID string) (bool, error) {
	st, err := s.storeFor(clerkID)
	if err != nil {
		return false, err
	}
	return store.NewTaskLedger(st).IsCompleted(ctx, taskID), nil
}

func (s *PreferenceService) MarkTaskCompleted(ctx context.Context, clerkID, taskID string) error {
	st, err := s.storeFor(clerkID)
	if err != nil {
		return err
	}
	if err := store.NewTaskLedger(st).MarkCompleted(ctx, taskID); err != nil {
		return err
	}
	return st.Flush(ctx)
}

func (s *PreferenceService) TrackingConsent(ctx context.Context, clerkID string) (requested bool, status string, err error) {
	st, err := s.storeFor(clerkID)
	if err != nil {
		return false, store.ConsentUndetermined, err
	}
	consent := store.NewConsentStore(st)
	return consent.Requested(ctx), consent.Status(ctx), nil
}

func (s *PreferenceService) SetTrackingConsent(ctx context.Context, clerkID, status string) error {
	if status != store.ConsentGranted && status != store.ConsentDenied {
		return fmt.Errorf("invalid consent status %q", status)
	}
	st, err := s.storeFor(clerkID)
	if err != nil {
		return err
	}
	if err := store.NewConsentStore(st).SetStatus(ctx, status); err != nil {
		return err
	}
	return st.Flush(ctx)
}
