package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if err := s.Set(ctx, "k", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got) != `{"a":1}` {
		t.Errorf("got %q", got)
	}

	// Last write wins.
	if err := s.Set(ctx, "k", []byte(`{"a":2}`)); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	got, _ = s.Get(ctx, "k")
	if string(got) != `{"a":2}` {
		t.Errorf("expected overwritten value, got %q", got)
	}
}

func TestTaskLedgerReload(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ledger := NewTaskLedger(s)
	if err := ledger.MarkCompleted(ctx, "quote-1"); err != nil {
		t.Fatalf("mark failed: %v", err)
	}

	// A fresh ledger over the same store must see the completion.
	reloaded := NewTaskLedger(s)
	if !reloaded.IsCompleted(ctx, "quote-1") {
		t.Error("quote-1 should be completed after reload")
	}
	if reloaded.IsCompleted(ctx, "quote-2") {
		t.Error("unseen task ids must report not completed")
	}
}

func TestTaskLedgerCorruptBlobFallsBack(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "completedTasks", []byte("not json")); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	ledger := NewTaskLedger(s)
	if ledger.IsCompleted(ctx, "quote-1") {
		t.Error("corrupt blob must read as empty, not crash or report completed")
	}
	if err := ledger.MarkCompleted(ctx, "quote-1"); err != nil {
		t.Fatalf("mark over corrupt blob failed: %v", err)
	}
	if !ledger.IsCompleted(ctx, "quote-1") {
		t.Error("mark after corrupt blob did not stick")
	}
}

func TestSettingsMergeDefaults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// An old blob missing newer fields.
	if err := s.Set(ctx, "userSettings", []byte(`{"currency":"EUR"}`)); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	settings := NewSettingsStore(s).Load(ctx)
	if settings.Currency != "EUR" {
		t.Errorf("saved field lost: %q", settings.Currency)
	}
	if settings.PricePerDrink != DefaultSettings().PricePerDrink {
		t.Errorf("missing field should default, got %f", settings.PricePerDrink)
	}
}

func TestSettingsDefaultsWhenEmpty(t *testing.T) {
	s := newTestStore(t)
	settings := NewSettingsStore(s).Load(context.Background())
	if settings != DefaultSettings() {
		t.Errorf("expected defaults, got %+v", settings)
	}
}

func TestConsentStore(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	consent := NewConsentStore(s)
	if consent.Requested(ctx) {
		t.Error("fresh store must report consent not requested")
	}
	if got := consent.Status(ctx); got != ConsentUndetermined {
		t.Errorf("expected undetermined, got %s", got)
	}

	if err := consent.SetStatus(ctx, ConsentDenied); err != nil {
		t.Fatalf("set status failed: %v", err)
	}
	if !consent.Requested(ctx) {
		t.Error("setting a status must flip the requested flag")
	}
	if got := consent.Status(ctx); got != ConsentDenied {
		t.Errorf("expected denied, got %s", got)
	}
}

func TestPrefixIsolation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := WithPrefix(s, "user-a:")
	b := WithPrefix(s, "user-b:")

	if err := a.Set(ctx, "k", []byte("a")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, err := b.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("prefix b must not see prefix a's keys, got %v", err)
	}
}

func TestLayeredReadThroughAndFlush(t *testing.T) {
	local := newTestStore(t)
	remote := newTestStore(t)
	ctx := context.Background()

	layered := NewLayered(local, remote)

	// Remote-only value reads through and backfills the cache.
	if err := remote.Set(ctx, "synced", []byte("v1")); err != nil {
		t.Fatalf("seed remote failed: %v", err)
	}
	got, err := layered.Get(ctx, "synced")
	if err != nil {
		t.Fatalf("read-through failed: %v", err)
	}
	if string(got) != "v1" {
		t.Errorf("got %q", got)
	}
	if cached, err := local.Get(ctx, "synced"); err != nil || string(cached) != "v1" {
		t.Errorf("expected backfilled cache, got %q err %v", cached, err)
	}

	// Writes land locally first and reach remote only on Flush.
	if err := layered.Set(ctx, "pending", []byte("v2")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, err := remote.Get(ctx, "pending"); !errors.Is(err, ErrNotFound) {
		t.Errorf("remote must not see the write before flush, got %v", err)
	}

	if err := layered.Flush(ctx); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
	if got, err := remote.Get(ctx, "pending"); err != nil || string(got) != "v2" {
		t.Errorf("expected flushed value on remote, got %q err %v", got, err)
	}
}
