package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
)

const settingsKey = "userSettings"

type UserSettings struct {
	PricePerDrink        float64 `json:"price_per_drink"`
	Currency             string  `json:"currency"`
	WeeklyFreeDayGoal    int     `json:"weekly_free_day_goal"`
	ReminderHour         int     `json:"reminder_hour"`
	NotificationsEnabled bool    `json:"notifications_enabled"`
}

func DefaultSettings() UserSettings {
	return UserSettings{
		PricePerDrink:        8.50,
		Currency:             "USD",
		WeeklyFreeDayGoal:    4,
		ReminderHour:         20,
		NotificationsEnabled: true,
	}
}

// SettingsStore persists UserSettings as one JSON blob. Loads merge the
// saved blob over the defaults so older blobs missing newer fields still
// come back whole.
type SettingsStore struct {
	s Store
}

func NewSettingsStore(s Store) *SettingsStore {
	return &SettingsStore{s: s}
}

func (st *SettingsStore) Load(ctx context.Context) UserSettings {
	settings := DefaultSettings()

	raw, err := st.s.Get(ctx, settingsKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("store: failed to load settings, using defaults: %v", err)
		}
		return settings
	}

	if err := json.Unmarshal(raw, &settings); err != nil {
		log.Printf("store: corrupt settings blob, using defaults: %v", err)
		return DefaultSettings()
	}
	return settings
}

func (st *SettingsStore) Save(ctx context.Context, settings UserSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return st.s.Set(ctx, settingsKey, raw)
}
