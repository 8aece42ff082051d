package drinklog

import (
	"time"

	"github.com/google/uuid"
)

// AlcoholLog is a single consumption event. Rows are append-only; the app
// never mutates a log after insert.
type AlcoholLog struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Amount    float64   `json:"amount" db:"amount"`
	DrinkType string    `json:"drink_type" db:"drink_type"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type AddLogRequest struct {
	Amount    float64    `json:"amount" validate:"required"`
	DrinkType string     `json:"drinkType" validate:"required"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}
