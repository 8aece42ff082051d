package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	notif "soberSipAPI/internal/types/notification"
)

// PushProvider abstracts the FCM client so tests and local runs work
// without Firebase credentials.
type PushProvider interface {
	SendPush(ctx context.Context, tokens []notif.DeviceToken, title, body string, data map[string]string) error
}

// Streak milestones that earn a congratulations push.
var streakMilestones = map[int]bool{7: true, 30: true, 100: true}

type NotificationService struct {
	db   *pgxpool.Pool
	push PushProvider
}

func NewNotificationService(db *pgxpool.Pool) *NotificationService {
	return &NotificationService{db: db}
}

func (s *NotificationService) SetPushProvider(p PushProvider) {
	s.push = p
}

func (s *NotificationService) RegisterDevice(ctx context.Context, userID uuid.UUID, token, platform string) error {
	_, err := s.db.Exec(ctx, `
	INSERT INTO device_tokens (user_id, token, platform, created_at)
	VALUES ($1, $2, $3, NOW())
	ON CONFLICT (user_id, token) DO UPDATE SET platform = EXCLUDED.platform
	`, userID, token, platform)
	if err != nil {
		return fmt.Errorf("failed to register device: %w", err)
	}
	return nil
}

func (s *NotificationService) tokensFor(ctx context.Context, userID uuid.UUID) ([]notif.DeviceToken, error) {
	rows, err := s.db.Query(ctx,
		`SELECT user_id, token, platform, created_at FROM device_tokens WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load device tokens: %w", err)
	}
	defer rows.Close()

	var tokens []notif.DeviceToken
	for rows.Next() {
		var t notif.DeviceToken
		if err := rows.Scan(&t.UserID, &t.Token, &t.Platform, &t.CreatedAt); err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}

// MaybeStreakMilestone fires a push when the streak lands exactly on a
// milestone. Failures are logged and swallowed; a missed push never
// surfaces to the caller.
func (s *NotificationService) MaybeStreakMilestone(ctx context.Context, userID uuid.UUID, currentStreak int) {
	if s.push == nil || !streakMilestones[currentStreak] {
		return
	}

	tokens, err := s.tokensFor(ctx, userID)
	if err != nil {
		log.Printf("notification: %v", err)
		return
	}

	title := fmt.Sprintf("%d days alcohol-free!", currentStreak)
	body := "Your streak hit a milestone. Keep it going."
	data := map[string]string{"type": "streak_milestone", "days": fmt.Sprintf("%d", currentStreak)}

	if err := s.push.SendPush(ctx, tokens, title, body, data); err != nil {
		log.Printf("notification: milestone push failed for %s: %v", userID, err)
	}
}

// SendTest pushes a throwaway message to all of a user's devices.
func (s *NotificationService) SendTest(ctx context.Context, userID uuid.UUID) error {
	if s.push == nil {
		return fmt.Errorf("push provider not configured")
	}
	tokens, err := s.tokensFor(ctx, userID)
	if err != nil {
		return err
	}
	return s.push.SendPush(ctx, tokens, "Test notification", "If you can read this, pushes work.", nil)
}
