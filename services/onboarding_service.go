package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"soberSipAPI/internal/flow"
	"soberSipAPI/internal/identity"
)

// OnboardingService owns one flow engine per user mid-onboarding. Answer
// rows go to onboarding_data; completion flips the profile flag through
// UserService.
type OnboardingService struct {
	db    *pgxpool.Pool
	users *UserService

	mu      sync.Mutex
	engines map[string]*flow.Engine
}

func NewOnboardingService(db *pgxpool.Pool, users *UserService) *OnboardingService {
	return &OnboardingService{
		db:      db,
		users:   users,
		engines: make(map[string]*flow.Engine),
	}
}

func (s *OnboardingService) Steps() []flow.Step {
	return flow.OnboardingSteps
}

// Start creates (or restarts) the flow for a user and returns the first
// step. Restarting drops in-memory progress; already-persisted answers
// stay in onboarding_data and are overwritten as the user walks through
// again.
func (s *OnboardingService) Start(ctx context.Context, clerkID string) (flow.Step, error) {
	userID, err := identity.NormalizeUserID(clerkID)
	if err != nil {
		return flow.Step{}, err
	}

	engine, err := flow.NewEngine(
		flow.OnboardingSteps,
		func(ctx context.Context, stepID string, ans flow.Answer) error {
			return s.saveAnswer(ctx, userID, stepID, ans)
		},
		func(ctx context.Context, answers map[string]flow.Answer) error {
			return s.complete(ctx, clerkID, userID, answers)
		},
	)
	if err != nil {
		return flow.Step{}, err
	}

	s.mu.Lock()
	s.engines[clerkID] = engine
	s.mu.Unlock()

	step, _ := engine.CurrentStep()
	return step, nil
}

// Advance feeds one answer to the user's engine and returns the next step
// (ok=false once the flow is done).
func (s *OnboardingService) Advance(ctx context.Context, clerkID, stepID string, ans flow.Answer) (flow.Step, bool, error) {
	s.mu.Lock()
	engine := s.engines[clerkID]
	s.mu.Unlock()

	if engine == nil {
		return flow.Step{}, false, fmt.Errorf("onboarding not started")
	}

	next, err := engine.Advance(ctx, stepID, ans)
	if err != nil {
		return flow.Step{}, false, err
	}

	if next == flow.StateCompleted {
		s.mu.Lock()
		delete(s.engines, clerkID)
		s.mu.Unlock()
		return flow.Step{}, false, nil
	}

	step, _ := engine.CurrentStep()
	return step, true, nil
}

func (s *OnboardingService) saveAnswer(ctx context.Context, userID, stepID string, ans flow.Answer) error {
	raw, err := json.Marshal(ans)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(ctx, `
	INSERT INTO onboarding_data (id, user_id, question_id, answer, updated_at)
	VALUES ($1, $2, $3, $4, NOW())
	ON CONFLICT (user_id, question_id) DO UPDATE SET
		answer = EXCLUDED.answer,
		updated_at = NOW()
	`, uuid.New(), userID, stepID, raw)
	if err != nil {
		return fmt.Errorf("failed to save onboarding answer: %w", err)
	}
	return nil
}

// complete freezes the answer set and flips the profile flag. Called once
// by the engine's terminal transition; answer writes that fail are logged
// and skipped so completion itself still lands.
func (s *OnboardingService) complete(ctx context.Context, clerkID, userID string, answers map[string]flow.Answer) error {
	for stepID, ans := range answers {
		if err := s.saveAnswer(ctx, userID, stepID, ans); err != nil {
			log.Printf("onboarding: failed to flush answer %s for %s: %v", stepID, userID, err)
		}
	}
	return s.users.CompleteOnboarding(ctx, clerkID)
}

// Answers returns the persisted answer map for a user.
func (s *OnboardingService) Answers(ctx context.Context, clerkID string) (map[string]flow.Answer, error) {
	userID, err := identity.NormalizeUserID(clerkID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx,
		`SELECT question_id, answer FROM onboarding_data WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load onboarding answers: %w", err)
	}
	defer rows.Close()

	answers := make(map[string]flow.Answer)
	for rows.Next() {
		var questionID string
		var raw []byte
		if err := rows.Scan(&questionID, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan onboarding answer: %w", err)
		}
		var ans flow.Answer
		if err := json.Unmarshal(raw, &ans); err != nil {
			log.Printf("onboarding: corrupt answer for %s/%s: %v", userID, questionID, err)
			continue
		}
		answers[questionID] = ans
	}
	return answers, rows.Err()
}
