package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"soberSipAPI/internal/identity"
	"soberSipAPI/internal/user"
)

type UserService struct {
	db *pgxpool.Pool
}

func NewUserService(db *pgxpool.Pool) *UserService {
	return &UserService{db: db}
}

// CreateUser inserts the profile row for a first sign-in. The row id is
// the UUID derived from the Clerk id, so log and streak rows can join on
// it without a lookup.
func (s *UserService) CreateUser(ctx context.Context, req *user.CreateUserRequest) (*user.User, error) {
	userID, err := identity.NormalizeUserID(req.ClerkID)
	if err != nil {
		return nil, fmt.Errorf("failed to derive user id: %w", err)
	}

	u := &user.User{
		ID:        userID,
		ClerkID:   req.ClerkID,
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		ImageURL:  req.ImageURL,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	query := `
	INSERT INTO users (id, clerk_id, email, username, first_name, last_name, image_url, onboarding_completed, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, false, $8, $9)
	ON CONFLICT (id) DO NOTHING
	RETURNING id, clerk_id, email, username, first_name, last_name, image_url, onboarding_completed, created_at, updated_at
	`

	err = s.db.QueryRow(
		ctx,
		query,
		u.ID,
		u.ClerkID,
		u.Email,
		u.Username,
		u.FirstName,
		u.LastName,
		u.ImageURL,
		u.CreatedAt,
		u.UpdatedAt,
	).Scan(
		&u.ID,
		&u.ClerkID,
		&u.Email,
		&u.Username,
		&u.FirstName,
		&u.LastName,
		&u.ImageURL,
		&u.OnboardingCompleted,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Conflict on id means the profile already exists; webhook
			// deliveries can repeat.
			return s.GetUserByClerkID(ctx, req.ClerkID)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

func (s *UserService) GetUserByClerkID(ctx context.Context, clerkID string) (*user.User, error) {
	query := `
	SELECT id, clerk_id, email, username, first_name, last_name, image_url, onboarding_completed, created_at, updated_at
	FROM users
	WHERE clerk_id = $1
	`

	u := &user.User{}
	err := s.db.QueryRow(ctx, query, clerkID).Scan(
		&u.ID,
		&u.ClerkID,
		&u.Email,
		&u.Username,
		&u.FirstName,
		&u.LastName,
		&u.ImageURL,
		&u.OnboardingCompleted,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (s *UserService) UpdateProfileByClerkID(ctx context.Context, clerkID string, req *user.UpdateProfileRequest) (*user.User, error) {
	query := `
	UPDATE users
	SET
		username = COALESCE(NULLIF($2, ''), username),
		first_name = COALESCE(NULLIF($3, ''), first_name),
		last_name = COALESCE(NULLIF($4, ''), last_name),
		image_url = COALESCE(NULLIF($5, ''), image_url),
		updated_at = NOW()
	WHERE clerk_id = $1
	RETURNING id, clerk_id, email, username, first_name, last_name, image_url, onboarding_completed, created_at, updated_at
	`

	u := &user.User{}
	err := s.db.QueryRow(
		ctx,
		query,
		clerkID,
		req.Username,
		req.FirstName,
		req.LastName,
		req.ImageURL,
	).Scan(
		&u.ID,
		&u.ClerkID,
		&u.Email,
		&u.Username,
		&u.FirstName,
		&u.LastName,
		&u.ImageURL,
		&u.OnboardingCompleted,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return u, nil
}

// CompleteOnboarding flips onboarding_completed to true. The flip happens
// once; running it against an already-completed profile is a no-op, not
// an error.
func (s *UserService) CompleteOnboarding(ctx context.Context, clerkID string) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE users SET onboarding_completed = true, updated_at = NOW() WHERE clerk_id = $1`,
		clerkID)
	if err != nil {
		return fmt.Errorf("failed to complete onboarding: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}

func (s *UserService) DeleteUserByClerkID(ctx context.Context, clerkID string) error {
	userID, err := identity.NormalizeUserID(clerkID)
	if err != nil {
		return fmt.Errorf("failed to derive user id: %w", err)
	}

	// Dependent rows first; there is no ON DELETE CASCADE on these tables.
	for _, q := range []string{
		`DELETE FROM alcohol_logs WHERE user_id = $1`,
		`DELETE FROM user_streaks WHERE user_id = $1`,
		`DELETE FROM onboarding_data WHERE user_id = $1`,
		`DELETE FROM user_preferences WHERE user_id = $1`,
		`DELETE FROM device_tokens WHERE user_id = $1`,
	} {
		if _, err := s.db.Exec(ctx, q, userID); err != nil {
			return fmt.Errorf("failed to delete user data: %w", err)
		}
	}

	if _, err := s.db.Exec(ctx, `DELETE FROM users WHERE clerk_id = $1`, clerkID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
