package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"soberSipAPI/internal/identity"
	"soberSipAPI/internal/metrics"
	"soberSipAPI/internal/types/drinklog"
	"soberSipAPI/internal/types/stats"
	"soberSipAPI/internal/types/streak"
)

type DrinkLogService struct {
	db            *pgxpool.Pool
	notifications *NotificationService
}

func NewDrinkLogService(db *pgxpool.Pool, notifications *NotificationService) *DrinkLogService {
	return &DrinkLogService{db: db, notifications: notifications}
}

func (s *DrinkLogService) userID(clerkID string) (uuid.UUID, error) {
	derived, err := identity.NormalizeUserID(clerkID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to derive user id: %w", err)
	}
	id, err := uuid.Parse(derived)
	if err != nil {
		return uuid.Nil, fmt.Errorf("derived id is not a uuid: %w", err)
	}
	return id, nil
}

// AddLog appends one consumption event. Logs are never mutated after
// insert.
func (s *DrinkLogService) AddLog(ctx context.Context, clerkID string, req *drinklog.AddLogRequest) (*drinklog.AlcoholLog, error) {
	userID, err := s.userID(clerkID)
	if err != nil {
		return nil, err
	}

	ts := time.Now()
	if req.Timestamp != nil {
		ts = *req.Timestamp
	}

	entry := &drinklog.AlcoholLog{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    req.Amount,
		DrinkType: req.DrinkType,
		Timestamp: ts,
		CreatedAt: time.Now(),
	}

	query := `
	INSERT INTO alcohol_logs (id, user_id, amount, drink_type, timestamp, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, user_id, amount, drink_type, timestamp, created_at
	`

	err = s.db.QueryRow(ctx, query,
		entry.ID, entry.UserID, entry.Amount, entry.DrinkType, entry.Timestamp, entry.CreatedAt,
	).Scan(&entry.ID, &entry.UserID, &entry.Amount, &entry.DrinkType, &entry.Timestamp, &entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add alcohol log: %w", err)
	}

	return entry, nil
}

func (s *DrinkLogService) ListLogs(ctx context.Context, clerkID string) ([]drinklog.AlcoholLog, error) {
	userID, err := s.userID(clerkID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, `
	SELECT id, user_id, amount, drink_type, timestamp, created_at
	FROM alcohol_logs
	WHERE user_id = $1
	ORDER BY timestamp ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list alcohol logs: %w", err)
	}
	defer rows.Close()

	logs := []drinklog.AlcoholLog{}
	for rows.Next() {
		var l drinklog.AlcoholLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Amount, &l.DrinkType, &l.Timestamp, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan alcohol log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (s *DrinkLogService) startDate(ctx context.Context, userID uuid.UUID) (time.Time, error) {
	var created time.Time
	err := s.db.QueryRow(ctx, `SELECT created_at FROM users WHERE id = $1`, userID).Scan(&created)
	if err != nil {
		return time.Time{}, fmt.Errorf("user not found: %w", err)
	}
	return created, nil
}

// GetStreak recomputes the streak from the full log history and refreshes
// the cached user_streaks row. The cache row is derived state only; it is
// never hand-edited.
func (s *DrinkLogService) GetStreak(ctx context.Context, clerkID string) (*streak.Streak, error) {
	userID, err := s.userID(clerkID)
	if err != nil {
		return nil, err
	}

	start, err := s.startDate(ctx, userID)
	if err != nil {
		return nil, err
	}

	logs, err := s.ListLogs(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	data := metrics.ComputeStreak(logs, start, time.Now())

	result := &streak.Streak{
		UserID:        userID,
		CurrentStreak: data.CurrentStreak,
		LongestStreak: data.LongestStreak,
		LastDrinkDate: data.LastDrinkDate,
		StartDate:     data.StartDate,
	}

	query := `
	INSERT INTO user_streaks (id, user_id, current_streak, longest_streak, last_drink_date, start_date, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	ON CONFLICT (user_id) DO UPDATE SET
		current_streak = EXCLUDED.current_streak,
		longest_streak = EXCLUDED.longest_streak,
		last_drink_date = EXCLUDED.last_drink_date,
		updated_at = NOW()
	RETURNING id, created_at, updated_at
	`

	err = s.db.QueryRow(ctx, query,
		uuid.New(), userID, result.CurrentStreak, result.LongestStreak, result.LastDrinkDate, result.StartDate,
	).Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert streak: %w", err)
	}

	if s.notifications != nil {
		s.notifications.MaybeStreakMilestone(ctx, userID, result.CurrentStreak)
	}

	return result, nil
}

// GetStats derives the stats panel from logs plus the user's price
// setting. Nothing here is persisted.
func (s *DrinkLogService) GetStats(ctx context.Context, clerkID string, pricePerDrink float64) (*stats.UserStats, error) {
	userID, err := s.userID(clerkID)
	if err != nil {
		return nil, err
	}

	start, err := s.startDate(ctx, userID)
	if err != nil {
		return nil, err
	}

	logs, err := s.ListLogs(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	derived := metrics.ComputeStats(logs, start, time.Now(), pricePerDrink)
	return &stats.UserStats{
		TotalDaysTracked:     derived.TotalDaysTracked,
		AlcoholFreeDays:      derived.AlcoholFreeDays,
		AverageDrinksPerWeek: derived.AverageDrinksPerWeek,
		MoneySaved:           derived.MoneySaved,
		CaloriesSaved:        derived.CaloriesSaved,
	}, nil
}

// ProjectSavings is the forward-looking estimate used by the onboarding
// projection screen, separate from log-based savings.
func (s *DrinkLogService) ProjectSavings(avgDrinksPerWeek, pricePerDrink float64, weeks int) *stats.SavingsProjection {
	money, calories := metrics.ProjectedSavings(avgDrinksPerWeek, pricePerDrink, weeks)
	return &stats.SavingsProjection{
		Weeks:         weeks,
		MoneySaved:    money,
		CaloriesSaved: calories,
	}
}
