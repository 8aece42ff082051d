package services

import (
	"fmt"
	"time"

	"soberSipAPI/internal/metrics"
	"soberSipAPI/internal/types/content"
)

// ContentService serves the fixed content pools and the day-of-year
// rotation over them. Pools are static; nothing here touches storage.
type ContentService struct {
	quotes   []content.Quote
	workouts []content.Workout
	articles []content.Article
}

func NewContentService() *ContentService {
	return &ContentService{
		quotes:   quotePool,
		workouts: workoutPool,
		articles: articlePool,
	}
}

func (s *ContentService) QuoteOfTheDay(date time.Time) content.Quote {
	return s.quotes[metrics.DailySelection(len(s.quotes), date)]
}

func (s *ContentService) WorkoutOfTheDay(date time.Time) content.Workout {
	return s.workouts[metrics.DailySelection(len(s.workouts), date)]
}

func (s *ContentService) Quotes() []content.Quote     { return s.quotes }
func (s *ContentService) Workouts() []content.Workout { return s.workouts }
func (s *ContentService) Articles() []content.Article { return s.articles }

// BurnADrink answers "how many rounds of this workout burn one drink".
func (s *ContentService) BurnADrink(workoutID string) (int, error) {
	for _, w := range s.workouts {
		if w.ID == workoutID {
			return metrics.BurnADrinkTime(w.CaloriesBurned), nil
		}
	}
	return 0, fmt.Errorf("workout not found: %s", workoutID)
}
