package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"soberSipAPI/internal/types/content"
	"soberSipAPI/services"
)

func contentRouter() *mux.Router {
	h := NewContentHandler(services.NewContentService(), nil)
	r := mux.NewRouter()
	r.HandleFunc("/content/quote-of-the-day", h.GetQuoteOfTheDay).Methods("GET")
	r.HandleFunc("/content/workouts", h.GetWorkouts).Methods("GET")
	r.HandleFunc("/content/workouts/{workoutID}/burn-a-drink", h.BurnADrink).Methods("GET")
	return r
}

func TestQuoteOfTheDayIsStableWithinADay(t *testing.T) {
	router := contentRouter()

	fetch := func() content.Quote {
		req := httptest.NewRequest("GET", "/content/quote-of-the-day", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("unexpected status %d", rec.Code)
		}
		var q content.Quote
		if err := json.Unmarshal(rec.Body.Bytes(), &q); err != nil {
			t.Fatalf("bad response body: %v", err)
		}
		return q
	}

	first := fetch()
	second := fetch()
	if first.ID != second.ID {
		t.Errorf("quote changed between calls on the same day: %s vs %s", first.ID, second.ID)
	}
	if first.Text == "" {
		t.Error("quote has no text")
	}
}

func TestBurnADrink(t *testing.T) {
	router := contentRouter()

	// workout-2 burns exactly one drink's calories per round.
	req := httptest.NewRequest("GET", "/content/workouts/workout-2/burn-a-drink", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		WorkoutID   string `json:"workout_id"`
		Repetitions int    `json:"repetitions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Repetitions != 1 {
		t.Errorf("expected 1 repetition for a 140-calorie workout, got %d", resp.Repetitions)
	}
}

func TestBurnADrinkUnknownWorkout(t *testing.T) {
	router := contentRouter()

	req := httptest.NewRequest("GET", "/content/workouts/nope/burn-a-drink", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown workout, got %d", rec.Code)
	}
}
