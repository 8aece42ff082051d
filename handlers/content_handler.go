package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"soberSipAPI/middleware"
	"soberSipAPI/services"
)

type ContentHandler struct {
	contentService *services.ContentService
	prefService    *services.PreferenceService
}

func NewContentHandler(contentService *services.ContentService, prefService *services.PreferenceService) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		prefService:    prefService,
	}
}

func (h *ContentHandler) GetQuoteOfTheDay(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.contentService.QuoteOfTheDay(time.Now()))
}

func (h *ContentHandler) GetWorkoutOfTheDay(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.contentService.WorkoutOfTheDay(time.Now()))
}

func (h *ContentHandler) GetQuotes(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.contentService.Quotes())
}

func (h *ContentHandler) GetWorkouts(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.contentService.Workouts())
}

func (h *ContentHandler) GetArticles(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.contentService.Articles())
}

// BurnADrink reports how many repetitions of the workout burn one drink's
// calories.
func (h *ContentHandler) BurnADrink(w http.ResponseWriter, r *http.Request) {
	workoutID := mux.Vars(r)["workoutID"]

	reps, err := h.contentService.BurnADrink(workoutID)
	if err != nil {
		respondWithError(w, http.StatusNotFound, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"workout_id":  workoutID,
		"repetitions": reps,
	})
}

func (h *ContentHandler) GetCompletedTasks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	tasks, err := h.prefService.CompletedTasks(ctx, clerkID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, tasks)
}

func (h *ContentHandler) MarkTaskCompleted(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req struct {
		TaskID string `json:"taskId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TaskID == "" {
		respondWithError(w, http.StatusBadRequest, "taskId is required")
		return
	}

	if err := h.prefService.MarkTaskCompleted(ctx, clerkID, req.TaskID); err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"taskId":      req.TaskID,
		"isCompleted": true,
	})
}
