package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"soberSipAPI/internal/flow"
	"soberSipAPI/middleware"
	"soberSipAPI/services"
)

type OnboardingHandler struct {
	onboardingService *services.OnboardingService
	logService        *services.DrinkLogService
}

func NewOnboardingHandler(onboardingService *services.OnboardingService, logService *services.DrinkLogService) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingService: onboardingService,
		logService:        logService,
	}
}

type advanceRequest struct {
	StepID string      `json:"stepId"`
	Answer flow.Answer `json:"answer"`
}

type stepResponse struct {
	Completed bool       `json:"completed"`
	Step      *flow.Step `json:"step,omitempty"`
}

func (h *OnboardingHandler) GetSteps(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.onboardingService.Steps())
}

func (h *OnboardingHandler) Start(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	step, err := h.onboardingService.Start(ctx, clerkID)
	if err != nil {
		log.Printf("Onboarding Start Handler: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to start onboarding")
		return
	}

	respondWithJSON(w, http.StatusOK, stepResponse{Step: &step})
}

func (h *OnboardingHandler) Advance(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req advanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	next, more, err := h.onboardingService.Advance(ctx, clerkID, req.StepID, req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, flow.ErrAnswerRequired):
			respondWithError(w, http.StatusBadRequest, "An answer is required to continue")
		case errors.Is(err, flow.ErrOutOfOrder), errors.Is(err, flow.ErrUnknownStep):
			respondWithError(w, http.StatusConflict, err.Error())
		default:
			log.Printf("Onboarding Advance Handler: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to advance onboarding")
		}
		return
	}

	if !more {
		respondWithJSON(w, http.StatusOK, stepResponse{Completed: true})
		return
	}
	respondWithJSON(w, http.StatusOK, stepResponse{Step: &next})
}

func (h *OnboardingHandler) GetAnswers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	answers, err := h.onboardingService.Answers(ctx, clerkID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, answers)
}

// GetProjection serves the "what you could save" screen shown near the
// end of the flow, before any real log history exists.
func (h *OnboardingHandler) GetProjection(w http.ResponseWriter, r *http.Request) {
	drinksPerWeek, err := strconv.ParseFloat(r.URL.Query().Get("drinksPerWeek"), 64)
	if err != nil || drinksPerWeek < 0 {
		respondWithError(w, http.StatusBadRequest, "Query parameter 'drinksPerWeek' is required")
		return
	}

	pricePerDrink, err := strconv.ParseFloat(r.URL.Query().Get("pricePerDrink"), 64)
	if err != nil || pricePerDrink < 0 {
		respondWithError(w, http.StatusBadRequest, "Query parameter 'pricePerDrink' is required")
		return
	}

	weeks := 12
	if raw := r.URL.Query().Get("weeks"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			weeks = parsed
		}
	}

	respondWithJSON(w, http.StatusOK, h.logService.ProjectSavings(drinksPerWeek, pricePerDrink, weeks))
}
