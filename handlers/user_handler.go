package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"soberSipAPI/internal/types/drinklog"
	"soberSipAPI/internal/user"
	"soberSipAPI/middleware"
	"soberSipAPI/services"
)

type UserHandler struct {
	userService *services.UserService
	logService  *services.DrinkLogService
	prefService *services.PreferenceService
}

func NewUserHandler(userService *services.UserService, logService *services.DrinkLogService, prefService *services.PreferenceService) *UserHandler {
	return &UserHandler{
		userService: userService,
		logService:  logService,
		prefService: prefService,
	}
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	u, err := h.userService.GetUserByClerkID(ctx, clerkID)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	respondWithJSON(w, http.StatusOK, u)
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req user.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	u, err := h.userService.UpdateProfileByClerkID(ctx, clerkID, &req)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, u)
}

func (h *UserHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	if err := h.userService.DeleteUserByClerkID(ctx, clerkID); err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Account deleted successfully"})
}

func (h *UserHandler) AddDrinkLog(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req drinklog.AddLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("AddDrinkLog Handler: Failed to decode request body: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Amount <= 0 || req.DrinkType == "" {
		respondWithError(w, http.StatusBadRequest, "amount and drinkType are required")
		return
	}

	entry, err := h.logService.AddLog(ctx, clerkID, &req)
	if err != nil {
		log.Printf("AddDrinkLog Handler: Service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to add drink log")
		return
	}

	respondWithJSON(w, http.StatusCreated, entry)
}

func (h *UserHandler) GetDrinkLogs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	logs, err := h.logService.ListLogs(ctx, clerkID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, logs)
}

func (h *UserHandler) GetStreak(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	st, err := h.logService.GetStreak(ctx, clerkID)
	if err != nil {
		log.Printf("GetStreak Handler: Service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to compute streak")
		return
	}

	respondWithJSON(w, http.StatusOK, st)
}

func (h *UserHandler) GetUserStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	settings, err := h.prefService.Settings(ctx, clerkID)
	if err != nil {
		log.Printf("GetUserStats Handler: settings load failed, using defaults: %v", err)
	}

	userStats, err := h.logService.GetStats(ctx, clerkID, settings.PricePerDrink)
	if err != nil {
		log.Printf("GetUserStats Handler: Service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	respondWithJSON(w, http.StatusOK, userStats)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Failed to marshal response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
