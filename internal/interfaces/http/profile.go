package http

import (
	"encoding/json"
	"log"
	"net/http"

	"centavo/internal/domain/profile"
	"centavo/internal/shared/middleware"
)

type ProfileHandler struct {
	profileRepo profile.Repository
}

func NewProfileHandler(profileRepo profile.Repository) *ProfileHandler {
	return &ProfileHandler{profileRepo: profileRepo}
}

type UpdateProfileRequest struct {
	Locale string `json:"locale"`
}

type RegisterDeviceRequest struct {
	Token string `json:"token"`
}

// HandleProfile returns or updates the authenticated user's settings
func (h *ProfileHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleGetProfile(w, r)
	case http.MethodPut:
		h.handleUpdateProfile(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleDevices registers an FCM device token on the profile
func (h *ProfileHandler) HandleDevices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req RegisterDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding register device request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Token == "" {
		http.Error(w, "token is required", http.StatusBadRequest)
		return
	}

	if err := h.profileRepo.AddDeviceToken(r.Context(), userID, req.Token); err != nil {
		log.Printf("Error registering device token for user %s: %v", userID, err)
		http.Error(w, "Failed to register device token", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ProfileHandler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	p, err := h.profileRepo.Get(r.Context(), userID)
	if err != nil {
		log.Printf("Error getting profile for user %s: %v", userID, err)
		http.Error(w, "Failed to get profile", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

func (h *ProfileHandler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding update profile request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if !profile.ValidLocale(req.Locale) {
		http.Error(w, profile.ErrInvalidLocale.Error(), http.StatusBadRequest)
		return
	}

	if err := h.profileRepo.SetLocale(r.Context(), userID, req.Locale); err != nil {
		log.Printf("Error setting locale for user %s: %v", userID, err)
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	p, err := h.profileRepo.Get(r.Context(), userID)
	if err != nil {
		log.Printf("Error getting profile for user %s: %v", userID, err)
		http.Error(w, "Failed to get profile", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}
