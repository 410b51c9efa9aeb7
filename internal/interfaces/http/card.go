package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"centavo/internal/domain/card"
	"centavo/internal/shared/middleware"
)

type CardHandler struct {
	cardRepo card.Repository
}

func NewCardHandler(cardRepo card.Repository) *CardHandler {
	return &CardHandler{cardRepo: cardRepo}
}

type CreateCardRequest struct {
	CardName string  `json:"cardName"`
	Limit    float64 `json:"limit"`
	DueDate  int     `json:"dueDate"`
	Last4    string  `json:"last4"`
	Color    string  `json:"color"`
}

type UpdateCardRequest struct {
	CardName *string  `json:"cardName,omitempty"`
	Limit    *float64 `json:"limit,omitempty"`
	DueDate  *int     `json:"dueDate,omitempty"`
	Last4    *string  `json:"last4,omitempty"`
	Color    *string  `json:"color,omitempty"`
}

// HandleCards routes collection-level requests based on method
func (h *CardHandler) HandleCards(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleListCards(w, r)
	case http.MethodPost:
		h.handleCreateCard(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleCardByID routes requests for a specific card
func (h *CardHandler) HandleCardByID(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPut:
		h.handleUpdateCard(w, r)
	case http.MethodDelete:
		h.handleDeleteCard(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *CardHandler) handleListCards(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	cards, err := h.cardRepo.List(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing cards for user %s: %v", userID, err)
		http.Error(w, "Failed to list cards", http.StatusInternalServerError)
		return
	}

	if cards == nil {
		cards = []*card.Card{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cards)
}

func (h *CardHandler) handleCreateCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding create card request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	params := card.CreateParams{
		CardName: req.CardName,
		Limit:    req.Limit,
		DueDate:  req.DueDate,
		Last4:    req.Last4,
		Color:    req.Color,
	}
	if err := params.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.cardRepo.Create(r.Context(), userID, params)
	if err != nil {
		log.Printf("Error creating card for user %s: %v", userID, err)
		http.Error(w, "Failed to create card", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

func (h *CardHandler) handleUpdateCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := r.PathValue("id")
	if id == "" {
		http.Error(w, "Card ID is required", http.StatusBadRequest)
		return
	}

	var req UpdateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding update card request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	params := card.UpdateParams{
		CardName: req.CardName,
		Limit:    req.Limit,
		DueDate:  req.DueDate,
		Last4:    req.Last4,
		Color:    req.Color,
	}
	if err := params.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.cardRepo.Update(r.Context(), userID, id, params)
	if err != nil {
		if errors.Is(err, card.ErrCardNotFound) {
			http.Error(w, "Card not found", http.StatusNotFound)
			return
		}
		log.Printf("Error updating card %s for user %s: %v", id, userID, err)
		http.Error(w, "Failed to update card", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

func (h *CardHandler) handleDeleteCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := r.PathValue("id")
	if id == "" {
		http.Error(w, "Card ID is required", http.StatusBadRequest)
		return
	}

	if err := h.cardRepo.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, card.ErrCardNotFound) {
			http.Error(w, "Card not found", http.StatusNotFound)
			return
		}
		log.Printf("Error deleting card %s for user %s: %v", id, userID, err)
		http.Error(w, "Failed to delete card", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
