package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"centavo/internal/domain/tag"
	"centavo/internal/shared/middleware"
)

type TagHandler struct {
	tagRepo tag.Repository
}

func NewTagHandler(tagRepo tag.Repository) *TagHandler {
	return &TagHandler{tagRepo: tagRepo}
}

type CreateTagRequest struct {
	Name string `json:"name"`
}

type UpdateTagRequest struct {
	Name *string `json:"name,omitempty"`
}

// HandleTags routes collection-level requests based on method
func (h *TagHandler) HandleTags(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleListTags(w, r)
	case http.MethodPost:
		h.handleCreateTag(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleTagByID routes requests for a specific tag
func (h *TagHandler) HandleTagByID(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPut:
		h.handleUpdateTag(w, r)
	case http.MethodDelete:
		h.handleDeleteTag(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *TagHandler) handleListTags(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	tags, err := h.tagRepo.List(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing tags for user %s: %v", userID, err)
		http.Error(w, "Failed to list tags", http.StatusInternalServerError)
		return
	}

	if tags == nil {
		tags = []*tag.Tag{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tags)
}

func (h *TagHandler) handleCreateTag(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding create tag request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	params := tag.CreateParams{Name: req.Name}
	if err := params.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.tagRepo.Create(r.Context(), userID, params)
	if err != nil {
		log.Printf("Error creating tag for user %s: %v", userID, err)
		http.Error(w, "Failed to create tag", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(t)
}

func (h *TagHandler) handleUpdateTag(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := r.PathValue("id")
	if id == "" {
		http.Error(w, "Tag ID is required", http.StatusBadRequest)
		return
	}

	var req UpdateTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding update tag request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	params := tag.UpdateParams{Name: req.Name}
	if err := params.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.tagRepo.Update(r.Context(), userID, id, params)
	if err != nil {
		if errors.Is(err, tag.ErrTagNotFound) {
			http.Error(w, "Tag not found", http.StatusNotFound)
			return
		}
		log.Printf("Error updating tag %s for user %s: %v", id, userID, err)
		http.Error(w, "Failed to update tag", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(t)
}

func (h *TagHandler) handleDeleteTag(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := r.PathValue("id")
	if id == "" {
		http.Error(w, "Tag ID is required", http.StatusBadRequest)
		return
	}

	if err := h.tagRepo.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, tag.ErrTagNotFound) {
			http.Error(w, "Tag not found", http.StatusNotFound)
			return
		}
		log.Printf("Error deleting tag %s for user %s: %v", id, userID, err)
		http.Error(w, "Failed to delete tag", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
