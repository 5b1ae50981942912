package handlers

import (
	"net/http"

	"github.com/AnshRaj112/todak-backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// GetUser handles GET /users/{userId}
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Get(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		h.fail(w, r, err, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// MarkGuideSeen handles PATCH /users/{userId}/guide
func (h *Handler) MarkGuideSeen(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.MarkGuideSeen(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		h.fail(w, r, err, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// DeleteUser removes the user together with all of its journal data.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if err := h.users.Delete(r.Context(), userID); err != nil {
		h.fail(w, r, err, "User not found")
		return
	}

	h.log.Info("user deleted", zap.String("user_id", userID))
	writeJSON(w, http.StatusOK, models.StatusResponse{Status: "deleted"})
}
