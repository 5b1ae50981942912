package handlers

import (
	"net/http"

	"github.com/AnshRaj112/todak-backend/internal/models"
	"github.com/go-chi/chi/v5"
)

// GetReview handles GET /users/{userId}/reviews?periodType=&periodKey=
func (h *Handler) GetReview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	review, err := h.reviews.Get(r.Context(), chi.URLParam(r, "userId"), q.Get("periodType"), q.Get("periodKey"))
	if err != nil {
		h.fail(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, models.ReviewResponse{Review: review})
}

// SaveReview creates or replaces the review for one period.
func (h *Handler) SaveReview(w http.ResponseWriter, r *http.Request) {
	var req models.SaveReviewRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err, "")
		return
	}

	review, err := h.reviews.Save(r.Context(), chi.URLParam(r, "userId"), req)
	if err != nil {
		h.fail(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, models.ReviewResponse{Review: review})
}
