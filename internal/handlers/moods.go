package handlers

import (
	"net/http"
	"strconv"

	"github.com/AnshRaj112/todak-backend/internal/models"
	"github.com/AnshRaj112/todak-backend/pkg/utils"
	"github.com/go-chi/chi/v5"
)

// ListMoods handles GET /users/{userId}/moods
func (h *Handler) ListMoods(w http.ResponseWriter, r *http.Request) {
	moods, err := h.moods.List(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		h.fail(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, moods)
}

// SaveMood creates or replaces the entry for the request's date.
func (h *Handler) SaveMood(w http.ResponseWriter, r *http.Request) {
	var req models.SaveMoodRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err, "")
		return
	}
	if err := utils.ValidateDate(req.Date); err != nil {
		h.fail(w, r, err, "")
		return
	}

	mood, err := h.moods.Save(r.Context(), chi.URLParam(r, "userId"), req)
	if err != nil {
		h.fail(w, r, err, "Mood not found")
		return
	}
	writeJSON(w, http.StatusOK, mood)
}

// DeleteMood handles DELETE /users/{userId}/moods/{moodId}
func (h *Handler) DeleteMood(w http.ResponseWriter, r *http.Request) {
	moodID, err := strconv.ParseInt(chi.URLParam(r, "moodId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "moodId must be an integer")
		return
	}

	if err := h.moods.Delete(r.Context(), chi.URLParam(r, "userId"), moodID); err != nil {
		h.fail(w, r, err, "Mood not found")
		return
	}
	writeJSON(w, http.StatusOK, models.StatusResponse{Status: "deleted"})
}
