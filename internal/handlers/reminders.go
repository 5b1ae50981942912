package handlers

import (
	"net/http"

	"github.com/AnshRaj112/todak-backend/internal/models"
	"github.com/go-chi/chi/v5"
)

// GetReminder returns the daily reminder time, null when none is set.
func (h *Handler) GetReminder(w http.ResponseWriter, r *http.Request) {
	reminder, err := h.reminders.Get(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		h.fail(w, r, err, "")
		return
	}

	var resp models.ReminderResponse
	if reminder != "" {
		resp.ReminderTime = &reminder
	}
	writeJSON(w, http.StatusOK, resp)
}

// SaveReminder handles POST /users/{userId}/reminder
func (h *Handler) SaveReminder(w http.ResponseWriter, r *http.Request) {
	var req models.SaveReminderRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err, "")
		return
	}

	saved, err := h.reminders.Save(r.Context(), chi.URLParam(r, "userId"), req.ReminderTime)
	if err != nil {
		h.fail(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, models.ReminderResponse{ReminderTime: &saved})
}
