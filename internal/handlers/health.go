package handlers

import (
	"net/http"

	"github.com/AnshRaj112/todak-backend/internal/models"
)

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.StatusResponse{Status: "ok"})
}
