package handlers

import (
	"net/http"
	"strings"

	"github.com/AnshRaj112/todak-backend/internal/models"
	"github.com/AnshRaj112/todak-backend/pkg/utils"
	"go.uber.org/zap"
)

// Signup handles POST /signup
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err, "")
		return
	}
	req.Nickname = strings.TrimSpace(req.Nickname)

	for _, check := range []error{
		utils.Required("id", req.ID),
		utils.Required("password", req.Password),
		utils.Required("nickname", req.Nickname),
	} {
		if check != nil {
			h.fail(w, r, check, "")
			return
		}
	}

	user, err := h.users.Signup(r.Context(), req.ID, req.Password, req.Nickname)
	if err != nil {
		h.fail(w, r, err, "")
		return
	}

	h.log.Info("✅ user signed up", zap.String("user_id", user.ID))
	writeJSON(w, http.StatusCreated, user)
}

// Login handles POST /login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err, "")
		return
	}
	if err := utils.Required("id", req.ID); err != nil {
		h.fail(w, r, err, "")
		return
	}
	if err := utils.Required("password", req.Password); err != nil {
		h.fail(w, r, err, "")
		return
	}

	user, err := h.users.Login(r.Context(), req.ID, req.Password)
	if err != nil {
		h.fail(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// CheckID handles GET /check-id?id=
func (h *Handler) CheckID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if err := utils.Required("id", id); err != nil {
		h.fail(w, r, err, "")
		return
	}

	available, err := h.users.IDAvailable(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, models.CheckIDResponse{Available: available})
}
