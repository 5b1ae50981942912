package handlers

import (
	"github.com/AnshRaj112/todak-backend/internal/database"
	"github.com/AnshRaj112/todak-backend/internal/services"
	"go.uber.org/zap"
)

// Handler serves the journal API on top of the services.
type Handler struct {
	users     *services.UserService
	moods     *services.MoodService
	reviews   *services.ReviewService
	reminders *services.ReminderService
	log       *zap.Logger
}

func New(db *database.DB, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		users:     services.NewUserService(db),
		moods:     services.NewMoodService(db),
		reviews:   services.NewReviewService(db),
		reminders: services.NewReminderService(db),
		log:       log,
	}
}
