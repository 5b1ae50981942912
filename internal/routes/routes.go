package routes

import (
	"net/http"
	"time"

	"github.com/AnshRaj112/todak-backend/internal/handlers"
	"github.com/AnshRaj112/todak-backend/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Options selects the middleware wrapped around the API routes.
type Options struct {
	AllowedOrigins []string
	Production     bool
	// Limiter is the in-memory per-IP limiter, applied in production only.
	Limiter *middleware.IPRateLimiter
	// Counter enables the Redis fixed-window limiter when non-nil.
	Counter         middleware.Counter
	RateLimitMax    int
	RateLimitWindow time.Duration
	Log             *zap.Logger
}

// NewRouter builds the middleware chain and registers every route.
func NewRouter(h *handlers.Handler, opts Options) chi.Router {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(opts.AllowedOrigins))
	if opts.Production {
		r.Use(middleware.SecurityHeaders)
	}

	// Health check (no rate limit)
	r.Get("/health", h.Health)

	r.Group(func(r chi.Router) {
		if opts.Production && opts.Limiter != nil {
			r.Use(opts.Limiter.Handler)
		}
		if opts.Counter != nil {
			r.Use(middleware.RedisRateLimit(opts.Counter, opts.RateLimitMax, opts.RateLimitWindow, log))
		}
		SetupRoutes(r, h)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Not Found"}`))
	})

	return r
}

func SetupRoutes(r chi.Router, h *handlers.Handler) {
	// Account routes
	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
	r.Get("/check-id", h.CheckID)

	r.Route("/users/{userId}", func(r chi.Router) {
		r.Get("/", h.GetUser)
		r.Delete("/", h.DeleteUser)
		r.Patch("/guide", h.MarkGuideSeen)

		// Mood journal
		r.Get("/moods", h.ListMoods)
		r.Post("/moods", h.SaveMood)
		r.Delete("/moods/{moodId}", h.DeleteMood)

		// Period reviews
		r.Get("/reviews", h.GetReview)
		r.Post("/reviews", h.SaveReview)

		r.Get("/reminder", h.GetReminder)
		r.Post("/reminder", h.SaveReminder)
	})
}
