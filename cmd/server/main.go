package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/AnshRaj112/todak-backend/internal/config"
	"github.com/AnshRaj112/todak-backend/internal/database"
	"github.com/AnshRaj112/todak-backend/internal/handlers"
	"github.com/AnshRaj112/todak-backend/internal/logger"
	"github.com/AnshRaj112/todak-backend/internal/middleware"
	"github.com/AnshRaj112/todak-backend/internal/routes"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	if err := logger.Init(logger.Config{Level: cfg.LogLevel, OutputPath: cfg.LogFile}); err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer logger.Sync()
	lg := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lg.Info("Connecting to database...", zap.String("type", cfg.DatabaseType))
	db, err := database.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		lg.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	lg.Info("✅ Database connected, schema ensured")

	opts := routes.Options{
		AllowedOrigins:  cfg.AllowedOrigins,
		Production:      cfg.IsProduction(),
		RateLimitMax:    cfg.RateLimitMax,
		RateLimitWindow: cfg.RateLimitWindow,
		Log:             lg,
	}

	// Redis is optional; without it only the in-memory limiter applies.
	if cfg.RedisURI != "" {
		rdb, err := database.ConnectRedis(ctx, cfg.RedisURI)
		if err != nil {
			lg.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer rdb.Close()
		opts.Counter = rdb
		lg.Info("✅ Redis rate limiting enabled",
			zap.Int("max", cfg.RateLimitMax),
			zap.Duration("window", cfg.RateLimitWindow),
		)
	}

	if opts.Production {
		// 10 req/s sustained, burst 30
		opts.Limiter = middleware.NewIPRateLimiter(rate.Limit(10), 30)
		go opts.Limiter.Run(ctx, time.Minute, 10*time.Minute)
		lg.Info("✅ Production security enabled (security headers, per-IP rate limiting)")
	}

	h := handlers.New(db, lg)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.NewRouter(h, opts),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info("🚀 Todak backend running", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("Failed to start server", zap.Error(err))
		}
	case <-ctx.Done():
		lg.Info("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("Server forced to shutdown", zap.Error(err))
	}
	lg.Info("Server stopped")
}
