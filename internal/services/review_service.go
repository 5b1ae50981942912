package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/AnshRaj112/todak-backend/internal/database"
	"github.com/AnshRaj112/todak-backend/internal/models"
	"github.com/AnshRaj112/todak-backend/pkg/utils"
)

type ReviewService struct {
	db  *database.DB
	now func() time.Time
}

func NewReviewService(db *database.DB) *ReviewService {
	return &ReviewService{db: db, now: time.Now}
}

// Get returns the review for one period, or nil when none was written.
func (s *ReviewService) Get(ctx context.Context, userID, periodType, periodKey string) (*models.PeriodReview, error) {
	if err := utils.ValidatePeriodType(periodType); err != nil {
		return nil, err
	}
	if err := utils.Required("periodKey", periodKey); err != nil {
		return nil, err
	}

	var review *models.PeriodReview
	err := s.db.WithTx(ctx, func(tx *database.Tx) error {
		row := tx.QueryRowContext(ctx, `
			SELECT period_type, period_key, content, last_mood_ts
			FROM period_reviews
			WHERE user_id = ? AND period_type = ? AND period_key = ?
		`, userID, periodType, periodKey)

		var err error
		review, err = scanReview(row)
		if err == sql.ErrNoRows {
			review = nil
			return nil
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

// Save writes the review for one period, replacing any earlier version.
func (s *ReviewService) Save(ctx context.Context, userID string, req models.SaveReviewRequest) (*models.PeriodReview, error) {
	if err := utils.ValidatePeriodType(req.PeriodType); err != nil {
		return nil, err
	}
	if err := utils.Required("periodKey", req.PeriodKey); err != nil {
		return nil, err
	}
	if err := utils.Required("content", req.Content); err != nil {
		return nil, err
	}

	var lastMoodTS sql.NullInt64
	if req.LastMoodTimestamp != nil {
		lastMoodTS = sql.NullInt64{Int64: *req.LastMoodTimestamp, Valid: true}
	}

	var review *models.PeriodReview
	err := s.db.WithTx(ctx, func(tx *database.Tx) error {
		exists, err := userExists(ctx, tx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrUserNotFound
		}

		row := tx.QueryRowContext(ctx, `
			INSERT INTO period_reviews (user_id, period_type, period_key, content, last_mood_ts, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT (user_id, period_type, period_key) DO UPDATE SET
				content = excluded.content,
				last_mood_ts = excluded.last_mood_ts,
				updated_at = excluded.updated_at
			RETURNING period_type, period_key, content, last_mood_ts
		`, userID, req.PeriodType, req.PeriodKey, req.Content, lastMoodTS, s.now().UTC())

		review, err = scanReview(row)
		if err != nil {
			return fmt.Errorf("upsert review: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

func scanReview(row scanner) (*models.PeriodReview, error) {
	var (
		review     models.PeriodReview
		lastMoodTS sql.NullInt64
	)
	if err := row.Scan(&review.PeriodType, &review.PeriodKey, &review.Content, &lastMoodTS); err != nil {
		return nil, err
	}
	if lastMoodTS.Valid {
		review.LastMoodTimestamp = lastMoodTS.Int64
	}
	return &review, nil
}
