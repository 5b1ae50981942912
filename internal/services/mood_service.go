package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/AnshRaj112/todak-backend/internal/database"
	"github.com/AnshRaj112/todak-backend/internal/models"
)

const moodColumns = `id, user_id, record_date, emotion_ids, content, ai_message, recommendations, timestamp_ms`

type MoodService struct {
	db  *database.DB
	now func() time.Time
}

func NewMoodService(db *database.DB) *MoodService {
	return &MoodService{db: db, now: time.Now}
}

// List returns the user's entries ordered by date. An unknown user has no entries.
func (s *MoodService) List(ctx context.Context, userID string) ([]models.MoodEntry, error) {
	moods := make([]models.MoodEntry, 0)
	err := s.db.WithTx(ctx, func(tx *database.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT `+moodColumns+`
			FROM moods
			WHERE user_id = ?
			ORDER BY record_date ASC, id ASC
		`, userID)
		if err != nil {
			return fmt.Errorf("query moods: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			mood, err := scanMood(rows)
			if err != nil {
				return err
			}
			moods = append(moods, *mood)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return moods, nil
}

// Save inserts the entry for (userID, date) or overwrites the existing one in
// place, keeping its id. The write is a single conflict-resolving statement.
func (s *MoodService) Save(ctx context.Context, userID string, req models.SaveMoodRequest) (*models.MoodEntry, error) {
	emotionIDs := req.EmotionIDs
	if emotionIDs == nil {
		emotionIDs = []string{}
	}
	recommendations := req.Recommendations
	if recommendations == nil {
		recommendations = []models.Recommendation{}
	}

	emotionJSON, err := json.Marshal(emotionIDs)
	if err != nil {
		return nil, fmt.Errorf("encode emotion ids: %w", err)
	}
	recsJSON, err := json.Marshal(recommendations)
	if err != nil {
		return nil, fmt.Errorf("encode recommendations: %w", err)
	}

	aiMessage := ""
	if req.AIMessage != nil {
		aiMessage = *req.AIMessage
	}

	timestamp := s.now().UnixMilli()
	if req.Timestamp != nil && *req.Timestamp != 0 {
		timestamp = *req.Timestamp
	}

	var mood *models.MoodEntry
	err = s.db.WithTx(ctx, func(tx *database.Tx) error {
		exists, err := userExists(ctx, tx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrUserNotFound
		}

		row := tx.QueryRowContext(ctx, `
			INSERT INTO moods (user_id, record_date, emotion_ids, content, ai_message, recommendations, timestamp_ms)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (user_id, record_date) DO UPDATE SET
				emotion_ids = excluded.emotion_ids,
				content = excluded.content,
				ai_message = excluded.ai_message,
				recommendations = excluded.recommendations,
				timestamp_ms = excluded.timestamp_ms
			RETURNING `+moodColumns,
			userID, req.Date, string(emotionJSON), req.Content, aiMessage, string(recsJSON), timestamp)

		mood, err = scanMood(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return mood, nil
}

// Delete removes moodID only when it belongs to userID.
func (s *MoodService) Delete(ctx context.Context, userID string, moodID int64) error {
	return s.db.WithTx(ctx, func(tx *database.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM moods WHERE id = ? AND user_id = ?`, moodID, userID)
		if err != nil {
			return fmt.Errorf("delete mood: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrMoodNotFound
		}
		return nil
	})
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMood(row scanner) (*models.MoodEntry, error) {
	var (
		mood            models.MoodEntry
		emotionJSON     string
		aiMessage       string
		recommendations string
	)
	if err := row.Scan(&mood.ID, &mood.UserID, &mood.Date, &emotionJSON, &mood.Content,
		&aiMessage, &recommendations, &mood.Timestamp); err != nil {
		return nil, fmt.Errorf("scan mood: %w", err)
	}

	mood.EmotionIDs = []string{}
	if emotionJSON != "" {
		if err := json.Unmarshal([]byte(emotionJSON), &mood.EmotionIDs); err != nil {
			return nil, fmt.Errorf("decode emotion ids of mood %d: %w", mood.ID, err)
		}
		if mood.EmotionIDs == nil {
			mood.EmotionIDs = []string{}
		}
	}

	mood.Recommendations = []models.Recommendation{}
	if recommendations != "" {
		if err := decodeExact(recommendations, &mood.Recommendations); err != nil {
			return nil, fmt.Errorf("decode recommendations of mood %d: %w", mood.ID, err)
		}
		if mood.Recommendations == nil {
			mood.Recommendations = []models.Recommendation{}
		}
	}

	if aiMessage != "" {
		mood.AIMessage = &aiMessage
	}
	return &mood, nil
}

// decodeExact keeps numbers as json.Number so opaque records round-trip unchanged.
func decodeExact(data string, v any) error {
	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}
