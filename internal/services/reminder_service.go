package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/AnshRaj112/todak-backend/internal/database"
	"github.com/AnshRaj112/todak-backend/pkg/utils"
)

type ReminderService struct {
	db  *database.DB
	now func() time.Time
}

func NewReminderService(db *database.DB) *ReminderService {
	return &ReminderService{db: db, now: time.Now}
}

// Get returns the reminder as HH:MM, or "" when the user has none.
func (s *ReminderService) Get(ctx context.Context, userID string) (string, error) {
	var stored string
	err := s.db.WithTx(ctx, func(tx *database.Tx) error {
		err := tx.QueryRowContext(ctx, `SELECT reminder_time FROM user_reminders WHERE user_id = ?`, userID).Scan(&stored)
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return fmt.Errorf("query reminder: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return utils.ShortReminderTime(stored), nil
}

// Save stores the reminder time (HH:MM or HH:MM:SS) and returns it as HH:MM.
func (s *ReminderService) Save(ctx context.Context, userID, reminderTime string) (string, error) {
	normalized, err := utils.NormalizeReminderTime(reminderTime)
	if err != nil {
		return "", err
	}

	err = s.db.WithTx(ctx, func(tx *database.Tx) error {
		exists, err := userExists(ctx, tx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrUserNotFound
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO user_reminders (user_id, reminder_time, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT (user_id) DO UPDATE SET
				reminder_time = excluded.reminder_time,
				updated_at = excluded.updated_at
		`, userID, normalized, s.now().UTC())
		if err != nil {
			return fmt.Errorf("upsert reminder: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return utils.ShortReminderTime(normalized), nil
}
