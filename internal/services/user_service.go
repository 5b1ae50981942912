package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/AnshRaj112/todak-backend/internal/database"
	"github.com/AnshRaj112/todak-backend/internal/models"
	"github.com/AnshRaj112/todak-backend/pkg/utils"
)

// dummyHash is verified against when the id is unknown, so both login
// failures cost one argon2 derivation.
var dummyHash = sync.OnceValue(func() string {
	hashed, err := utils.HashPassword("todak-login-placeholder")
	if err != nil {
		return ""
	}
	return hashed
})

type UserService struct {
	db  *database.DB
	now func() time.Time
}

func NewUserService(db *database.DB) *UserService {
	return &UserService{db: db, now: time.Now}
}

// Signup creates a user with a fresh start date. An existing id is left untouched.
func (s *UserService) Signup(ctx context.Context, id, password, nickname string) (*models.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:        id,
		Password:  hashed,
		Nickname:  nickname,
		StartDate: s.now().UTC().Truncate(time.Microsecond),
	}

	err = s.db.WithTx(ctx, func(tx *database.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO users (id, password, nickname, start_date, has_seen_guide)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (id) DO NOTHING
		`, user.ID, user.Password, user.Nickname, user.StartDate, false)
		if err != nil {
			return fmt.Errorf("insert user: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrUserExists
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login returns the user when password matches the stored credential.
func (s *UserService) Login(ctx context.Context, id, password string) (*models.User, error) {
	user, err := s.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		utils.VerifyPassword(password, dummyHash())
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}

	ok, err := utils.VerifyPassword(password, user.Password)
	if err != nil || !ok {
		return nil, ErrUnauthorized
	}
	return user, nil
}

// Get returns the user with id, or ErrUserNotFound.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	var user *models.User
	err := s.db.WithTx(ctx, func(tx *database.Tx) error {
		var err error
		user, err = getUser(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// IDAvailable reports whether no user holds id yet.
func (s *UserService) IDAvailable(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := s.db.WithTx(ctx, func(tx *database.Tx) error {
		var err error
		exists, err = userExists(ctx, tx, id)
		return err
	})
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// MarkGuideSeen sets has_seen_guide. The flag is never cleared.
func (s *UserService) MarkGuideSeen(ctx context.Context, id string) (*models.User, error) {
	var user *models.User
	err := s.db.WithTx(ctx, func(tx *database.Tx) error {
		res, err := tx.ExecContext(ctx, `UPDATE users SET has_seen_guide = ? WHERE id = ?`, true, id)
		if err != nil {
			return fmt.Errorf("update guide flag: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrUserNotFound
		}
		user, err = getUser(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user together with every mood, review and reminder it owns.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.db.WithTx(ctx, func(tx *database.Tx) error {
		exists, err := userExists(ctx, tx, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrUserNotFound
		}

		for _, query := range []string{
			`DELETE FROM moods WHERE user_id = ?`,
			`DELETE FROM period_reviews WHERE user_id = ?`,
			`DELETE FROM user_reminders WHERE user_id = ?`,
			`DELETE FROM users WHERE id = ?`,
		} {
			if _, err := tx.ExecContext(ctx, query, id); err != nil {
				return fmt.Errorf("delete user %s: %w", id, err)
			}
		}
		return nil
	})
}

func getUser(ctx context.Context, tx *database.Tx, id string) (*models.User, error) {
	var user models.User
	err := tx.QueryRowContext(ctx, `
		SELECT id, password, nickname, start_date, has_seen_guide
		FROM users
		WHERE id = ?
	`, id).Scan(&user.ID, &user.Password, &user.Nickname, &user.StartDate, &user.HasSeenGuide)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	user.StartDate = user.StartDate.UTC()
	return &user, nil
}

func userExists(ctx context.Context, tx *database.Tx, id string) (bool, error) {
	var one int
	err := tx.QueryRowContext(ctx, `SELECT 1 FROM users WHERE id = ?`, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query user: %w", err)
	}
	return true, nil
}
