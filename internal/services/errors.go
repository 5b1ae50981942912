package services

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyExists = errors.New("already exists")
	// ErrUnauthorized covers both an unknown id and a wrong password.
	ErrUnauthorized = errors.New("invalid credentials")
	ErrNotFound     = errors.New("not found")

	ErrUserExists   = fmt.Errorf("user %w", ErrAlreadyExists)
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
	ErrMoodNotFound = fmt.Errorf("mood %w", ErrNotFound)
)
