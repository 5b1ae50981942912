package utils

import (
	"strings"
	"time"
)

const (
	DateLayout         = "2006-01-02"
	reminderLayout     = "15:04"
	reminderLayoutFull = "15:04:05"
)

// ValidationError represents a rejected request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Required fails when value is blank.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: field + " is required"}
	}
	return nil
}

// ValidateDate accepts calendar days in YYYY-MM-DD form.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return &ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"}
	}
	return nil
}

// ValidatePeriodType accepts "weekly" or "monthly".
func ValidatePeriodType(periodType string) error {
	switch periodType {
	case "weekly", "monthly":
		return nil
	}
	return &ValidationError{Field: "periodType", Message: "periodType must be weekly or monthly"}
}

// NormalizeReminderTime turns HH:MM or HH:MM:SS into the stored HH:MM:SS form.
func NormalizeReminderTime(value string) (string, error) {
	value = strings.TrimSpace(value)
	layout := reminderLayoutFull
	if len(value) == len(reminderLayout) {
		layout = reminderLayout
	}
	t, err := time.Parse(layout, value)
	if err != nil {
		return "", &ValidationError{Field: "reminderTime", Message: "reminderTime must be HH:MM"}
	}
	return t.Format(reminderLayoutFull), nil
}

// ShortReminderTime trims a stored HH:MM:SS value to HH:MM.
func ShortReminderTime(stored string) string {
	if len(stored) > len(reminderLayout) {
		return stored[:len(reminderLayout)]
	}
	return stored
}
