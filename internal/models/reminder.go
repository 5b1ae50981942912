package models

type SaveReminderRequest struct {
	ReminderTime string `json:"reminderTime"`
}

// ReminderResponse carries the daily reminder as HH:MM, or null when unset.
type ReminderResponse struct {
	ReminderTime *string `json:"reminderTime"`
}
