package models

// Recommendation is an opaque record produced alongside the AI message
// (e.g. {"type":"music","id":"42","title":...}). Numbers inside it are
// json.Number so they round-trip exactly.
type Recommendation map[string]any

// MoodEntry is one user's log for a single calendar date.
type MoodEntry struct {
	ID              int64            `json:"id"`
	UserID          string           `json:"-"`
	Date            string           `json:"date"`
	EmotionIDs      []string         `json:"emotionIds"`
	Content         string           `json:"content"`
	AIMessage       *string          `json:"aiMessage,omitempty"`
	Recommendations []Recommendation `json:"recommendations"`
	Timestamp       int64            `json:"timestamp"`
}

// SaveMoodRequest is the body of POST /users/{userId}/moods.
type SaveMoodRequest struct {
	Date            string           `json:"date"`
	EmotionIDs      []string         `json:"emotionIds"`
	Content         string           `json:"content"`
	AIMessage       *string          `json:"aiMessage"`
	Recommendations []Recommendation `json:"recommendations"`
	Timestamp       *int64           `json:"timestamp"`
}
