package models

const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// PeriodReview is a written look back over a week or a month of moods.
type PeriodReview struct {
	PeriodType        string `json:"periodType"`
	PeriodKey         string `json:"periodKey"`
	Content           string `json:"content"`
	LastMoodTimestamp int64  `json:"lastMoodTimestamp"`
}

type SaveReviewRequest struct {
	PeriodType        string `json:"periodType"`
	PeriodKey         string `json:"periodKey"`
	Content           string `json:"content"`
	LastMoodTimestamp *int64 `json:"lastMoodTimestamp"`
}

type ReviewResponse struct {
	Review *PeriodReview `json:"review"`
}
