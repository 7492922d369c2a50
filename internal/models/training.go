package models

// TrainingEntry is one generation event appended to the flat training-data
// log. Field names match the persisted JSON format.
type TrainingEntry struct {
	UserID         *int64  `json:"user_id"`
	Prompt         string  `json:"prompt"`
	GeneratedTweet string  `json:"generated_tweet"`
	ImageURL       *string `json:"image_url"`
	Timestamp      string  `json:"timestamp"`
}
