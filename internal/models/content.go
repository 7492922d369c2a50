package models

import "time"

// ContentDB represents a generated content record in the database.
// UserID is NULL for rows that were never persisted for an owner; in practice
// only authenticated generation persists rows, so the owner is usually set.
type ContentDB struct {
	ID             int64      `json:"id" db:"id"`                           // Primary key
	UserID         *int64     `json:"user_id,omitempty" db:"user_id"`       // Owning user, nullable
	Prompt         string     `json:"prompt" db:"prompt"`                   // Original user prompt
	GeneratedTweet string     `json:"tweet" db:"generated_tweet"`           // Generated tweet text
	ImageURL       *string    `json:"image_url" db:"image_url"`             // Relative URL of the generated image, nullable
	IsPosted       bool       `json:"is_posted" db:"is_posted"`             // Publication flag
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`           // Creation timestamp
}

// ContentWithOwner is a content row joined with its owner's username,
// as listed on the admin dashboard.
type ContentWithOwner struct {
	ContentDB
	OwnerUsername *string `json:"owner_username" db:"owner_username"`
}
