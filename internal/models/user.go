package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                     // Primary key
	Username     string    `json:"username" db:"username"`         // Unique username
	Email        string    `json:"email" db:"email"`               // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`           // Salted password hash
	IsAdmin      bool      `json:"is_admin" db:"is_admin"`         // Admin flag
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
}
