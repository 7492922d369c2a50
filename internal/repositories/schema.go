package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-tweet-studio/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT UNIQUE NOT NULL,
	email TEXT UNIQUE NOT NULL,
	password_hash TEXT NOT NULL,
	is_admin BOOLEAN DEFAULT FALSE,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS generated_content (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER,
	prompt TEXT NOT NULL,
	generated_tweet TEXT NOT NULL,
	image_url TEXT,
	is_posted BOOLEAN DEFAULT FALSE,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (user_id) REFERENCES users (id)
);
`

// Default admin account seeded at first run.
const (
	defaultAdminUsername = "admin"
	defaultAdminEmail    = "admin@example.com"
	defaultAdminPassword = "admin123"
)

// Migrate creates the tables if they do not exist and seeds the default
// admin account on first run.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return err
	}

	var count int
	if err := db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM users WHERE username = ?`, defaultAdminUsername); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO users (username, email, password_hash, is_admin) VALUES (?, ?, ?, TRUE)`,
		defaultAdminUsername, defaultAdminEmail, string(hash))
	if err != nil {
		return err
	}

	logger.Log.Infow("seeded default admin account", "username", defaultAdminUsername)
	return nil
}
