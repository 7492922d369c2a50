package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-tweet-studio/internal/hub"
	"github.com/sbilibin2017/gw-tweet-studio/internal/logger"
	"github.com/sbilibin2017/gw-tweet-studio/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrContentNotFound    = errors.New("content not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.UserDB, error)
	ListAll(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (int64, error)
}

// TokenGenerator defines an interface for issuing session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64, username string, isAdmin bool) (string, error)
}

// Broadcaster pushes events to connected browser sessions.
type Broadcaster interface {
	Broadcast(event string, data any)
	BroadcastRoom(room, event string, data any)
}

// AuthService handles registration, login, and logout.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	tokens      TokenGenerator
	broadcaster Broadcaster
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenGenerator, broadcaster Broadcaster) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		tokens:      tokens,
		broadcaster: broadcaster,
	}
}

// Register registers a new user. The existence check and the insert are not
// atomic; the unique constraints catch the race and it surfaces as the same
// duplicate error.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) error {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, username, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", username, "email", email)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if _, err := svc.writer.Save(ctx, username, email, string(hashedPassword)); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	svc.broadcaster.Broadcast(hub.EventUserUpdate, map[string]any{
		"action":   "new_user",
		"username": username,
	})

	return nil
}

// Login authenticates a user and returns a session token. Unknown usernames
// and wrong passwords collapse into the same generic error.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, *models.UserDB, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Warnw("login for unknown username", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("password mismatch", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.tokens.Generate(ctx, user.ID, user.Username, user.IsAdmin)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return "", nil, err
	}

	svc.broadcaster.Broadcast(hub.EventUserActivity, map[string]any{
		"user_id":  user.ID,
		"activity": fmt.Sprintf("User %s logged in", user.Username),
		"type":     "success",
	})

	return token, user, nil
}

// Logout announces the logout; the session cookie is cleared by the handler.
func (svc *AuthService) Logout(ctx context.Context, identity *models.Identity) {
	svc.broadcaster.Broadcast(hub.EventUserActivity, map[string]any{
		"activity": fmt.Sprintf("User %s logged out", identity.Username),
		"type":     "info",
	})
}

// ListUsers returns all registered users for the admin dashboard.
func (svc *AuthService) ListUsers(ctx context.Context) ([]models.UserDB, error) {
	return svc.reader.ListAll(ctx)
}
