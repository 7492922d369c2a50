package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-tweet-studio/internal/jwt"
	"github.com/sbilibin2017/gw-tweet-studio/internal/logger"
	"github.com/sbilibin2017/gw-tweet-studio/internal/models"
	"github.com/sbilibin2017/gw-tweet-studio/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, *models.UserDB, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a login response envelope
// swagger:model LoginResponse
type LoginResponse struct {
	// Whether login succeeded
	Success bool `json:"success"`

	// Outcome message
	// default: Login successful
	Message string `json:"message"`

	// Whether the authenticated user is an administrator
	IsAdmin bool `json:"is_admin,omitempty"`
}

// NewLoginHandler returns an HTTP handler for user login. On success the
// session token is set as an HttpOnly cookie.
// @Summary User login
// @Description Authenticate user and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Login outcome"
// @Router /login [post]
func NewLoginHandler(svc Loginer, sessionTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginResponse{
				Success: false,
				Message: "Invalid credentials",
			})
			return
		}

		token, user, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				json.NewEncoder(w).Encode(LoginResponse{
					Success: false,
					Message: "Invalid credentials",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoginResponse{
					Success: false,
					Message: "Internal server error",
				})
			}
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     jwt.SessionCookieName,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(sessionTTL),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		json.NewEncoder(w).Encode(LoginResponse{
			Success: true,
			Message: "Login successful",
			IsAdmin: user.IsAdmin,
		})
	}
}
