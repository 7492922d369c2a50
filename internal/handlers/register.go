package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-tweet-studio/internal/logger"
	"github.com/sbilibin2017/gw-tweet-studio/internal/services"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password string) error
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// RegisterResponse represents a registration response envelope
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Whether registration succeeded
	Success bool `json:"success"`

	// Outcome message
	// default: Registration successful
	Message string `json:"message"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Ensures unique username and email. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 200 {object} handlers.RegisterResponse "Registration outcome"
// @Failure 400 {object} handlers.RegisterResponse "Missing field / invalid request"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterResponse{
				Success: false,
				Message: "All fields are required",
			})
			return
		}

		if req.Username == "" || req.Email == "" || req.Password == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterResponse{
				Success: false,
				Message: "All fields are required",
			})
			return
		}

		if err := svc.Register(r.Context(), req.Username, req.Email, req.Password); err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				json.NewEncoder(w).Encode(RegisterResponse{
					Success: false,
					Message: "User already exists",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RegisterResponse{
					Success: false,
					Message: "Internal server error",
				})
			}
			return
		}

		json.NewEncoder(w).Encode(RegisterResponse{
			Success: true,
			Message: "Registration successful",
		})
	}
}
