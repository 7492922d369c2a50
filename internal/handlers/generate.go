package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-tweet-studio/internal/logger"
	"github.com/sbilibin2017/gw-tweet-studio/internal/middlewares"
	"github.com/sbilibin2017/gw-tweet-studio/internal/models"
	"github.com/sbilibin2017/gw-tweet-studio/internal/services"
)

// Generator defines the interface that the generation service must implement.
type Generator interface {
	Generate(ctx context.Context, identity *models.Identity, prompt string) (*services.GenerationResult, error)
}

// GenerateRequest represents the JSON body for tweet generation
// swagger:model GenerateRequest
type GenerateRequest struct {
	// Prompt describing the tweet to generate
	// required: true
	// default: a new coffee blend launch
	Prompt string `json:"prompt"`
}

// GenerateResponse represents a generation response envelope
// swagger:model GenerateResponse
type GenerateResponse struct {
	// Whether generation succeeded
	Success bool `json:"success"`

	// Error message, present on failure only
	Message string `json:"message,omitempty"`

	// Generated tweet text
	Tweet string `json:"tweet,omitempty"`

	// Relative URL of the generated image, null when image generation
	// failed or the caller was anonymous
	ImageURL *string `json:"image_url"`

	// Identifier of the stored row, null for anonymous callers
	ContentID *int64 `json:"content_id"`

	// Whether the caller may publish the result
	CanPost bool `json:"can_post"`
}

// NewGenerateHandler returns an HTTP handler for tweet generation. Anonymous
// callers get text only; authenticated callers also get an image and a stored
// draft.
// @Summary Generate a tweet
// @Description Generates tweet text (and, for authenticated users, an image and a stored draft) from a prompt
// @Tags content
// @Accept json
// @Produce json
// @Param generateRequest body handlers.GenerateRequest true "Generation request"
// @Success 200 {object} handlers.GenerateResponse "Generation outcome"
// @Failure 400 {object} handlers.GenerateResponse "Missing prompt"
// @Router /generate-tweet [post]
func NewGenerateHandler(svc Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GenerateResponse{
				Success: false,
				Message: "Prompt is required",
			})
			return
		}

		prompt := strings.TrimSpace(req.Prompt)
		if prompt == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GenerateResponse{
				Success: false,
				Message: "Prompt is required",
			})
			return
		}

		result, err := svc.Generate(r.Context(), middlewares.IdentityFromContext(r.Context()), prompt)
		if err != nil {
			logger.Log.Errorw("generation failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(GenerateResponse{
				Success: false,
				Message: err.Error(),
			})
			return
		}

		json.NewEncoder(w).Encode(GenerateResponse{
			Success:   true,
			Tweet:     result.Tweet,
			ImageURL:  result.ImageURL,
			ContentID: result.ContentID,
			CanPost:   result.CanPost,
		})
	}
}
