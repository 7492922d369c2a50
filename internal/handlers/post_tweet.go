package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-tweet-studio/internal/logger"
	"github.com/sbilibin2017/gw-tweet-studio/internal/middlewares"
	"github.com/sbilibin2017/gw-tweet-studio/internal/models"
	"github.com/sbilibin2017/gw-tweet-studio/internal/services"
)

// Publisher defines the interface that the publish service must implement.
type Publisher interface {
	Publish(ctx context.Context, contentID int64, identity *models.Identity) error
}

// PostTweetRequest represents the JSON body for publishing a draft
// swagger:model PostTweetRequest
type PostTweetRequest struct {
	// Identifier of the content to publish
	// required: true
	// default: 1
	ContentID int64 `json:"content_id"`
}

// PostTweetResponse represents a publish response envelope
// swagger:model PostTweetResponse
type PostTweetResponse struct {
	// Whether publishing succeeded
	Success bool `json:"success"`

	// Outcome message
	// default: Tweet posted successfully!
	Message string `json:"message"`
}

// NewPostTweetHandler returns an HTTP handler that marks a draft as posted.
// Only the owner of the content may publish it.
// @Summary Publish a generated tweet
// @Description Marks the caller's stored content as posted
// @Tags content
// @Accept json
// @Produce json
// @Param postTweetRequest body handlers.PostTweetRequest true "Publish request"
// @Success 200 {object} handlers.PostTweetResponse "Publish outcome"
// @Router /post-tweet [post]
func NewPostTweetHandler(svc Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req PostTweetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ContentID == 0 {
			json.NewEncoder(w).Encode(PostTweetResponse{
				Success: false,
				Message: "Content ID is required",
			})
			return
		}

		identity := middlewares.IdentityFromContext(r.Context())

		if err := svc.Publish(r.Context(), req.ContentID, identity); err != nil {
			switch {
			case errors.Is(err, services.ErrContentNotFound):
				json.NewEncoder(w).Encode(PostTweetResponse{
					Success: false,
					Message: "Content not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(PostTweetResponse{
					Success: false,
					Message: "Internal server error",
				})
			}
			return
		}

		json.NewEncoder(w).Encode(PostTweetResponse{
			Success: true,
			Message: "Tweet posted successfully!",
		})
	}
}
