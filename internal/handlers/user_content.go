package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-tweet-studio/internal/logger"
	"github.com/sbilibin2017/gw-tweet-studio/internal/middlewares"
	"github.com/sbilibin2017/gw-tweet-studio/internal/models"
)

// UserContentLister defines the interface that the content service must
// implement for the user-content listing.
type UserContentLister interface {
	ListUserContent(ctx context.Context, userID int64) ([]models.ContentDB, error)
}

// UserContentResponse represents the user-content listing envelope
// swagger:model UserContentResponse
type UserContentResponse struct {
	// Whether the listing succeeded
	Success bool `json:"success"`

	// Error message, present on failure only
	Message string `json:"message,omitempty"`

	// Caller's generated content, newest first
	Content []models.ContentDB `json:"content,omitempty"`

	// Total number of items
	Total int `json:"total"`

	// Number of published items
	Published int `json:"published"`

	// Number of unpublished items
	Drafts int `json:"drafts"`

	// Number of items with a generated image
	Images int `json:"images"`
}

// NewUserContentHandler returns an HTTP handler that lists the caller's
// generated content with summary counts.
// @Summary List own generated content
// @Description Returns the authenticated user's generated content, newest first, with summary counts
// @Tags content
// @Produce json
// @Success 200 {object} handlers.UserContentResponse "Content listing"
// @Failure 500 {object} handlers.UserContentResponse "Internal server error"
// @Router /api/user-content [get]
func NewUserContentHandler(svc UserContentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		identity := middlewares.IdentityFromContext(r.Context())

		content, err := svc.ListUserContent(r.Context(), identity.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list user content", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UserContentResponse{
				Success: false,
				Message: "Internal server error",
			})
			return
		}

		resp := UserContentResponse{
			Success: true,
			Content: content,
			Total:   len(content),
		}
		for _, item := range content {
			if item.IsPosted {
				resp.Published++
			} else {
				resp.Drafts++
			}
			if item.ImageURL != nil {
				resp.Images++
			}
		}

		json.NewEncoder(w).Encode(resp)
	}
}
