package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-tweet-studio/internal/logger"
	"github.com/sbilibin2017/gw-tweet-studio/internal/middlewares"
	"github.com/sbilibin2017/gw-tweet-studio/internal/services"
)

// Deleter defines the interface that the delete service must implement.
type Deleter interface {
	Delete(ctx context.Context, contentID int64, adminUsername string) error
}

// DeleteContentResponse represents a delete response envelope
// swagger:model DeleteContentResponse
type DeleteContentResponse struct {
	// Whether deletion succeeded
	Success bool `json:"success"`

	// Outcome message
	// default: Content deleted successfully
	Message string `json:"message"`
}

// NewDeleteContentHandler returns an HTTP handler that hard-deletes content.
// Admin only; no ownership check.
// @Summary Delete generated content
// @Description Deletes a stored content row by id
// @Tags admin
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} handlers.DeleteContentResponse "Deletion outcome"
// @Failure 404 {object} handlers.DeleteContentResponse "Content not found"
// @Router /delete-content/{id} [delete]
func NewDeleteContentHandler(svc Deleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		contentID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DeleteContentResponse{
				Success: false,
				Message: "Content ID is required",
			})
			return
		}

		identity := middlewares.IdentityFromContext(r.Context())

		if err := svc.Delete(r.Context(), contentID, identity.Username); err != nil {
			switch {
			case errors.Is(err, services.ErrContentNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DeleteContentResponse{
					Success: false,
					Message: "Content not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DeleteContentResponse{
					Success: false,
					Message: "Internal server error",
				})
			}
			return
		}

		json.NewEncoder(w).Encode(DeleteContentResponse{
			Success: true,
			Message: "Content deleted successfully",
		})
	}
}
