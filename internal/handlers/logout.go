package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-tweet-studio/internal/jwt"
	"github.com/sbilibin2017/gw-tweet-studio/internal/middlewares"
	"github.com/sbilibin2017/gw-tweet-studio/internal/models"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, identity *models.Identity)
}

// NewLogoutHandler returns an HTTP handler that ends the session. The cookie
// is cleared and the browser is sent back to the home page.
// @Summary User logout
// @Description Clears the session cookie and redirects to the home page
// @Tags auth
// @Success 302 "Redirect to home"
// @Router /logout [get]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Logout(r.Context(), middlewares.IdentityFromContext(r.Context()))

		http.SetCookie(w, &http.Cookie{
			Name:     jwt.SessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})

		http.Redirect(w, r, "/", http.StatusFound)
	}
}
