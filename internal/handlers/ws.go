package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-tweet-studio/internal/hub"
	"github.com/sbilibin2017/gw-tweet-studio/internal/middlewares"
)

// NewWSHandler returns an HTTP handler that upgrades the connection to a
// websocket and attaches the client to the hub with the caller's identity.
// @Summary Live updates websocket
// @Description Upgrades to a websocket for real-time content, user and health events
// @Tags realtime
// @Success 101 "Switching protocols"
// @Router /ws [get]
func NewWSHandler(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWS(h, middlewares.IdentityFromContext(r.Context()), w, r)
	}
}
