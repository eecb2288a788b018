package notification

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/fkhayef/partymatch/internal/profile"
	"github.com/fkhayef/partymatch/pkg/response"
)

// SessionResolver maps a session id onto the profile that owns it
type SessionResolver interface {
	BySession(ctx context.Context, sessionID string) (*profile.Identity, error)
}

// Handler upgrades notifier connections
type Handler struct {
	hub      *Hub
	sessions SessionResolver
	upgrader websocket.Upgrader
}

// NewHandler creates a new notifier handler
func NewHandler(hub *Hub, sessions SessionResolver) *Handler {
	return &Handler{
		hub:      hub,
		sessions: sessions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Routes returns the router for notifier endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/getwebsocket/{sessionID}", h.Connect)

	return r
}

// Connect handles GET /notifierServer/getwebsocket/{sessionID}
// @Summary      Open the push channel
// @Tags         notifier
// @Param        sessionID path string true "Session id"
// @Success      101 "Switching protocols"
// @Failure      401 {object} response.Envelope
// @Router       /notifierServer/getwebsocket/{sessionID} [get]
func (h *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	identity, err := h.sessions.BySession(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			response.Unauthorized(w, "Unknown session")
			return
		}
		response.InternalError(w, "Failed to resolve session")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Failed to upgrade WebSocket", "error", err, "module", "socket")
		return
	}

	h.hub.Serve(identity.ProfileID, conn)
}
