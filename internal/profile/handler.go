package profile

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/partymatch/pkg/middleware"
	"github.com/fkhayef/partymatch/pkg/response"
)

// Handler handles HTTP requests for profile lookups
type Handler struct {
	service *Service
}

// NewHandler creates a new profile handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for profile endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/status", h.Status)
	r.Get("/{aid}", h.GetByAccountID)

	return r
}

// GetByAccountID handles GET /client/profile/{aid}
// @Summary      Get profile summary
// @Description  Public summary of the profile owning an account id
// @Tags         profiles
// @Produce      json
// @Param        aid path int true "Account ID"
// @Success      200 {object} response.Envelope{data=SummaryResponse}
// @Failure      404 {object} response.Envelope
// @Router       /client/profile/{aid} [get]
func (h *Handler) GetByAccountID(w http.ResponseWriter, r *http.Request) {
	aid, err := strconv.ParseInt(chi.URLParam(r, "aid"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid account ID")
		return
	}

	identity, err := h.service.ByAccountID(r.Context(), aid)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get profile")
		return
	}

	response.JSON(w, identity.ToSummary())
}

// Status handles POST /client/profile/status
// @Summary      Caller profile status
// @Tags         profiles
// @Produce      json
// @Success      200 {object} response.Envelope{data=StatusResponse}
// @Router       /client/profile/status [post]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		response.Unauthorized(w, "Session id required")
		return
	}

	identity, err := h.service.BySession(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get profile status")
		return
	}

	response.JSON(w, &StatusResponse{Profiles: identity.StatusEntries()})
}
