package group

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/fkhayef/partymatch/internal/profile"
	"github.com/fkhayef/partymatch/pkg/middleware"
	"github.com/fkhayef/partymatch/pkg/response"
)

// Handler handles HTTP requests for party operations
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// NewHandler creates a new group handler
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
	}
}

// Routes returns the router for /client/match endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/exit", h.NoOp)

	r.Route("/group", func(r chi.Router) {
		// Invitations
		r.Post("/invite/send", h.SendInvite)
		r.Post("/invite/accept", h.AcceptInvite)
		r.Post("/invite/cancel", h.CancelInvite)
		r.Post("/invite/cancel-all", h.CancelAllInvites)
		r.Post("/invite/decline", h.DeclineInvite)

		// Membership
		r.Post("/leave", h.Leave)
		r.Post("/exit_from_menu", h.ExitFromMenu)
		r.Post("/player/remove", h.Kick)
		r.Post("/transfer", h.Transfer)
		r.Post("/delete", h.Disband)
		r.Post("/status", h.Status)
		r.Post("/current", h.Current)

		r.Post("/looking/start", h.NoOp)
		r.Post("/looking/stop", h.NoOp)
	})

	r.Post("/raid/ready", h.Ready)
	r.Post("/raid/not-ready", h.NotReady)

	return r
}

// SendInvite handles POST /client/match/group/invite/send
// @Summary      Invite a player
// @Description  Invite an account into the caller's group, creating the group if needed
// @Tags         group
// @Accept       json
// @Produce      json
// @Param        request body InviteSendRequest true "Invite recipient"
// @Success      200 {object} response.Envelope{data=string}
// @Failure      400 {object} response.Envelope
// @Router       /client/match/group/invite/send [post]
func (h *Handler) SendInvite(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionOf(w, r)
	if !ok {
		return
	}

	var req InviteSendRequest
	if !h.decode(w, r, &req) {
		return
	}

	inviteID, err := h.service.SendInvite(r.Context(), sessionID, req.To, req.InLobby)
	if err != nil {
		fail(w, err, "")
		return
	}

	response.JSON(w, inviteID)
}

// AcceptInvite handles POST /client/match/group/invite/accept
// @Summary      Accept an invite
// @Tags         group
// @Accept       json
// @Produce      json
// @Param        request body RequestIDRequest true "Invite id"
// @Success      200 {object} response.Envelope{data=[]MemberState}
// @Router       /client/match/group/invite/accept [post]
func (h *Handler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionOf(w, r)
	if !ok {
		return
	}

	var req RequestIDRequest
	if !h.decode(w, r, &req) {
		return
	}

	members, err := h.service.AcceptInvite(r.Context(), sessionID, req.RequestID)
	if err != nil {
		fail(w, err, members)
		return
	}

	response.JSON(w, members)
}

// CancelInvite handles POST /client/match/group/invite/cancel
// @Summary      Cancel an invite
// @Tags         group
// @Accept       json
// @Produce      json
// @Param        request body RequestIDRequest true "Invite id"
// @Success      200 {object} response.Envelope{data=bool}
// @Router       /client/match/group/invite/cancel [post]
func (h *Handler) CancelInvite(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionOf(w, r)
	if !ok {
		return
	}

	var req RequestIDRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.respondBool(w, h.service.CancelInvite(r.Context(), sessionID, req.RequestID))
}

// CancelAllInvites handles POST /client/match/group/invite/cancel-all
// @Summary      Cancel every invite
// @Description  Owner only; the owner stays in the group
// @Tags         group
// @Produce      json
// @Success      200 {object} response.Envelope{data=bool}
// @Router       /client/match/group/invite/cancel-all [post]
func (h *Handler) CancelAllInvites(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionOf(w, r)
	if !ok {
		return
	}

	h.respondBool(w, h.service.CancelAllInvites(r.Context(), sessionID))
}

// DeclineInvite handles POST /client/match/group/invite/decline
// @Summary      Decline an invite
// @Tags         group
// @Accept       json
// @Produce      json
// @Param        request body RequestIDRequest true "Invite id"
// @Success      200 {object} response.Envelope{data=bool}
// @Router       /client/match/group/invite/decline [post]
func (h *Handler) DeclineInvite(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionOf(w, r)
	if !ok {
		return
	}

	var req RequestIDRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.respondBool(w, h.service.DeclineInvite(r.Context(), sessionID, req.RequestID))
}

// Leave handles POST /client/match/group/leave
// @Summary      Leave the group
// @Tags         group
// @Produce      json
// @Success      200 {object} response.Envelope{data=bool}
// @Router       /client/match/group/leave [post]
func (h *Handler) Leave(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionOf(w, r)
	if !ok {
		return
	}

	h.respondBool(w, h.service.LeaveGroup(r.Context(), sessionID))
}

// ExitFromMenu handles POST /client/match/group/exit_from_menu
// @Summary      Leave the group from the main menu
// @Description  Succeeds when the caller is in no group
// @Tags         group
// @Produce      json
// @Success      200 {object} response.Envelope
// @Router       /client/match/group/exit_from_menu [post]
func (h *Handler) ExitFromMenu(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionOf(w, r)
	if !ok {
		return
	}

	if err := h.service.ExitFromMenu(r.Context(), sessionID); err != nil {
		fail(w, err, nil)
		return
	}
	response.Null(w)
}

// Kick handles POST /client/match/group/player/remove
// @Summary      Kick a member
// @Tags         group
// @Accept       json
// @Produce      json
// @Param        request body PlayerRemoveRequest true "Account to remove"
// @Success      200 {object} response.Envelope{data=bool}
// @Router       /client/match/group/player/remove [post]
func (h *Handler) Kick(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionOf(w, r)
	if !ok {
		return
	}

	var req PlayerRemoveRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.respondBool(w, h.service.KickMember(r.Context(), sessionID, req.AidToKick))
}

// Transfer handles POST /client/match/group/transfer
// @Summary      Transfer leadership
// @Tags         group
// @Accept       json
// @Produce      json
// @Param        request body TransferRequest true "New owner"
// @Success      200 {object} response.Envelope{data=bool}
// @Router       /client/match/group/transfer [post]
func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionOf(w, r)
	if !ok {
		return
	}

	var req TransferRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.respondBool(w, h.service.TransferLeadership(r.Context(), sessionID, req.AidToChange))
}

// Disband handles POST /client/match/group/delete
// @Summary      Disband the group
// @Description  Owner only; members are told they left and pending invites are cancelled
// @Tags         group
// @Produce      json
// @Success      200 {object} response.Envelope{data=bool}
// @Router       /client/match/group/delete [post]
func (h *Handler) Disband(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionOf(w, r)
	if !ok {
		return
	}

	h.respondBool(w, h.service.DisbandGroup(r.Context(), sessionID))
}

// Status handles POST /client/match/group/status
// @Summary      Group status
// @Tags         group
// @Produce      json
// @Success      200 {object} response.Envelope{data=StatusResponse}
// @Router       /client/match/group/status [post]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionOf(w, r)
	if !ok {
		return
	}

	members, err := h.service.GroupStatus(r.Context(), sessionID)
	if err != nil {
		fail(w, err, &StatusResponse{Players: members})
		return
	}

	response.JSON(w, &StatusResponse{Players: members})
}

// Current handles POST /client/match/group/current
// @Summary      Current squad
// @Description  Empty when the caller is solo
// @Tags         group
// @Produce      json
// @Success      200 {object} response.Envelope{data=CurrentResponse}
// @Router       /client/match/group/current [post]
func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionOf(w, r)
	if !ok {
		return
	}

	members, err := h.service.CurrentGroup(r.Context(), sessionID)
	if err != nil {
		fail(w, err, &CurrentResponse{Squad: members})
		return
	}

	response.JSON(w, &CurrentResponse{Squad: members})
}

// Ready handles POST /client/match/raid/ready
// @Summary      Mark ready
// @Tags         group
// @Produce      json
// @Success      200 {object} response.Envelope{data=bool}
// @Router       /client/match/raid/ready [post]
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	h.setReady(w, r, true)
}

// NotReady handles POST /client/match/raid/not-ready
// @Summary      Mark not ready
// @Tags         group
// @Produce      json
// @Success      200 {object} response.Envelope{data=bool}
// @Router       /client/match/raid/not-ready [post]
func (h *Handler) NotReady(w http.ResponseWriter, r *http.Request) {
	h.setReady(w, r, false)
}

func (h *Handler) setReady(w http.ResponseWriter, r *http.Request, ready bool) {
	sessionID, ok := sessionOf(w, r)
	if !ok {
		return
	}

	h.respondBool(w, h.service.SetReady(r.Context(), sessionID, ready))
}

// NoOp acknowledges routes the client calls that carry no party state
// @Summary      Acknowledge a stateless call
// @Tags         group
// @Produce      json
// @Success      200 {object} response.Envelope
// @Router       /client/match/group/looking/start [post]
// @Router       /client/match/group/looking/stop [post]
// @Router       /client/match/exit [post]
func (h *Handler) NoOp(w http.ResponseWriter, r *http.Request) {
	response.Null(w)
}

// ListGroups handles GET /debug/groups
// @Summary      Active groups
// @Tags         debug
// @Produce      json
// @Success      200 {object} response.Envelope{data=[]Snapshot}
// @Router       /debug/groups [get]
func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, h.service.Groups())
}

func (h *Handler) respondBool(w http.ResponseWriter, err error) {
	if err != nil {
		fail(w, err, false)
		return
	}
	response.JSON(w, true)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.BadRequest(w, "Invalid request body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		response.BadRequest(w, err.Error())
		return false
	}
	return true
}

func sessionOf(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		response.Unauthorized(w, "Session id required")
	}
	return sessionID, ok
}

// fail translates a service error into an envelope carrying the sentinel result
func fail(w http.ResponseWriter, err error, sentinel any) {
	switch {
	case errors.Is(err, ErrInvalidAccountID):
		response.BadRequest(w, err.Error())
	case errors.Is(err, profile.ErrProfileNotFound):
		response.Unauthorized(w, "Unknown session")
	case errors.Is(err, ErrNotAuthorized):
		response.Failed(w, response.CodeForbidden, err.Error(), sentinel)
	case errors.Is(err, ErrAlreadyInGroup):
		response.Failed(w, response.CodeConflict, err.Error(), sentinel)
	case errors.Is(err, ErrGroupNotFound),
		errors.Is(err, ErrInviteNotFound),
		errors.Is(err, ErrMemberNotFound):
		response.Failed(w, response.CodeNotFound, err.Error(), sentinel)
	default:
		response.InternalError(w, "Party operation failed")
	}
}
