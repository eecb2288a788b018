package group

// InviteSendRequest is the body of the invite send route
type InviteSendRequest struct {
	To      string `json:"to" validate:"required,numeric"`
	InLobby bool   `json:"inLobby"`
}

// RequestIDRequest names an invite by id
type RequestIDRequest struct {
	RequestID string `json:"requestId" validate:"required"`
}

// PlayerRemoveRequest names the account to kick
type PlayerRemoveRequest struct {
	AidToKick string `json:"aidToKick" validate:"required,numeric"`
}

// TransferRequest names the new owner
type TransferRequest struct {
	AidToChange string `json:"aidToChange" validate:"required,numeric"`
}

// StatusResponse is returned by the group status route
type StatusResponse struct {
	Players             []MemberState `json:"players"`
	MaxPveCountExceeded bool          `json:"maxPveCountExceeded"`
}

// CurrentResponse is returned by the current group route
type CurrentResponse struct {
	Squad []MemberState `json:"squad"`
}
