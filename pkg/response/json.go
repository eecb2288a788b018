package response

import (
	"encoding/json"
	"net/http"
)

// Error codes carried in the envelope's err field
const (
	CodeOK           = 0
	CodeBadRequest   = 400
	CodeUnauthorized = 401
	CodeForbidden    = 403
	CodeNotFound     = 404
	CodeConflict     = 409
	CodeInternal     = 500
)

// Envelope is the body shape the game client expects on every route
type Envelope struct {
	Err    int     `json:"err"`
	ErrMsg *string `json:"errmsg"`
	Data   any     `json:"data"`
}

// JSON sends a successful envelope. The HTTP status stays 200 because the
// client reads failures from the envelope, not the status line.
func JSON(w http.ResponseWriter, data any) {
	write(w, http.StatusOK, Envelope{Err: CodeOK, Data: data})
}

// Null sends a successful envelope with a null payload
func Null(w http.ResponseWriter) {
	JSON(w, nil)
}

// Error sends a failed envelope with the given code and message
func Error(w http.ResponseWriter, status, code int, message string) {
	write(w, status, Envelope{Err: code, ErrMsg: &message})
}

// Failed sends an expected failure. The client reads data as the operation's
// sentinel result (false or an empty list) and errmsg for the reason.
func Failed(w http.ResponseWriter, code int, message string, data any) {
	write(w, http.StatusOK, Envelope{Err: code, ErrMsg: &message, Data: data})
}

func write(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// Common error responses
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, CodeBadRequest, message)
}

func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, CodeNotFound, message)
}

func InternalError(w http.ResponseWriter, message string) {
	Error(w, http.StatusInternalServerError, CodeInternal, message)
}

func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, CodeUnauthorized, message)
}
