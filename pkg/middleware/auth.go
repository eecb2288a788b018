package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/fkhayef/partymatch/pkg/response"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// SessionIDKey is the context key for the caller's session id
	SessionIDKey ContextKey = "session_id"

	// SessionCookie is the cookie the game client authenticates with
	SessionCookie = "PHPSESSID"

	// SessionHeader is accepted for tooling that cannot set cookies
	SessionHeader = "X-Session-ID"
)

// SessionMiddleware requires a session id on every request and stores it in the context.
// Session validity is checked later by the identity lookup, not here.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := sessionFromRequest(r)
		if sessionID == "" {
			response.Unauthorized(w, "Session id required")
			return
		}

		ctx := WithSessionID(r.Context(), sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFromRequest(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil {
		if v := strings.TrimSpace(c.Value); v != "" {
			return v
		}
	}
	return strings.TrimSpace(r.Header.Get(SessionHeader))
}

// WithSessionID returns a copy of ctx carrying the session id
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDKey, sessionID)
}

// GetSessionID extracts the session id from the request context
func GetSessionID(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDKey).(string)
	return sessionID, ok && sessionID != ""
}
