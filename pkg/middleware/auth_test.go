package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func echoSession(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := GetSessionID(r.Context())
	w.Write([]byte(sessionID))
}

func TestSessionMiddleware_Cookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "pid-1"})
	rec := httptest.NewRecorder()

	SessionMiddleware(http.HandlerFunc(echoSession)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pid-1", rec.Body.String())
}

func TestSessionMiddleware_HeaderFallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(SessionHeader, " pid-2 ")
	rec := httptest.NewRecorder()

	SessionMiddleware(http.HandlerFunc(echoSession)).ServeHTTP(rec, req)

	assert.Equal(t, "pid-2", rec.Body.String())
}

func TestSessionMiddleware_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()

	SessionMiddleware(http.HandlerFunc(echoSession)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"err":401`)
}
