package notification

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/partymatch/internal/group"
	"github.com/fkhayef/partymatch/internal/profile"
)

type staticSessions map[string]*profile.Identity

func (s staticSessions) BySession(_ context.Context, sessionID string) (*profile.Identity, error) {
	if id, ok := s[sessionID]; ok {
		return id, nil
	}
	return nil, profile.ErrProfileNotFound
}

func newNotifierServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()

	sessions := staticSessions{"pid-a": {ProfileID: "pid-a", AccountID: 10}}
	r := chi.NewRouter()
	r.Mount("/notifierServer", NewHandler(hub, sessions).Routes())

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestHandler_ConnectRegistersProfile(t *testing.T) {
	hub := NewHub(discardLogger(), 8, time.Minute)
	srv := newNotifierServer(t, hub)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/notifierServer/getwebsocket/pid-a"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		return hub.Connected("pid-a") == 1
	}, time.Second, 10*time.Millisecond)

	hub.Send("pid-a", &group.UserLeaveEvent{AccountID: 20, Nickname: "Bravo"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, frame, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(frame), `"type":"groupMatchUserLeave"`)
}

func TestHandler_ConnectUnknownSession(t *testing.T) {
	hub := NewHub(discardLogger(), 8, time.Minute)
	srv := newNotifierServer(t, hub)

	resp, err := http.Get(srv.URL + "/notifierServer/getwebsocket/stranger")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 0, hub.Connected("stranger"))
}
