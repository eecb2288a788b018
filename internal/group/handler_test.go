package group

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/partymatch/pkg/middleware"
)

type envelope struct {
	Err    int             `json:"err"`
	ErrMsg *string         `json:"errmsg"`
	Data   json.RawMessage `json:"data"`
}

func call(t *testing.T, h http.Handler, session, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	if session != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: session})
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func newTestRouter(t *testing.T) (http.Handler, *fixture) {
	f := newFixture(t, nil)
	return middleware.SessionMiddleware(NewHandler(f.svc).Routes()), f
}

func TestHandler_InviteAcceptFlow(t *testing.T) {
	h, f := newTestRouter(t)

	code, env := call(t, h, "pid-a", "/group/invite/send", `{"to":"20","inLobby":true}`)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 0, env.Err)

	var inviteID string
	require.NoError(t, json.Unmarshal(env.Data, &inviteID))
	require.NotEmpty(t, inviteID)

	code, env = call(t, h, "pid-b", "/group/invite/accept", `{"requestId":"`+inviteID+`"}`)
	require.Equal(t, http.StatusOK, code)

	var members []MemberState
	require.NoError(t, json.Unmarshal(env.Data, &members))
	require.Len(t, members, 2)
	assert.True(t, members[0].IsLeader)

	code, env = call(t, h, "pid-b", "/group/status", ``)
	require.Equal(t, http.StatusOK, code)
	var status StatusResponse
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.Len(t, status.Players, 2)
	assert.False(t, status.MaxPveCountExceeded)

	code, env = call(t, h, "pid-b", "/raid/ready", ``)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "true", string(env.Data))
	assert.Len(t, f.notifier.ofType(EventRaidReady), 2)
}

func TestHandler_FailuresCarrySentinels(t *testing.T) {
	h, _ := newTestRouter(t)

	code, env := call(t, h, "pid-b", "/group/invite/accept", `{"requestId":"nope"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 404, env.Err)
	assert.Equal(t, "[]", string(env.Data))
	require.NotNil(t, env.ErrMsg)
	assert.Equal(t, ErrInviteNotFound.Error(), *env.ErrMsg)

	code, env = call(t, h, "pid-a", "/group/leave", ``)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 404, env.Err)
	assert.Equal(t, "false", string(env.Data))

	code, env = call(t, h, "pid-a", "/group/current", ``)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0, env.Err)
	assert.JSONEq(t, `{"squad":[]}`, string(env.Data))
}

func TestHandler_Validation(t *testing.T) {
	h, _ := newTestRouter(t)

	code, env := call(t, h, "pid-a", "/group/invite/send", `{"to":"twenty"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, 400, env.Err)

	code, _ = call(t, h, "pid-a", "/group/invite/send", `not json`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = call(t, h, "pid-a", "/group/player/remove", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = call(t, h, "", "/group/leave", ``)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = call(t, h, "unknown-session", "/group/leave", ``)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestHandler_CancelAllRequiresOwner(t *testing.T) {
	h, _ := newTestRouter(t)

	_, env := call(t, h, "pid-a", "/group/invite/send", `{"to":"20"}`)
	var inviteID string
	require.NoError(t, json.Unmarshal(env.Data, &inviteID))
	call(t, h, "pid-b", "/group/invite/accept", `{"requestId":"`+inviteID+`"}`)

	_, env = call(t, h, "pid-b", "/group/invite/cancel-all", ``)
	assert.Equal(t, 403, env.Err)
	assert.Equal(t, "false", string(env.Data))

	_, env = call(t, h, "pid-a", "/group/invite/cancel-all", ``)
	assert.Equal(t, 0, env.Err)
	assert.Equal(t, "true", string(env.Data))
}

func TestHandler_NoOpRoutes(t *testing.T) {
	h, _ := newTestRouter(t)

	for _, path := range []string{"/group/looking/start", "/group/looking/stop", "/exit", "/group/exit_from_menu"} {
		code, env := call(t, h, "pid-a", path, ``)
		assert.Equal(t, http.StatusOK, code, path)
		assert.Equal(t, 0, env.Err, path)
		assert.Equal(t, "null", string(env.Data), path)
	}
}

func TestHandler_ListGroups(t *testing.T) {
	f := newFixture(t, nil)
	h := NewHandler(f.svc)

	_, err := f.svc.SendInvite(context.Background(), "pid-a", "20", false)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ListGroups(rec, httptest.NewRequest(http.MethodGet, "/debug/groups", nil))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var groups []Snapshot
	require.NoError(t, json.Unmarshal(env.Data, &groups))
	require.Len(t, groups, 1)
	assert.Equal(t, int64(10), groups[0].Owner)
}
