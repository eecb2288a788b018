package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestDocListsEveryRoute(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	routes := map[string]string{
		"/client/match/exit":                       "post",
		"/client/match/group/current":              "post",
		"/client/match/group/delete":               "post",
		"/client/match/group/exit_from_menu":       "post",
		"/client/match/group/invite/accept":        "post",
		"/client/match/group/invite/cancel":        "post",
		"/client/match/group/invite/cancel-all":    "post",
		"/client/match/group/invite/decline":       "post",
		"/client/match/group/invite/send":          "post",
		"/client/match/group/leave":                "post",
		"/client/match/group/looking/start":        "post",
		"/client/match/group/looking/stop":         "post",
		"/client/match/group/player/remove":        "post",
		"/client/match/group/status":               "post",
		"/client/match/group/transfer":             "post",
		"/client/match/raid/not-ready":             "post",
		"/client/match/raid/ready":                 "post",
		"/client/profile/status":                   "post",
		"/client/profile/{aid}":                    "get",
		"/debug/groups":                            "get",
		"/notifierServer/getwebsocket/{sessionID}": "get",
	}
	assert.Len(t, doc.Paths, len(routes))
	for path, method := range routes {
		assert.Contains(t, doc.Paths[path], method, path)
	}
}
