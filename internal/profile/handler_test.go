package profile

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/partymatch/pkg/middleware"
)

func newTestHandler() http.Handler {
	svc := NewService(NewMemoryStore(newIdentity("pid-a", 10, "Alpha")), time.Minute)
	return middleware.SessionMiddleware(NewHandler(svc).Routes())
}

func TestHandler_GetByAccountID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/10", nil)
	req.Header.Set(middleware.SessionHeader, "pid-a")
	rec := httptest.NewRecorder()

	newTestHandler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Err  int             `json:"err"`
		Data SummaryResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 0, body.Err)
	assert.Equal(t, "Alpha", body.Data.Nickname)
	assert.Equal(t, int64(10), body.Data.AccountID)
	assert.NotContains(t, rec.Body.String(), "pid-a")
	assert.NotContains(t, rec.Body.String(), `"_id"`)
}

func TestHandler_GetByAccountID_Unknown(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/77", nil)
	req.Header.Set(middleware.SessionHeader, "pid-a")
	rec := httptest.NewRecorder()

	newTestHandler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Status(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/status", nil)
	req.Header.Set(middleware.SessionHeader, "pid-a")
	rec := httptest.NewRecorder()

	newTestHandler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data StatusResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data.Profiles, 2)
	assert.Equal(t, "scavpid-a", body.Data.Profiles[0].ProfileID)
	assert.Equal(t, "pmcpid-a", body.Data.Profiles[1].ProfileID)
	for _, entry := range body.Data.Profiles {
		assert.Equal(t, "Free", entry.Status)
	}
}
