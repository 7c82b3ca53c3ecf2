package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nomadsim/internal/config"
	"nomadsim/internal/leaderboard"
	"nomadsim/internal/session"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	sess := session.New(session.Options{
		Balance: config.Default(),
		Board:   leaderboard.NewMemoryRepo(),
	})
	app := &App{Session: sess, Log: log, BootNow: time.Now()}
	return NewRouter(app, nil)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	h := newTestServer(t)
	rec := doJSON(t, h, http.MethodGet, "/healthz", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestGetState(t *testing.T) {
	h := newTestServer(t)
	rec := doJSON(t, h, http.MethodGet, "/api/state", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var v session.View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	assert.Equal(t, 1, v.Player.Day)
	assert.Len(t, v.Offers, 4)
}

func TestWork_BadBodyIs400(t *testing.T) {
	h := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/actions/work", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWork_UnknownJobIsALoggedNoOp(t *testing.T) {
	h := newTestServer(t)
	rec := doJSON(t, h, http.MethodPost, "/api/actions/work", map[string]string{"job_id": "nope"})

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Rejected string `json:"rejected"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Rejected)
}

func TestRestHome_WhenPerfectlyFineReportsRejection(t *testing.T) {
	h := newTestServer(t)
	rec := doJSON(t, h, http.MethodPost, "/api/actions/rest-home", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Rejected string       `json:"rejected"`
		State    session.View `json:"state"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "You are perfectly fine.", body.Rejected)
	assert.Equal(t, 1, body.State.Player.Day)
}

func TestSaveScore_MidRunIsConflict(t *testing.T) {
	h := newTestServer(t)
	rec := doJSON(t, h, http.MethodPost, "/api/leaderboard", map[string]string{"name": "ana"})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetLeaderboard(t *testing.T) {
	h := newTestServer(t)
	rec := doJSON(t, h, http.MethodGet, "/api/leaderboard", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[leaderboard.Category][]leaderboard.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, 3)
}

func TestReset(t *testing.T) {
	h := newTestServer(t)
	rec := doJSON(t, h, http.MethodPost, "/api/reset", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		State session.View `json:"state"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1000, body.State.Player.Money)
}

func TestHoroscope(t *testing.T) {
	h := newTestServer(t)
	rec := doJSON(t, h, http.MethodGet, "/api/horoscope", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["horoscope"])
}
