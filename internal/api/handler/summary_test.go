package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/boxscore-data/internal/cache"
	"github.com/courtside/boxscore-data/internal/summary"
)

type stubSummarizer struct {
	payload *summary.Payload
	err     error
}

func (s stubSummarizer) PlayerSummary(ctx context.Context, playerID int) (*summary.Payload, error) {
	return s.payload, s.err
}

func newTestRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/players/{playerID}/summary", h.GetPlayerSummary)
	return r
}

func get(t *testing.T, router http.Handler, url string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetPlayerSummary(t *testing.T) {
	payload := &summary.Payload{
		Name: "X",
		Games: []map[string]any{{
			"date":      "2024-01-01",
			"isStarter": true,
			"minutes":   30,
			"points":    20,
			"shots": []map[string]any{
				{"isMake": true, "locationX": 5.0, "locationY": 3.0},
			},
		}},
	}
	h := &Handler{
		cache:     cache.New(false),
		summaries: stubSummarizer{payload: payload},
	}

	rec := get(t, newTestRouter(h), "/players/10/summary", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got summary.Payload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "X", got.Name)
	require.Len(t, got.Games, 1)
	assert.Equal(t, "2024-01-01", got.Games[0]["date"])
}

func TestGetPlayerSummaryUnknownPlayer(t *testing.T) {
	h := &Handler{
		cache: cache.New(false),
		summaries: stubSummarizer{
			err: fmt.Errorf("%w: id 99", summary.ErrPlayerNotFound),
		},
	}

	rec := get(t, newTestRouter(h), "/players/99/summary", nil)

	// Failures ride on a success-status response with an embedded flag.
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.NotEmpty(t, body["reason"])
}

func TestGetPlayerSummaryMalformedID(t *testing.T) {
	h := &Handler{
		cache:     cache.New(false),
		summaries: stubSummarizer{payload: &summary.Payload{}},
	}

	rec := get(t, newTestRouter(h), "/players/abc/summary", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.Contains(t, body["reason"], "abc")
}

func TestGetPlayerSummaryCaching(t *testing.T) {
	h := &Handler{
		cache:     cache.New(true),
		summaries: stubSummarizer{payload: &summary.Payload{Name: "X", Games: []map[string]any{}}},
	}
	router := newTestRouter(h)

	first := get(t, router, "/players/10/summary", nil)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)

	second := get(t, router, "/players/10/summary", nil)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())

	third := get(t, router, "/players/10/summary", map[string]string{"If-None-Match": etag})
	assert.Equal(t, http.StatusNotModified, third.Code)
	assert.Empty(t, third.Body.String())
}
