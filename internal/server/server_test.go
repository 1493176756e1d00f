package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiater/prodsight/internal/dashboard"
	"github.com/mwiater/prodsight/internal/fixtures"
	"github.com/mwiater/prodsight/internal/theme"
)

func newTestServer() *Server {
	return New(Options{
		Addr:    "127.0.0.1:0",
		Seed:    fixtures.DefaultSeed,
		Theme:   theme.Default(),
		Version: "test",
	})
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	w := get(t, newTestServer(), "/api/health")
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "ok", response["status"])
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequestIDIsPropagated(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/health", nil)
	req.Header.Set(RequestIDHeader, "fixed-id")
	w := httptest.NewRecorder()
	newTestServer().Router().ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get(RequestIDHeader))
}

func TestInfoEndpoint(t *testing.T) {
	w := get(t, newTestServer(), "/api/info")
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "test", response["version"])
	assert.EqualValues(t, 42, response["seed"])
}

func TestTablesEndpoints(t *testing.T) {
	s := newTestServer()

	w := get(t, s, "/api/tables")
	require.Equal(t, http.StatusOK, w.Code)
	var ds fixtures.Dataset
	require.NoError(t, json.NewDecoder(w.Body).Decode(&ds))
	assert.Len(t, ds.Trajectories, fixtures.TotalProducts)
	assert.Len(t, ds.Clusters, fixtures.TotalProducts)

	w = get(t, s, "/api/tables/alert_distribution")
	require.Equal(t, http.StatusOK, w.Code)
	var alerts []fixtures.AlertDistribution
	require.NoError(t, json.NewDecoder(w.Body).Decode(&alerts))
	assert.Len(t, alerts, 3)

	w = get(t, s, "/api/tables/unknown")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestViewsEndpoints(t *testing.T) {
	s := newTestServer()

	w := get(t, s, "/api/views")
	require.Equal(t, http.StatusOK, w.Code)
	var views []dashboard.View
	require.NoError(t, json.NewDecoder(w.Body).Decode(&views))
	assert.Len(t, views, 4)

	w = get(t, s, "/api/views/category-risk")
	require.Equal(t, http.StatusOK, w.Code)
	var view dashboard.View
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	assert.Equal(t, "Category Risk", view.Title)

	w = get(t, s, "/api/views/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChartEndpoints(t *testing.T) {
	s := newTestServer()

	w := get(t, s, "/api/charts/trajectories.svg")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "<svg")

	w = get(t, s, "/api/charts/alert-distribution.png")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	w = get(t, s, "/api/charts/nope.svg")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboardPage(t *testing.T) {
	w := get(t, newTestServer(), "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))
	assert.Contains(t, w.Body.String(), "Product Success Prediction Dashboard")
}

func TestRunStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	s := New(Options{Addr: addr, Seed: 1, Theme: theme.Default(), Version: "test"})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/api/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not stop")
	}
}
