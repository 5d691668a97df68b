package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwassist/bwassist/internal/profile"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	prof := &profile.Profile{
		Mode: "dev",
		Port: 28090,
	}
	prof.FromEnv()
	prof.LLMAPIKey = "" // AI disabled: no upstream calls from tests

	s, err := NewServer(context.Background(), prof)
	require.NoError(t, err)
	return s
}

func TestServer_Healthz(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	s.echoServer.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Service ready.", rec.Body.String())
}

func TestServer_Metrics(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	s.echoServer.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestServer_InstanceEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/instance", nil)
	s.echoServer.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"aiEnabled":false`)
}

func TestServer_GenerationRejectedWithoutAPIKey(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/testcases", strings.NewReader(`{"code":"<xml/>"}`))
	req.Header.Set("Content-Type", "application/json")
	s.echoServer.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
