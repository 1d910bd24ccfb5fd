package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/auth"
	"github.com/rpupo63/portfolio-backend/config"
)

func TestSignInDegradedModeFailsBeforeDatabase(t *testing.T) {
	// No admin user repo is wired: an unconfigured guard must reject the
	// request before any credential or database work.
	guard := config.NewGuard(config.Config{})
	tokens := auth.NewTokenManager("test-secret", 15*time.Minute)
	h := newAuthHandler(nil, tokens, guard)

	body := strings.NewReader(`{"email":"admin@example.com","password":"pw"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/sign-in", body)
	rec := httptest.NewRecorder()
	h.signIn()(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var out ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Contains(t, out.Error, "backend not configured")
}

func TestSignOutAlwaysSucceeds(t *testing.T) {
	guard := config.NewGuard(config.Config{})
	h := newAuthHandler(nil, nil, guard)

	rec := httptest.NewRecorder()
	h.signOut()(rec, httptest.NewRequest(http.MethodPost, "/auth/sign-out", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var out statusMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "success", out.Status)
}

func TestSessionWithoutClaims(t *testing.T) {
	guard := config.NewGuard(config.Config{})
	h := newAuthHandler(nil, nil, guard)

	rec := httptest.NewRecorder()
	h.session()(rec, httptest.NewRequest(http.MethodGet, "/auth/session", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
