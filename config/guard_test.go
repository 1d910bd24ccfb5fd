package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testServiceKey = "0123456789abcdef0123456789abcdef" // 32 chars

func TestValidateBackend(t *testing.T) {
	tests := []struct {
		name       string
		baseURL    string
		serviceKey string
		problems   []string
	}{
		{
			name:       "configured",
			baseURL:    "https://abc.supabase.co",
			serviceKey: testServiceKey,
			problems:   nil,
		},
		{
			name:       "missing url",
			baseURL:    "",
			serviceKey: testServiceKey,
			problems:   []string{"PUBLIC_BASE_URL is not set"},
		},
		{
			name:       "http url",
			baseURL:    "http://abc.supabase.co",
			serviceKey: testServiceKey,
			problems:   []string{"PUBLIC_BASE_URL must start with https://"},
		},
		{
			name:       "missing key",
			baseURL:    "https://abc.supabase.co",
			serviceKey: "",
			problems:   []string{"SERVICE_API_KEY is not set"},
		},
		{
			name:       "short key",
			baseURL:    "https://abc.supabase.co",
			serviceKey: "too-short",
			problems:   []string{"SERVICE_API_KEY must be at least 32 characters"},
		},
		{
			name:       "everything wrong",
			baseURL:    "ftp://abc",
			serviceKey: "x",
			problems: []string{
				"PUBLIC_BASE_URL must start with https://",
				"SERVICE_API_KEY must be at least 32 characters",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.problems, ValidateBackend(tt.baseURL, tt.serviceKey))
		})
	}
}

func TestNewGuardConfigured(t *testing.T) {
	g := NewGuard(Config{
		"PUBLIC_BASE_URL": "https://abc.supabase.co",
		"SERVICE_API_KEY": testServiceKey,
	})
	assert.True(t, g.Configured())
	assert.Empty(t, g.Problems())
}

func TestNewGuardEmptyEnvironment(t *testing.T) {
	g := NewGuard(Config{})
	require.False(t, g.Configured())
	assert.Len(t, g.Problems(), 2)
	for _, p := range g.Problems() {
		assert.True(t, strings.Contains(p, "PUBLIC_BASE_URL") || strings.Contains(p, "SERVICE_API_KEY"))
	}
}

func TestGetDuration(t *testing.T) {
	c := Config{"IDLE": "20m", "BROKEN": "soon"}
	assert.Equal(t, 20*time.Minute, c.GetDuration("IDLE", 0))
	assert.Equal(t, 5*time.Second, c.GetDuration("BROKEN", 5*time.Second))
	assert.Equal(t, 5*time.Second, c.GetDuration("MISSING", 5*time.Second))
}
