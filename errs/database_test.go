package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabaseErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		cause  error
		status int
	}{
		{
			name:   "duplicate key",
			cause:  errors.New(`ERROR: duplicate key value violates unique constraint "idx_blog_posts_slug" (SQLSTATE 23505)`),
			status: http.StatusConflict,
		},
		{
			name:   "foreign key",
			cause:  errors.New(`ERROR: insert or update on table violates foreign key constraint (SQLSTATE 23503)`),
			status: http.StatusBadRequest,
		},
		{
			name:   "record not found",
			cause:  errors.New("record not found"),
			status: http.StatusNotFound,
		},
		{
			name:   "connection refused",
			cause:  errors.New("dial tcp 127.0.0.1:5432: connection refused"),
			status: http.StatusServiceUnavailable,
		},
		{
			name:   "anything else",
			cause:  errors.New("syntax error at or near"),
			status: http.StatusInternalServerError,
		},
		{
			name:   "nil cause",
			cause:  nil,
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := NewDatabaseError("create", "blog post", tt.cause)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Contains(t, apiErr.GetFullError(), "failed to create blog post")
		})
	}
}

func TestConstraintMessageSurfacedVerbatim(t *testing.T) {
	driverMsg := `ERROR: duplicate key value violates unique constraint "idx_blog_posts_slug" (SQLSTATE 23505)`
	apiErr := NewDatabaseError("create", "blog post", errors.New(driverMsg))

	require.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), driverMsg)
}

func TestNotConfiguredError(t *testing.T) {
	err := NewNotConfiguredError("object storage is not configured")
	assert.Equal(t, http.StatusServiceUnavailable, err.StatusCode)
	assert.True(t, IsNotConfigured(err))
	assert.Contains(t, err.Error(), "object storage is not configured")
}

func TestUnwrapSentinels(t *testing.T) {
	assert.ErrorIs(t, NewNotFound("project"), ErrNotFound)
	assert.ErrorIs(t, NewAlreadyExists("admin user"), ErrAlreadyExists)
}
