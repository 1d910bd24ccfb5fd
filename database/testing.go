package database

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testGorm *gorm.DB

// GetTestDB returns the shared test database connection, nil when TestMain
// found no TEST_DATABASE_URL.
func GetTestDB() *gorm.DB {
	return testGorm
}

// SkipWithoutDatabase skips integration tests in short mode or when no test
// database is configured.
func SkipWithoutDatabase(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if testGorm == nil {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}
}

// CleanupTestDB truncates all tables for a fresh test state.
func CleanupTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	err := db.Exec("TRUNCATE TABLE profiles, projects, certifications, blog_posts, services, messages, admin_users CASCADE").Error
	require.NoError(t, err)
}
