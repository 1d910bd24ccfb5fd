package database

import (
	"fmt"
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		// Integration tests skip individually via SkipWithoutDatabase.
		os.Exit(m.Run())
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to test database: %v\n", err)
		os.Exit(1)
	}

	if err := Migrate(db); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to migrate test database: %v\n", err)
		os.Exit(1)
	}

	testGorm = db
	os.Exit(m.Run())
}
