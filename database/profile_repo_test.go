package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/rpupo63/portfolio-backend/models"
)

func TestProfileGetBeforeFirstWrite(t *testing.T) {
	SkipWithoutDatabase(t)
	db := GetTestDB()
	CleanupTestDB(t, db)
	repo := NewProfileRepo(db)

	profile, err := repo.Get()
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestProfileUpsertCreatesThenUpdates(t *testing.T) {
	SkipWithoutDatabase(t)
	db := GetTestDB()
	CleanupTestDB(t, db)
	repo := NewProfileRepo(db)

	first := &models.Profile{
		Name:  "Ada Lovelace",
		Title: "Engineer",
		Bio:   "first bio",
		Email: "ada@example.com",
		SocialLinks: datatypes.JSONSlice[models.SocialLink]{
			{Label: "GitHub", URL: "https://github.com/ada"},
		},
	}
	require.NoError(t, repo.Upsert(first))
	assert.Equal(t, models.ProfileID, first.ID)

	second := &models.Profile{
		Name:  "Ada Lovelace",
		Title: "Principal Engineer",
		Bio:   "second bio",
		Email: "ada@example.com",
	}
	require.NoError(t, repo.Upsert(second))

	// Still exactly one row, carrying the second write.
	var count int64
	require.NoError(t, db.Model(&models.Profile{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	stored, err := repo.Get()
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.ProfileID, stored.ID)
	assert.Equal(t, "Principal Engineer", stored.Title)
	assert.Equal(t, "second bio", stored.Bio)
}

func TestProfileSocialLinksNeverNull(t *testing.T) {
	SkipWithoutDatabase(t)
	db := GetTestDB()
	CleanupTestDB(t, db)
	repo := NewProfileRepo(db)

	require.NoError(t, repo.Upsert(&models.Profile{
		Name: "Ada", Title: "Engineer", Bio: "bio", Email: "ada@example.com",
	}))

	stored, err := repo.Get()
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotNil(t, stored.SocialLinks)
}
