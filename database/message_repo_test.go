package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/models"
)

func seedMessage(t *testing.T, repo *MessageRepo, subject string) *models.Message {
	t.Helper()
	m := &models.Message{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: subject,
		Body:    "hello",
	}
	require.NoError(t, repo.Add(m))
	return m
}

func TestMessageInboxNewestFirst(t *testing.T) {
	SkipWithoutDatabase(t)
	db := GetTestDB()
	CleanupTestDB(t, db)
	repo := NewMessageRepo(db)

	seedMessage(t, repo, "first")
	seedMessage(t, repo, "second")

	inbox, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, inbox, 2)
	assert.Equal(t, "second", inbox[0].Subject)
	assert.Equal(t, "first", inbox[1].Subject)
}

func TestMessageMarkReadAndBack(t *testing.T) {
	SkipWithoutDatabase(t)
	db := GetTestDB()
	CleanupTestDB(t, db)
	repo := NewMessageRepo(db)

	m := seedMessage(t, repo, "unread by default")
	assert.False(t, m.IsRead)

	require.NoError(t, repo.MarkRead(m.ID, true))
	read, err := repo.FindByID(m.ID)
	require.NoError(t, err)
	require.NotNil(t, read)
	assert.True(t, read.IsRead)

	require.NoError(t, repo.MarkRead(m.ID, false))
	unread, err := repo.FindByID(m.ID)
	require.NoError(t, err)
	require.NotNil(t, unread)
	assert.False(t, unread.IsRead)
}

func TestMessageDelete(t *testing.T) {
	SkipWithoutDatabase(t)
	db := GetTestDB()
	CleanupTestDB(t, db)
	repo := NewMessageRepo(db)

	m := seedMessage(t, repo, "doomed")
	require.NoError(t, repo.Delete(m.ID))

	gone, err := repo.FindByID(m.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestAdminUserUniqueEmail(t *testing.T) {
	SkipWithoutDatabase(t)
	db := GetTestDB()
	CleanupTestDB(t, db)
	repo := NewAdminUserRepo(db)

	require.NoError(t, repo.Add(&models.AdminUser{Email: "admin@example.com", PasswordHash: "hash"}))
	err := repo.Add(&models.AdminUser{Email: "admin@example.com", PasswordHash: "other"})
	require.Error(t, err)

	found, err := repo.FindByEmail("admin@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "hash", found.PasswordHash)

	missing, err := repo.FindByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
