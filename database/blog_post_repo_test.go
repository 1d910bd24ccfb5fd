package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/models"
)

func seedPost(t *testing.T, repo *BlogPostRepo, slug string, published bool, publishedAt *time.Time) *models.BlogPost {
	t.Helper()
	p := &models.BlogPost{
		Title:       "Post " + slug,
		Slug:        slug,
		Excerpt:     "excerpt",
		Content:     "content",
		Published:   published,
		PublishedAt: publishedAt,
	}
	require.NoError(t, repo.Add(p))
	return p
}

func hoursAgo(h int) *time.Time {
	at := time.Now().UTC().Add(-time.Duration(h) * time.Hour)
	return &at
}

func TestBlogPostPublishedFilter(t *testing.T) {
	SkipWithoutDatabase(t)
	db := GetTestDB()
	CleanupTestDB(t, db)
	repo := NewBlogPostRepo(db)

	seedPost(t, repo, "live", true, hoursAgo(1))
	seedPost(t, repo, "draft", false, nil)

	public, err := repo.FindAll(PostFilter{PublishedOnly: true})
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "live", public[0].Slug)

	all, err := repo.FindAll(PostFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestBlogPostOrderingNewestFirstDraftsLast(t *testing.T) {
	SkipWithoutDatabase(t)
	db := GetTestDB()
	CleanupTestDB(t, db)
	repo := NewBlogPostRepo(db)

	seedPost(t, repo, "older", true, hoursAgo(48))
	seedPost(t, repo, "newer", true, hoursAgo(1))
	seedPost(t, repo, "draft", false, nil)

	all, err := repo.FindAll(PostFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "newer", all[0].Slug)
	assert.Equal(t, "older", all[1].Slug)
	assert.Equal(t, "draft", all[2].Slug)
}

func TestBlogPostSlugUnique(t *testing.T) {
	SkipWithoutDatabase(t)
	db := GetTestDB()
	CleanupTestDB(t, db)
	repo := NewBlogPostRepo(db)

	seedPost(t, repo, "taken", false, nil)

	dup := &models.BlogPost{Title: "Dup", Slug: "taken", Excerpt: "e", Content: "c"}
	err := repo.Add(dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate key")
}

func TestBlogPostFindBySlug(t *testing.T) {
	SkipWithoutDatabase(t)
	db := GetTestDB()
	CleanupTestDB(t, db)
	repo := NewBlogPostRepo(db)

	seeded := seedPost(t, repo, "findable", true, hoursAgo(1))

	found, err := repo.FindBySlug("findable")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, seeded.ID, found.ID)

	missing, err := repo.FindBySlug("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTogglePublishCouplesFlagAndTimestamp(t *testing.T) {
	SkipWithoutDatabase(t)
	db := GetTestDB()
	CleanupTestDB(t, db)
	repo := NewBlogPostRepo(db)

	post := seedPost(t, repo, "cycle", false, nil)
	now := time.Now().UTC().Truncate(time.Microsecond)

	require.NoError(t, repo.TogglePublish(post.ID, true, now))
	published, err := repo.FindByID(post.ID)
	require.NoError(t, err)
	require.NotNil(t, published)
	assert.True(t, published.Published)
	require.NotNil(t, published.PublishedAt)
	assert.WithinDuration(t, now, *published.PublishedAt, time.Millisecond)

	require.NoError(t, repo.TogglePublish(post.ID, false, now.Add(time.Minute)))
	unpublished, err := repo.FindByID(post.ID)
	require.NoError(t, err)
	require.NotNil(t, unpublished)
	assert.False(t, unpublished.Published)
	assert.Nil(t, unpublished.PublishedAt, "unpublishing must clear the timestamp")
}
