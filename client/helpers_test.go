package client

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/models"
)

func testUUID(t *testing.T) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse("6f1e1a2b-3c4d-5e6f-7a8b-9c0d1e2f3a4b")
	require.NoError(t, err)
	return id
}

func projectFixture() models.Project {
	return models.Project{
		Title:       "Portfolio Site",
		Description: "personal site",
		Category:    models.CategoryFullstack,
	}
}

func blogPostFixture(slug string) models.BlogPost {
	return models.BlogPost{
		Title:   "Notes on " + slug,
		Slug:    slug,
		Excerpt: "short excerpt",
		Content: "full content",
	}
}
