package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// draftAwareBackend keeps posted blog posts in memory, serving only
// published ones on the public list and everything on the admin list.
func draftAwareBackend(t *testing.T) http.Handler {
	var posts []map[string]any

	mux := http.NewServeMux()
	mux.HandleFunc("GET /blog-posts", func(w http.ResponseWriter, r *http.Request) {
		published := []map[string]any{}
		for _, p := range posts {
			if p["published"] == true {
				published = append(published, p)
			}
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"blog_posts": published})
	})
	mux.HandleFunc("GET /admin/blog-posts", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"blog_posts": posts})
	})
	mux.HandleFunc("POST /blog-post", func(w http.ResponseWriter, r *http.Request) {
		var post map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&post))
		posts = append(posts, post)
		writeJSON(t, w, http.StatusCreated, map[string]string{"message": "created"})
	})
	mux.HandleFunc("DELETE /blog-post/{id}", func(w http.ResponseWriter, r *http.Request) {
		posts = posts[:len(posts)-1]
		writeJSON(t, w, http.StatusOK, map[string]string{"message": "deleted"})
	})
	return mux
}

func TestAddDraftVisibleAfterImplicitRefetch(t *testing.T) {
	c, _ := newTestClient(t, draftAwareBackend(t))

	require.NoError(t, c.BlogPosts().Add(context.Background(), blogPostFixture("unpublished"), nil))

	items := c.BlogPosts().Items()
	require.Len(t, items, 1, "a freshly created draft must appear in the store")
	assert.Equal(t, "unpublished", items[0].Slug)
	assert.False(t, items[0].Published)
}

func TestMutationKeepsDraftsLoadedByFetchAll(t *testing.T) {
	c, _ := newTestClient(t, draftAwareBackend(t))
	ctx := context.Background()

	require.NoError(t, c.BlogPosts().Add(ctx, blogPostFixture("draft-one"), nil))
	require.NoError(t, c.BlogPosts().Add(ctx, blogPostFixture("draft-two"), nil))

	require.NoError(t, c.BlogPosts().FetchAll(ctx))
	require.Len(t, c.BlogPosts().Items(), 2)

	require.NoError(t, c.BlogPosts().Delete(ctx, testUUID(t)))

	items := c.BlogPosts().Items()
	require.Len(t, items, 1, "the refetch after a mutation must not hide remaining drafts")
	assert.Equal(t, "draft-one", items[0].Slug)
}

func TestPublicFetchStillPublishedOnly(t *testing.T) {
	c, _ := newTestClient(t, draftAwareBackend(t))
	ctx := context.Background()

	require.NoError(t, c.BlogPosts().Add(ctx, blogPostFixture("draft"), nil))

	require.NoError(t, c.BlogPosts().Fetch(ctx, Filter{}))
	assert.Empty(t, c.BlogPosts().Items(), "the public list hides drafts")
}
