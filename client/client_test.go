package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "0123456789abcdef0123456789abcdef"

// countingTransport counts round trips so tests can prove an operation
// never reached the network.
type countingTransport struct {
	calls int64
	next  http.RoundTripper
}

func (t *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	atomic.AddInt64(&t.calls, 1)
	return t.next.RoundTrip(req)
}

func (t *countingTransport) count() int64 {
	return atomic.LoadInt64(&t.calls)
}

// newTestClient builds a client pointed at a TLS test server. The server's
// https URL satisfies the configuration check, so the client is configured.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *countingTransport) {
	t.Helper()
	srv := httptest.NewTLSServer(handler)
	t.Cleanup(srv.Close)

	transport := &countingTransport{next: srv.Client().Transport}
	httpc := &http.Client{Transport: transport}
	return New(srv.URL, testAPIKey, WithHTTPClient(httpc)), transport
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestUnconfiguredClientNeverTouchesTransport(t *testing.T) {
	transport := &countingTransport{next: http.DefaultTransport}
	c := New("http://insecure.example.com", "short", WithHTTPClient(&http.Client{Transport: transport}))
	require.False(t, c.Configured())

	ctx := context.Background()

	err := c.Projects().Fetch(ctx, Filter{})
	require.Error(t, err)
	assert.Equal(t, errMsgNotConfigured, c.Projects().Err())

	_, err = c.UploadAsset(ctx, FolderProfile, &Asset{Filename: "a.png", Data: []byte("x")})
	require.Error(t, err)

	res := c.Session().SignIn(ctx, "admin@example.com", "pw")
	assert.Equal(t, errMsgNotConfigured, res.Err)

	c.Session().Restore(ctx, "some-token")
	assert.Nil(t, c.Session().Current())
	assert.False(t, c.Session().Loading())

	assert.Equal(t, int64(0), transport.count(), "unconfigured client must perform no network I/O")
}

func TestFetchReplacesItemsWholesale(t *testing.T) {
	pages := [][]map[string]any{
		{{"title": "One"}, {"title": "Two"}, {"title": "Three"}},
		{{"title": "Only"}},
	}
	var fetches int
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/projects", r.URL.Path)
		page := pages[fetches]
		fetches++
		writeJSON(t, w, http.StatusOK, map[string]any{"projects": page})
	}))

	ctx := context.Background()
	require.NoError(t, c.Projects().Fetch(ctx, Filter{}))
	assert.Len(t, c.Projects().Items(), 3)

	require.NoError(t, c.Projects().Fetch(ctx, Filter{}))
	items := c.Projects().Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Only", items[0].Title)
}

func TestFetchFailureKeepsPreviousItems(t *testing.T) {
	var fail bool
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			writeJSON(t, w, http.StatusInternalServerError, map[string]string{"error": "database query failed"})
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"services": []map[string]any{{"title": "Consulting"}}})
	}))

	ctx := context.Background()
	require.NoError(t, c.Services().Fetch(ctx, Filter{}))
	require.Len(t, c.Services().Items(), 1)

	fail = true
	err := c.Services().Fetch(ctx, Filter{})
	require.Error(t, err)

	assert.Len(t, c.Services().Items(), 1, "failed fetch must not clear existing items")
	assert.Equal(t, "database query failed", c.Services().Err())
	assert.False(t, c.Services().Loading())
}

func TestBackendErrorSurfacedVerbatim(t *testing.T) {
	driverMsg := `ERROR: duplicate key value violates unique constraint "idx_blog_posts_slug" (SQLSTATE 23505)`
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/blog-post":
			writeJSON(t, w, http.StatusConflict, map[string]string{"error": driverMsg})
		default:
			writeJSON(t, w, http.StatusOK, map[string]any{"blog_posts": []map[string]any{}})
		}
	}))

	err := c.BlogPosts().Add(context.Background(), blogPostFixture("dup-slug"), nil)
	require.Error(t, err)
	assert.Equal(t, driverMsg, c.BlogPosts().Err(), "constraint message must pass through unaltered")
}

func TestConnectivityFailureGenericMessage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"projects": []map[string]any{}})
	}))

	// Cancelled context makes the transport fail before any response.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Projects().Fetch(ctx, Filter{})
	require.Error(t, err)
	assert.Equal(t, errMsgConnectivity, c.Projects().Err())
}

func TestFilterQueryParameters(t *testing.T) {
	var gotQuery string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeJSON(t, w, http.StatusOK, map[string]any{"projects": []map[string]any{}})
	}))

	require.NoError(t, c.Projects().Fetch(context.Background(), Filter{FeaturedOnly: true, Limit: 3}))
	assert.Equal(t, "featured=true&limit=3", gotQuery)
}

func TestMutateRefetchesCollection(t *testing.T) {
	var deletes, lists int
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			deletes++
			writeJSON(t, w, http.StatusOK, map[string]string{"message": "deleted"})
		default:
			lists++
			writeJSON(t, w, http.StatusOK, map[string]any{"services": []map[string]any{}})
		}
	}))

	require.NoError(t, c.Services().Delete(context.Background(), testUUID(t)))
	assert.Equal(t, 1, deletes)
	assert.Equal(t, 1, lists, "a successful mutation refetches exactly once")
}

func TestTogglePublishSingleRequest(t *testing.T) {
	var publishCalls int
	var publishBody map[string]bool
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			publishCalls++
			require.NoError(t, json.NewDecoder(r.Body).Decode(&publishBody))
			writeJSON(t, w, http.StatusOK, map[string]any{"published": true})
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"blog_posts": []map[string]any{}})
	}))

	require.NoError(t, c.BlogPosts().TogglePublish(context.Background(), testUUID(t), true))
	assert.Equal(t, 1, publishCalls, "publish state changes in one request, never two")
	assert.Equal(t, map[string]bool{"published": true}, publishBody)
}

func TestProfileNotFoundIsNotAnError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]string{"error": "profile not found"})
	}))

	require.NoError(t, c.Profile().Load(context.Background()))
	assert.Nil(t, c.Profile().Profile())
	assert.Empty(t, c.Profile().Err())
}
