package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/storage"
)

func TestUploadAssetOversizeRejectedBeforeTransport(t *testing.T) {
	c, transport := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))

	asset := &Asset{Filename: "huge.jpg", Data: make([]byte, storage.MaxUploadSize+1)}
	_, err := c.UploadAsset(context.Background(), FolderBlog, asset)
	require.Error(t, err)

	apiErr, ok := err.(*apiError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Contains(t, apiErr.Message, "5 MB")
	assert.Equal(t, int64(0), transport.count(), "oversize upload must not build a request")
}

func TestUploadAssetSuccess(t *testing.T) {
	var gotFolder, gotFilename string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		gotFolder = r.URL.Path

		require.NoError(t, r.ParseMultipartForm(storage.MaxUploadSize+1))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		gotFilename = header.Filename

		writeJSON(t, w, http.StatusOK, map[string]string{
			"url": "https://abc.supabase.co/assets/projects/1700000000000000000.png",
		})
	}))

	url, err := c.UploadAsset(context.Background(), FolderProjects, &Asset{
		Filename: "screenshot.png",
		Data:     []byte("imagedata"),
	})
	require.NoError(t, err)

	assert.Equal(t, "https://abc.supabase.co/assets/projects/1700000000000000000.png", url)
	assert.Equal(t, "/uploads/projects", gotFolder)
	assert.Equal(t, "screenshot.png", gotFilename)
}

func TestUploadAssetBackendRejection(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]string{"error": `unknown upload folder "tmp"`})
	}))

	_, err := c.UploadAsset(context.Background(), storage.Folder("tmp"), &Asset{
		Filename: "a.png", Data: []byte("x"),
	})
	require.Error(t, err)
	assert.Equal(t, `unknown upload folder "tmp"`, err.Error())
}

func TestAddWithAssetUploadsFirst(t *testing.T) {
	var order []string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/uploads/projects":
			order = append(order, "upload")
			writeJSON(t, w, http.StatusOK, map[string]string{"url": "https://abc.supabase.co/assets/projects/1.png"})
		case r.Method == http.MethodPost && r.URL.Path == "/project":
			order = append(order, "insert")
			writeJSON(t, w, http.StatusOK, map[string]string{"message": "created"})
		default:
			order = append(order, "refetch")
			writeJSON(t, w, http.StatusOK, map[string]any{"projects": []map[string]any{}})
		}
	}))

	err := c.Projects().Add(context.Background(), projectFixture(), &Asset{
		Filename: "cover.png", Data: []byte("img"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"upload", "insert", "refetch"}, order)
}

func TestAddAbortsWhenUploadFails(t *testing.T) {
	var inserts int
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/uploads/projects" {
			writeJSON(t, w, http.StatusServiceUnavailable, map[string]string{"error": "object storage is not configured"})
			return
		}
		inserts++
		writeJSON(t, w, http.StatusOK, map[string]string{"message": "created"})
	}))

	err := c.Projects().Add(context.Background(), projectFixture(), &Asset{
		Filename: "cover.png", Data: []byte("img"),
	})
	require.Error(t, err)
	assert.Equal(t, 0, inserts, "a failed upload must abort the entity write")
	assert.Equal(t, "object storage is not configured", c.Projects().Err())
}
