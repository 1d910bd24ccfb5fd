package client

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/rpupo63/portfolio-backend/storage"
)

// Folder aliases re-export the backend's closed upload namespaces.
const (
	FolderProfile        = storage.FolderProfile
	FolderProjects       = storage.FolderProjects
	FolderCertifications = storage.FolderCertifications
	FolderBlog           = storage.FolderBlog
)

// Asset is one file queued for upload alongside an entity write.
type Asset struct {
	Filename string
	Data     []byte
}

// UploadAsset stores a file in the given folder and returns its public URL.
// Oversized files are rejected before any request is built; there is no
// retry, the caller re-invokes the owning add/update to try again.
func (c *Client) UploadAsset(ctx context.Context, folder storage.Folder, asset *Asset) (string, error) {
	if !c.Configured() {
		return "", c.notConfiguredErr()
	}
	if int64(len(asset.Data)) > storage.MaxUploadSize {
		return "", &apiError{
			Status: http.StatusBadRequest,
			Message: fmt.Sprintf("file is %d bytes, the upload limit is %d MB",
				len(asset.Data), storage.MaxUploadSize/(1024*1024)),
		}
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", asset.Filename)
	if err != nil {
		return "", fmt.Errorf("building multipart body: %w", err)
	}
	if _, err := part.Write(asset.Data); err != nil {
		return "", fmt.Errorf("building multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("building multipart body: %w", err)
	}

	endpoint := fmt.Sprintf("%s/uploads/%s", c.baseURL, folder)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.setAuthHeaders(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", &connectivityError{cause: err}
	}
	defer resp.Body.Close()

	c.session.adoptRefreshed(resp.Header.Get(sessionTokenHeader))

	if resp.StatusCode >= 400 {
		return "", decodeAPIError(resp)
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := decodeJSON(resp, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}
