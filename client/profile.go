package client

import (
	"context"
	"net/http"
	"sync"

	"github.com/rpupo63/portfolio-backend/models"
)

// ProfileStore owns the singleton profile record.
type ProfileStore struct {
	c *Client

	mu      sync.Mutex
	profile *models.Profile
	loading int
	err     string
}

func newProfileStore(c *Client) *ProfileStore {
	return &ProfileStore{c: c}
}

// Profile returns the loaded profile, nil before the first successful load
// or when no profile has been written yet.
func (s *ProfileStore) Profile() *models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

func (s *ProfileStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading > 0
}

func (s *ProfileStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Load fetches the profile. A backend "not found" before the first write is
// not an error: the profile settles to nil.
func (s *ProfileStore) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading++
	s.mu.Unlock()

	var profile models.Profile
	err := s.c.do(ctx, http.MethodGet, "/profile", nil, nil, &profile)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading--

	if err != nil {
		if apiErr, ok := err.(*apiError); ok && apiErr.Status == http.StatusNotFound {
			s.profile = nil
			s.err = ""
			return nil
		}
		s.err = errorMessage(err)
		return err
	}

	s.profile = &profile
	s.err = ""
	return nil
}

// Save upserts the profile, uploading the optional avatar first, then
// reloads it.
func (s *ProfileStore) Save(ctx context.Context, profile models.Profile, asset *Asset) error {
	if asset != nil {
		url, err := s.c.UploadAsset(ctx, FolderProfile, asset)
		if err != nil {
			s.mu.Lock()
			s.err = errorMessage(err)
			s.mu.Unlock()
			return err
		}
		profile.AvatarURL = url
	}

	if err := s.c.do(ctx, http.MethodPut, "/profile", nil, profile, nil); err != nil {
		s.mu.Lock()
		s.err = errorMessage(err)
		s.mu.Unlock()
		return err
	}

	return s.Load(ctx)
}
