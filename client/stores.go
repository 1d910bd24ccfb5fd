package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/rpupo63/portfolio-backend/models"
)

// ProjectStore owns the project collection.
type ProjectStore struct {
	collection[models.Project]
	c *Client
}

func newProjectStore(c *Client) *ProjectStore {
	s := &ProjectStore{c: c}
	s.fetchFn = func(ctx context.Context, f Filter) ([]models.Project, error) {
		var out struct {
			Projects []models.Project `json:"projects"`
		}
		if err := c.do(ctx, http.MethodGet, "/projects", f.query(), nil, &out); err != nil {
			return nil, err
		}
		return out.Projects, nil
	}
	return s
}

// Add uploads the optional image first, substitutes its URL into the
// project, inserts, then refetches the collection.
func (s *ProjectStore) Add(ctx context.Context, project models.Project, asset *Asset) error {
	return s.mutate(ctx, func() error {
		if asset != nil {
			url, err := s.c.UploadAsset(ctx, FolderProjects, asset)
			if err != nil {
				return err
			}
			project.ImageURL = url
		}
		return s.c.do(ctx, http.MethodPost, "/project", nil, project, nil)
	})
}

// Update sends only the supplied fields, after uploading the optional image.
func (s *ProjectStore) Update(ctx context.Context, id uuid.UUID, fields map[string]any, asset *Asset) error {
	return s.mutate(ctx, func() error {
		if asset != nil {
			url, err := s.c.UploadAsset(ctx, FolderProjects, asset)
			if err != nil {
				return err
			}
			fields["image_url"] = url
		}
		return s.c.do(ctx, http.MethodPut, "/project/"+id.String(), nil, fields, nil)
	})
}

// Delete removes a project and refetches the collection.
func (s *ProjectStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.mutate(ctx, func() error {
		return s.c.do(ctx, http.MethodDelete, "/project/"+id.String(), nil, nil, nil)
	})
}

// CertificationStore owns the certification collection.
type CertificationStore struct {
	collection[models.Certification]
	c *Client
}

func newCertificationStore(c *Client) *CertificationStore {
	s := &CertificationStore{c: c}
	s.fetchFn = func(ctx context.Context, f Filter) ([]models.Certification, error) {
		var out struct {
			Certifications []models.Certification `json:"certifications"`
		}
		if err := c.do(ctx, http.MethodGet, "/certifications", f.query(), nil, &out); err != nil {
			return nil, err
		}
		return out.Certifications, nil
	}
	return s
}

func (s *CertificationStore) Add(ctx context.Context, cert models.Certification, asset *Asset) error {
	return s.mutate(ctx, func() error {
		if asset != nil {
			url, err := s.c.UploadAsset(ctx, FolderCertifications, asset)
			if err != nil {
				return err
			}
			cert.BadgeURL = &url
		}
		return s.c.do(ctx, http.MethodPost, "/certification", nil, cert, nil)
	})
}

func (s *CertificationStore) Update(ctx context.Context, id uuid.UUID, fields map[string]any, asset *Asset) error {
	return s.mutate(ctx, func() error {
		if asset != nil {
			url, err := s.c.UploadAsset(ctx, FolderCertifications, asset)
			if err != nil {
				return err
			}
			fields["badge_url"] = url
		}
		return s.c.do(ctx, http.MethodPut, "/certification/"+id.String(), nil, fields, nil)
	})
}

func (s *CertificationStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.mutate(ctx, func() error {
		return s.c.do(ctx, http.MethodDelete, "/certification/"+id.String(), nil, nil, nil)
	})
}

// ServiceStore owns the service collection.
type ServiceStore struct {
	collection[models.Service]
	c *Client
}

func newServiceStore(c *Client) *ServiceStore {
	s := &ServiceStore{c: c}
	s.fetchFn = func(ctx context.Context, f Filter) ([]models.Service, error) {
		var out struct {
			Services []models.Service `json:"services"`
		}
		if err := c.do(ctx, http.MethodGet, "/services", f.query(), nil, &out); err != nil {
			return nil, err
		}
		return out.Services, nil
	}
	return s
}

func (s *ServiceStore) Add(ctx context.Context, service models.Service) error {
	return s.mutate(ctx, func() error {
		return s.c.do(ctx, http.MethodPost, "/service", nil, service, nil)
	})
}

func (s *ServiceStore) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return s.mutate(ctx, func() error {
		return s.c.do(ctx, http.MethodPut, "/service/"+id.String(), nil, fields, nil)
	})
}

func (s *ServiceStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.mutate(ctx, func() error {
		return s.c.do(ctx, http.MethodDelete, "/service/"+id.String(), nil, nil, nil)
	})
}
