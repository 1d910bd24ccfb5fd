package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/rpupo63/portfolio-backend/models"
)

// BlogPostStore owns the blog post collection. The public fetch sees only
// published posts; the dashboard fetch includes drafts.
type BlogPostStore struct {
	collection[models.BlogPost]
	c *Client
}

func newBlogPostStore(c *Client) *BlogPostStore {
	s := &BlogPostStore{c: c}
	s.fetchFn = func(ctx context.Context, f Filter) ([]models.BlogPost, error) {
		return s.list(ctx, "/blog-posts", f)
	}
	return s
}

func (s *BlogPostStore) list(ctx context.Context, path string, f Filter) ([]models.BlogPost, error) {
	var out struct {
		BlogPosts []models.BlogPost `json:"blog_posts"`
	}
	if err := s.c.do(ctx, http.MethodGet, path, f.query(), nil, &out); err != nil {
		return nil, err
	}
	return out.BlogPosts, nil
}

// FetchAll loads every post including drafts. Requires a signed-in session.
func (s *BlogPostStore) FetchAll(ctx context.Context) error {
	s.mu.Lock()
	s.loading++
	s.mu.Unlock()

	items, err := s.list(ctx, "/admin/blog-posts", Filter{})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading--

	if err != nil {
		s.err = errorMessage(err)
		return err
	}
	if items == nil {
		items = []models.BlogPost{}
	}
	s.items = items
	s.err = ""
	return nil
}

// mutate shadows the shared refetch-after-write: blog mutations happen from
// the dashboard, so the implicit refetch loads the drafts-included list. A
// refetch against the published-only list would drop a freshly created
// draft, and after FetchAll it would silently hide every draft.
func (s *BlogPostStore) mutate(ctx context.Context, op func() error) error {
	if err := op(); err != nil {
		return s.fail(err)
	}
	return s.FetchAll(ctx)
}

// GetBySlug loads a single published post without touching collection state.
func (s *BlogPostStore) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := s.c.do(ctx, http.MethodGet, "/blog-posts/slug/"+slug, nil, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *BlogPostStore) Add(ctx context.Context, post models.BlogPost, asset *Asset) error {
	return s.mutate(ctx, func() error {
		if asset != nil {
			url, err := s.c.UploadAsset(ctx, FolderBlog, asset)
			if err != nil {
				return err
			}
			post.CoverURL = &url
		}
		return s.c.do(ctx, http.MethodPost, "/blog-post", nil, post, nil)
	})
}

func (s *BlogPostStore) Update(ctx context.Context, id uuid.UUID, fields map[string]any, asset *Asset) error {
	return s.mutate(ctx, func() error {
		if asset != nil {
			url, err := s.c.UploadAsset(ctx, FolderBlog, asset)
			if err != nil {
				return err
			}
			fields["cover_url"] = url
		}
		return s.c.do(ctx, http.MethodPut, "/blog-post/"+id.String(), nil, fields, nil)
	})
}

// TogglePublish flips the publish state in a single request; the backend
// derives the publish timestamp together with the flag so the two are never
// written separately.
func (s *BlogPostStore) TogglePublish(ctx context.Context, id uuid.UUID, published bool) error {
	return s.mutate(ctx, func() error {
		body := map[string]bool{"published": published}
		return s.c.do(ctx, http.MethodPost, "/blog-post/"+id.String()+"/publish", nil, body, nil)
	})
}

func (s *BlogPostStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.mutate(ctx, func() error {
		return s.c.do(ctx, http.MethodDelete, "/blog-post/"+id.String(), nil, nil, nil)
	})
}
