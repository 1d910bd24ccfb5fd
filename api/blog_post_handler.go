package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

type blogPostHandler struct {
	responder    Responder
	logger       zerolog.Logger
	blogPostRepo *database.BlogPostRepo
}

func newBlogPostHandler(blogPostRepo *database.BlogPostRepo) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		blogPostRepo: blogPostRepo,
	}
}

// BlogPostCollection represents multiple blog posts
type BlogPostCollection struct {
	BlogPosts []*models.BlogPost `json:"blog_posts"`
	Total     int                `json:"total"`
}

func postFilterFromQuery(r *http.Request, publishedOnly bool) database.PostFilter {
	filter := database.PostFilter{PublishedOnly: publishedOnly}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	return filter
}

// getPublishedBlogPosts retrieves published posts newest first
func (h blogPostHandler) getPublishedBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.blogPostRepo.FindAll(postFilterFromQuery(r, true))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog posts", err))
			return
		}

		h.responder.WriteJSON(w, BlogPostCollection{BlogPosts: posts, Total: len(posts)})
	}
}

// getAllBlogPosts retrieves every post including drafts, for the dashboard
func (h blogPostHandler) getAllBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.blogPostRepo.FindAll(postFilterFromQuery(r, false))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog posts", err))
			return
		}

		h.responder.WriteJSON(w, BlogPostCollection{BlogPosts: posts, Total: len(posts)})
	}
}

// getBlogPost retrieves a specific blog post by ID
func (h blogPostHandler) getBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := uuid.Parse(chi.URLParam(r, "blogPostID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogPostID"))
			return
		}

		post, err := h.blogPostRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// getBlogPostBySlug retrieves a published blog post by its slug
func (h blogPostHandler) getBlogPostBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		post, err := h.blogPostRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog post", err))
			return
		}
		if post == nil || !post.Published {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// createBlogPost creates a new blog post. Posts are created as drafts unless
// the payload asks to publish, in which case both publish fields are derived
// together.
func (h blogPostHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var post models.BlogPost
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if post.Title == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("title is required"))
			return
		}
		if post.Slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("slug is required"))
			return
		}

		post.Published, post.PublishedAt = models.PublishState(post.Published, time.Now())

		if err := h.blogPostRepo.Add(&post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "blog post", err))
			return
		}

		created, err := h.blogPostRepo.FindByID(post.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "blog post", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// blogPostPayload carries a partial update; only non-nil fields are written.
// The publish flag is deliberately absent: publish state changes only go
// through togglePublish so the flag and timestamp stay coupled.
type blogPostPayload struct {
	Title       *string   `json:"title"`
	Slug        *string   `json:"slug"`
	Excerpt     *string   `json:"excerpt"`
	Content     *string   `json:"content"`
	CoverURL    *string   `json:"cover_url"`
	Tags        *[]string `json:"tags"`
	ReadMinutes *int      `json:"read_minutes"`
}

func (p blogPostPayload) fields(now time.Time) map[string]any {
	fields := map[string]any{"updated_at": now.UTC()}
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	if p.Slug != nil {
		fields["slug"] = *p.Slug
	}
	if p.Excerpt != nil {
		fields["excerpt"] = *p.Excerpt
	}
	if p.Content != nil {
		fields["content"] = *p.Content
	}
	if p.CoverURL != nil {
		fields["cover_url"] = *p.CoverURL
	}
	if p.Tags != nil {
		fields["tags"] = datatypes.JSONSlice[string](*p.Tags)
	}
	if p.ReadMinutes != nil {
		fields["read_minutes"] = *p.ReadMinutes
	}
	return fields
}

// updateBlogPost applies a partial update to an existing blog post
func (h blogPostHandler) updateBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := uuid.Parse(chi.URLParam(r, "blogPostID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogPostID"))
			return
		}

		existing, err := h.blogPostRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog post", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		var payload blogPostPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.blogPostRepo.Update(postID, payload.fields(time.Now())); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "blog post", err))
			return
		}

		updated, err := h.blogPostRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "blog post", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// togglePublish flips the publish state, deriving the publish timestamp in
// the same write
func (h blogPostHandler) togglePublish() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := uuid.Parse(chi.URLParam(r, "blogPostID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogPostID"))
			return
		}

		existing, err := h.blogPostRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog post", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		var payload struct {
			Published bool `json:"published"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.blogPostRepo.TogglePublish(postID, payload.Published, time.Now()); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("publish", "blog post", err))
			return
		}

		updated, err := h.blogPostRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "blog post", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteBlogPost deletes a blog post by ID
func (h blogPostHandler) deleteBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := uuid.Parse(chi.URLParam(r, "blogPostID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogPostID"))
			return
		}

		existing, err := h.blogPostRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog post", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		if err := h.blogPostRepo.Delete(postID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "blog post", err))
			return
		}

		h.responder.WriteJSON(w, successMessage("blog post deleted successfully"))
	}
}
