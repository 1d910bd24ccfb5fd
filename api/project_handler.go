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

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// ProjectCollection represents multiple projects
type ProjectCollection struct {
	Projects []*models.Project `json:"projects"`
	Total    int               `json:"total"`
}

// listFilterFromQuery reads the shared featured/limit query parameters.
func listFilterFromQuery(r *http.Request) database.ListFilter {
	var filter database.ListFilter
	if r.URL.Query().Get("featured") == "true" {
		filter.FeaturedOnly = true
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	return filter
}

// getAllProjects retrieves projects ordered by sort_order, optionally
// filtered to the featured subset
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll(listFilterFromQuery(r))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, ProjectCollection{
			Projects: projects,
			Total:    len(projects),
		})
	}
}

// getProject retrieves a specific project by ID
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a new project
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var project models.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if project.Title == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("title is required"))
			return
		}
		if project.Category == "" {
			project.Category = models.CategoryOther
		}
		if !models.ValidCategory(project.Category) {
			h.responder.WriteError(w, errs.NewBadRequestError("unknown project category"))
			return
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		created, err := h.projectRepo.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// projectPayload carries a partial update; only non-nil fields are written.
type projectPayload struct {
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	LongDescription *string   `json:"long_description"`
	ImageURL        *string   `json:"image_url"`
	TechTags        *[]string `json:"tech_tags"`
	Category        *string   `json:"category"`
	DemoURL         *string   `json:"demo_url"`
	SourceURL       *string   `json:"source_url"`
	Featured        *bool     `json:"featured"`
	Date            *string   `json:"date"`
	SortOrder       *int      `json:"sort_order"`
}

func (p projectPayload) fields(now time.Time) (map[string]any, error) {
	fields := map[string]any{"updated_at": now.UTC()}
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.LongDescription != nil {
		fields["long_description"] = *p.LongDescription
	}
	if p.ImageURL != nil {
		fields["image_url"] = *p.ImageURL
	}
	if p.TechTags != nil {
		fields["tech_tags"] = datatypes.JSONSlice[string](*p.TechTags)
	}
	if p.Category != nil {
		if !models.ValidCategory(models.Category(*p.Category)) {
			return nil, errs.NewBadRequestError("unknown project category")
		}
		fields["category"] = *p.Category
	}
	if p.DemoURL != nil {
		fields["demo_url"] = *p.DemoURL
	}
	if p.SourceURL != nil {
		fields["source_url"] = *p.SourceURL
	}
	if p.Featured != nil {
		fields["featured"] = *p.Featured
	}
	if p.Date != nil {
		fields["date"] = *p.Date
	}
	if p.SortOrder != nil {
		fields["sort_order"] = *p.SortOrder
	}
	return fields, nil
}

// updateProject applies a partial update to an existing project.
// Concurrent edits follow last-write-wins; there is no revision check.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		var payload projectPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		fields, err := payload.fields(time.Now())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectRepo.Update(projectID, fields); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		updated, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "project", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteProject deletes a project by ID
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, successMessage("project deleted successfully"))
	}
}
