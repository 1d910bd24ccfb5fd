package api

import (
	"encoding/json"
	"net/http"
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

type serviceHandler struct {
	responder   Responder
	logger      zerolog.Logger
	serviceRepo *database.ServiceRepo
}

func newServiceHandler(serviceRepo *database.ServiceRepo) serviceHandler {
	logger := log.With().Str("handlerName", "serviceHandler").Logger()

	return serviceHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		serviceRepo: serviceRepo,
	}
}

// ServiceCollection represents multiple services
type ServiceCollection struct {
	Services []*models.Service `json:"services"`
	Total    int               `json:"total"`
}

// getAllServices retrieves services ordered by sort_order, optionally
// filtered to the featured subset
func (h serviceHandler) getAllServices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services, err := h.serviceRepo.FindAll(listFilterFromQuery(r))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "services", err))
			return
		}

		h.responder.WriteJSON(w, ServiceCollection{Services: services, Total: len(services)})
	}
}

// createService creates a new service. Unknown icon names fall back to the
// registry default rather than being stored verbatim.
func (h serviceHandler) createService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var service models.Service
		if err := json.NewDecoder(r.Body).Decode(&service); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode service request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if service.Title == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("title is required"))
			return
		}
		service.Icon = models.IconOrFallback(service.Icon)

		if err := h.serviceRepo.Add(&service); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "service", err))
			return
		}

		created, err := h.serviceRepo.FindByID(service.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "service", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// servicePayload carries a partial update; only non-nil fields are written.
type servicePayload struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Icon        *string   `json:"icon"`
	Features    *[]string `json:"features"`
	Featured    *bool     `json:"featured"`
	SortOrder   *int      `json:"sort_order"`
}

func (p servicePayload) fields(now time.Time) map[string]any {
	fields := map[string]any{"updated_at": now.UTC()}
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.Icon != nil {
		fields["icon"] = models.IconOrFallback(*p.Icon)
	}
	if p.Features != nil {
		fields["features"] = datatypes.JSONSlice[string](*p.Features)
	}
	if p.Featured != nil {
		fields["featured"] = *p.Featured
	}
	if p.SortOrder != nil {
		fields["sort_order"] = *p.SortOrder
	}
	return fields
}

// updateService applies a partial update to an existing service
func (h serviceHandler) updateService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serviceID, err := uuid.Parse(chi.URLParam(r, "serviceID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid serviceID"))
			return
		}

		existing, err := h.serviceRepo.FindByID(serviceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "service", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("service not found"))
			return
		}

		var payload servicePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode service request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.serviceRepo.Update(serviceID, payload.fields(time.Now())); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "service", err))
			return
		}

		updated, err := h.serviceRepo.FindByID(serviceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "service", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteService deletes a service by ID
func (h serviceHandler) deleteService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serviceID, err := uuid.Parse(chi.URLParam(r, "serviceID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid serviceID"))
			return
		}

		existing, err := h.serviceRepo.FindByID(serviceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "service", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("service not found"))
			return
		}

		if err := h.serviceRepo.Delete(serviceID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "service", err))
			return
		}

		h.responder.WriteJSON(w, successMessage("service deleted successfully"))
	}
}
