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

type certificationHandler struct {
	responder         Responder
	logger            zerolog.Logger
	certificationRepo *database.CertificationRepo
}

func newCertificationHandler(certificationRepo *database.CertificationRepo) certificationHandler {
	logger := log.With().Str("handlerName", "certificationHandler").Logger()

	return certificationHandler{
		responder:         NewResponder(logger),
		logger:            logger,
		certificationRepo: certificationRepo,
	}
}

// CertificationCollection represents multiple certifications
type CertificationCollection struct {
	Certifications []*models.Certification `json:"certifications"`
	Total          int                     `json:"total"`
}

// getAllCertifications retrieves certifications ordered by sort_order,
// optionally filtered to the featured subset
func (h certificationHandler) getAllCertifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certs, err := h.certificationRepo.FindAll(listFilterFromQuery(r))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certifications", err))
			return
		}

		h.responder.WriteJSON(w, CertificationCollection{
			Certifications: certs,
			Total:          len(certs),
		})
	}
}

// getCertification retrieves a specific certification by ID
func (h certificationHandler) getCertification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certID, err := uuid.Parse(chi.URLParam(r, "certificationID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid certificationID"))
			return
		}

		cert, err := h.certificationRepo.FindByID(certID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certification", err))
			return
		}
		if cert == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("certification not found"))
			return
		}

		h.responder.WriteJSON(w, cert)
	}
}

// createCertification creates a new certification
func (h certificationHandler) createCertification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cert models.Certification
		if err := json.NewDecoder(r.Body).Decode(&cert); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode certification request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if cert.Name == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("name is required"))
			return
		}
		if cert.Issuer == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("issuer is required"))
			return
		}

		if err := h.certificationRepo.Add(&cert); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "certification", err))
			return
		}

		created, err := h.certificationRepo.FindByID(cert.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "certification", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// certificationPayload carries a partial update; only non-nil fields are written.
type certificationPayload struct {
	Name          *string   `json:"name"`
	Issuer        *string   `json:"issuer"`
	Date          *string   `json:"date"`
	ExpiryDate    *string   `json:"expiry_date"`
	CredentialID  *string   `json:"credential_id"`
	CredentialURL *string   `json:"credential_url"`
	BadgeURL      *string   `json:"badge_url"`
	SkillTags     *[]string `json:"skill_tags"`
	Description   *string   `json:"description"`
	Featured      *bool     `json:"featured"`
	SortOrder     *int      `json:"sort_order"`
}

func (p certificationPayload) fields(now time.Time) map[string]any {
	fields := map[string]any{"updated_at": now.UTC()}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Issuer != nil {
		fields["issuer"] = *p.Issuer
	}
	if p.Date != nil {
		fields["date"] = *p.Date
	}
	if p.ExpiryDate != nil {
		fields["expiry_date"] = *p.ExpiryDate
	}
	if p.CredentialID != nil {
		fields["credential_id"] = *p.CredentialID
	}
	if p.CredentialURL != nil {
		fields["credential_url"] = *p.CredentialURL
	}
	if p.BadgeURL != nil {
		fields["badge_url"] = *p.BadgeURL
	}
	if p.SkillTags != nil {
		fields["skill_tags"] = datatypes.JSONSlice[string](*p.SkillTags)
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.Featured != nil {
		fields["featured"] = *p.Featured
	}
	if p.SortOrder != nil {
		fields["sort_order"] = *p.SortOrder
	}
	return fields
}

// updateCertification applies a partial update to an existing certification
func (h certificationHandler) updateCertification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certID, err := uuid.Parse(chi.URLParam(r, "certificationID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid certificationID"))
			return
		}

		existing, err := h.certificationRepo.FindByID(certID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certification", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("certification not found"))
			return
		}

		var payload certificationPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode certification request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.certificationRepo.Update(certID, payload.fields(time.Now())); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "certification", err))
			return
		}

		updated, err := h.certificationRepo.FindByID(certID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "certification", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteCertification deletes a certification by ID
func (h certificationHandler) deleteCertification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certID, err := uuid.Parse(chi.URLParam(r, "certificationID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid certificationID"))
			return
		}

		existing, err := h.certificationRepo.FindByID(certID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certification", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("certification not found"))
			return
		}

		if err := h.certificationRepo.Delete(certID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "certification", err))
			return
		}

		h.responder.WriteJSON(w, successMessage("certification deleted successfully"))
	}
}
