package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

type profileHandler struct {
	responder   Responder
	logger      zerolog.Logger
	profileRepo *database.ProfileRepo
}

func newProfileHandler(profileRepo *database.ProfileRepo) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		profileRepo: profileRepo,
	}
}

// getProfile retrieves the singleton profile. Before the first write there
// is nothing to return and the endpoint reports not found.
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.profileRepo.Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "profile", err))
			return
		}
		if profile == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("profile not found"))
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}

// upsertProfile writes the profile under its fixed identifier. The same
// operation serves the first write and every later edit.
func (h profileHandler) upsertProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var profile models.Profile
		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode profile request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if profile.Name == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("name is required"))
			return
		}

		profile.UpdatedAt = time.Now().UTC()

		if err := h.profileRepo.Upsert(&profile); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("save", "profile", err))
			return
		}

		saved, err := h.profileRepo.Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find saved", "profile", err))
			return
		}

		h.responder.WriteJSON(w, saved)
	}
}
