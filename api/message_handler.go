package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

type messageHandler struct {
	responder   Responder
	logger      zerolog.Logger
	messageRepo *database.MessageRepo
}

func newMessageHandler(messageRepo *database.MessageRepo) messageHandler {
	logger := log.With().Str("handlerName", "messageHandler").Logger()

	return messageHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		messageRepo: messageRepo,
	}
}

// MessageCollection represents multiple contact messages
type MessageCollection struct {
	Messages []*models.Message `json:"messages"`
	Total    int               `json:"total"`
}

// submitMessage stores one contact-form submission. No email is dispatched;
// the row simply lands unread in the admin inbox.
func (h messageHandler) submitMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var message models.Message
		if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if message.Name == "" || message.Body == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("name and body are required"))
			return
		}
		if !strings.Contains(message.Email, "@") {
			h.responder.WriteError(w, errs.NewBadRequestError("a valid email is required"))
			return
		}

		// Write-once from the public form, always unread.
		message.ID = uuid.Nil
		message.IsRead = false

		if err := h.messageRepo.Add(&message); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "message", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, successMessage("message received"))
	}
}

// getAllMessages retrieves contact messages newest first
func (h messageHandler) getAllMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.messageRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "messages", err))
			return
		}

		h.responder.WriteJSON(w, MessageCollection{Messages: messages, Total: len(messages)})
	}
}

// markMessageRead flips the read flag on a message
func (h messageHandler) markMessageRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := uuid.Parse(chi.URLParam(r, "messageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid messageID"))
			return
		}

		existing, err := h.messageRepo.FindByID(messageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "message", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("message not found"))
			return
		}

		var payload struct {
			Read bool `json:"read"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.messageRepo.MarkRead(messageID, payload.Read); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "message", err))
			return
		}

		updated, err := h.messageRepo.FindByID(messageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "message", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteMessage deletes a message by ID
func (h messageHandler) deleteMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := uuid.Parse(chi.URLParam(r, "messageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid messageID"))
			return
		}

		existing, err := h.messageRepo.FindByID(messageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "message", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("message not found"))
			return
		}

		if err := h.messageRepo.Delete(messageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "message", err))
			return
		}

		h.responder.WriteJSON(w, successMessage("message deleted successfully"))
	}
}
