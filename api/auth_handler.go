package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/auth"
	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
)

type authHandler struct {
	responder     Responder
	logger        zerolog.Logger
	adminUserRepo *database.AdminUserRepo
	tokens        *auth.TokenManager
	guard         *config.Guard
}

func newAuthHandler(adminUserRepo *database.AdminUserRepo, tokens *auth.TokenManager, guard *config.Guard) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		adminUserRepo: adminUserRepo,
		tokens:        tokens,
		guard:         guard,
	}
}

// SessionResponse is the body of a successful sign-in or session check.
type SessionResponse struct {
	Email     string    `json:"email"`
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// signIn verifies email/password credentials and issues a session token.
// In degraded mode it fails before touching credentials or the database.
func (h authHandler) signIn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.guard.Configured() {
			h.guard.WarnIfUnconfigured()
			h.responder.WriteError(w, errs.NewNotConfiguredError("authentication is unavailable"))
			return
		}

		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		creds.Email = strings.ToLower(strings.TrimSpace(creds.Email))
		if creds.Email == "" || creds.Password == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("email and password are required"))
			return
		}

		user, err := h.adminUserRepo.FindByEmail(creds.Email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "admin user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid email or password"))
			return
		}

		ok, err := auth.CheckPassword(creds.Password, user.PasswordHash)
		if err != nil {
			h.logger.Error().Err(err).Msg("password verification failed")
			h.responder.WriteError(w, errs.NewInternalError("could not verify credentials"))
			return
		}
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid email or password"))
			return
		}

		token, expiresAt, err := h.tokens.Issue(user.Email)
		if err != nil {
			h.logger.Error().Err(err).Msg("issuing session token failed")
			h.responder.WriteError(w, errs.NewInternalError("could not start session"))
			return
		}

		h.responder.WriteJSON(w, SessionResponse{
			Email:     user.Email,
			Token:     token,
			ExpiresAt: expiresAt,
		})
	}
}

// signOut acknowledges a sign-out. Sessions are stateless tokens, so there
// is nothing to revoke server-side; the endpoint always succeeds so the
// client can never be stuck looking signed in.
func (h authHandler) signOut() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, successMessage("signed out"))
	}
}

// session reports the claims behind the presented token. The auth middleware
// has already verified it and queued a refreshed token in the response header.
func (h authHandler) session() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := ctxGetClaims(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("no active session"))
			return
		}

		h.responder.WriteJSON(w, SessionResponse{
			Email:     claims.Email,
			ExpiresAt: claims.ExpiresAt.Time,
		})
	}
}
