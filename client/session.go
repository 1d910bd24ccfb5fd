package client

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Session is the signed-in state handed to subscribers. A nil session means
// anonymous.
type Session struct {
	Email     string
	Token     string
	ExpiresAt time.Time
}

// SignInResult carries a sign-in outcome; Err is empty on success. The raw
// backend message is passed through, mapping to user-facing copy is the
// caller's concern.
type SignInResult struct {
	Err string
}

// SessionStore tracks the current signed-in session. Changes from any path
// (sign-in, sign-out, token refresh adoption) are delivered synchronously to
// subscribers, so no subscriber can observe a stale signed-in state after a
// sign-out has been applied.
type SessionStore struct {
	c *Client

	mu      sync.Mutex
	session *Session
	// candidate holds a persisted token while Restore validates it. It
	// backs the Authorization header but is never visible to subscribers:
	// the store moves straight from unknown to anonymous or authenticated.
	candidate string
	loading   bool
	subs      map[int]func(*Session)
	nextSub   int
}

func newSessionStore(c *Client) *SessionStore {
	return &SessionStore{
		c:       c,
		loading: c.Configured(),
		subs:    make(map[int]func(*Session)),
	}
}

// Current returns the session, nil when anonymous.
func (s *SessionStore) Current() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	copied := *s.session
	return &copied
}

// IsAdmin reports whether a session is active.
func (s *SessionStore) IsAdmin() bool {
	return s.Current() != nil
}

// Loading is true until the first session resolution (Restore or SignIn)
// settles. An unconfigured client settles immediately.
func (s *SessionStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Subscribe registers a change callback and returns its unsubscribe func.
func (s *SessionStore) Subscribe(fn func(*Session)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Restore validates a persisted token against the backend and settles the
// initial loading state. With no token or an unconfigured client it settles
// to anonymous without any network call.
func (s *SessionStore) Restore(ctx context.Context, token string) {
	if token == "" || !s.c.Configured() {
		s.settle(nil)
		return
	}

	s.mu.Lock()
	s.candidate = token
	s.mu.Unlock()

	var out struct {
		Email     string    `json:"email"`
		ExpiresAt time.Time `json:"expires_at"`
	}
	err := s.c.do(ctx, http.MethodGet, "/auth/session", nil, nil, &out)

	s.mu.Lock()
	token = s.candidate // the backend may have refreshed it in flight
	s.candidate = ""
	s.mu.Unlock()

	if err != nil {
		s.settle(nil)
		return
	}

	s.settle(&Session{Email: out.Email, Token: token, ExpiresAt: out.ExpiresAt})
}

// SignIn exchanges credentials for a session. It never panics and never
// returns a Go error: the outcome is the result's Err string.
func (s *SessionStore) SignIn(ctx context.Context, email, password string) SignInResult {
	if !s.c.Configured() {
		s.settle(nil)
		return SignInResult{Err: errMsgNotConfigured}
	}

	body := map[string]string{"email": email, "password": password}
	var out struct {
		Email     string    `json:"email"`
		Token     string    `json:"token"`
		ExpiresAt time.Time `json:"expires_at"`
	}
	if err := s.c.do(ctx, http.MethodPost, "/auth/sign-in", nil, body, &out); err != nil {
		s.settle(nil)
		return SignInResult{Err: errorMessage(err)}
	}

	s.settle(&Session{Email: out.Email, Token: out.Token, ExpiresAt: out.ExpiresAt})
	return SignInResult{}
}

// SignOut tells the backend and clears local state. The local clear happens
// even when the request fails, so the UI can never stay signed-in-looking.
func (s *SessionStore) SignOut(ctx context.Context) {
	_ = s.c.do(ctx, http.MethodPost, "/auth/sign-out", nil, nil, nil)
	s.set(nil)
}

// token returns the bearer token for outgoing requests, empty when anonymous.
// During Restore the candidate token is used before any session exists.
func (s *SessionStore) token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != nil {
		return s.session.Token
	}
	return s.candidate
}

// adoptRefreshed swaps in a sliding-window token re-issued by the backend.
// Adoption is silent: the session identity has not changed, only its expiry.
func (s *SessionStore) adoptRefreshed(token string) {
	if token == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != nil {
		s.session.Token = token
		return
	}
	if s.candidate != "" {
		s.candidate = token
	}
}

// set updates the session and notifies subscribers outside the lock.
func (s *SessionStore) set(session *Session) {
	s.mu.Lock()
	s.session = session
	subs := make([]func(*Session), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(session)
	}
}

// settle is set plus marking the initial load resolved.
func (s *SessionStore) settle(session *Session) {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
	s.set(session)
}
