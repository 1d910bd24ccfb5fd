// Package client is a typed Go client for the portfolio backend. Each entity
// collection is owned by a stateful store exposing the items, a loading flag
// and a human-readable error string, mirroring how the admin dashboard and
// the public pages consume content.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/config"
)

// sessionTokenHeader mirrors the header the backend uses to hand back a
// refreshed session token on every authenticated response.
const sessionTokenHeader = "X-Session-Token"

// Error strings surfaced through store state. Backend-reported messages are
// passed through verbatim instead.
const (
	errMsgNotConfigured = "backend not configured"
	errMsgConnectivity  = "unable to reach the backend"
)

// apiError is a backend-reported failure; Message arrives verbatim from the
// error body.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	return e.Message
}

type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	logger  zerolog.Logger

	// non-empty when the constructor found the configuration unusable;
	// every operation then short-circuits without any HTTP call
	configProblems []string

	session        *SessionStore
	profile        *ProfileStore
	projects       *ProjectStore
	certifications *CertificationStore
	blogPosts      *BlogPostStore
	services       *ServiceStore
	messages       *MessageStore
}

type Option func(*Client)

// WithHTTPClient swaps the transport, mainly for tests.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// New validates the backend coordinates and builds a client. An invalid
// configuration still yields a usable client: every operation resolves with
// the not-configured error and performs no network I/O.
func New(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		apiKey:         apiKey,
		httpc:          http.DefaultClient,
		logger:         log.With().Str("component", "client").Logger(),
		configProblems: config.ValidateBackend(baseURL, apiKey),
	}
	for _, opt := range opts {
		opt(c)
	}

	if len(c.configProblems) > 0 {
		c.logger.Warn().
			Strs("problems", c.configProblems).
			Msg("backend credentials missing or malformed, all operations will fail fast")
	}

	c.session = newSessionStore(c)
	c.profile = newProfileStore(c)
	c.projects = newProjectStore(c)
	c.certifications = newCertificationStore(c)
	c.blogPosts = newBlogPostStore(c)
	c.services = newServiceStore(c)
	c.messages = newMessageStore(c)
	return c
}

// Configured reports whether the backend coordinates passed validation.
func (c *Client) Configured() bool {
	return len(c.configProblems) == 0
}

func (c *Client) Session() *SessionStore               { return c.session }
func (c *Client) Profile() *ProfileStore               { return c.profile }
func (c *Client) Projects() *ProjectStore              { return c.projects }
func (c *Client) Certifications() *CertificationStore  { return c.certifications }
func (c *Client) BlogPosts() *BlogPostStore            { return c.blogPosts }
func (c *Client) Services() *ServiceStore              { return c.services }
func (c *Client) Messages() *MessageStore              { return c.messages }

func (c *Client) notConfiguredErr() error {
	return &apiError{Status: http.StatusServiceUnavailable, Message: errMsgNotConfigured}
}

// do runs one JSON request. The context genuinely cancels the request, so an
// abandoned caller aborts the network call rather than merely ignoring the
// result.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if !c.Configured() {
		return c.notConfiguredErr()
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setAuthHeaders(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &connectivityError{cause: err}
	}
	defer resp.Body.Close()

	c.session.adoptRefreshed(resp.Header.Get(sessionTokenHeader))

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response body: %w", err)
		}
	}
	return nil
}

func (c *Client) setAuthHeaders(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	if token := c.session.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// connectivityError is a transport-level failure; it surfaces as the generic
// connectivity message.
type connectivityError struct {
	cause error
}

func (e *connectivityError) Error() string {
	return fmt.Sprintf("%s: %v", errMsgConnectivity, e.cause)
}

func (e *connectivityError) Unwrap() error {
	return e.cause
}

func decodeJSON(resp *http.Response, out any) error {
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
		return &apiError{Status: resp.StatusCode, Message: fmt.Sprintf("backend returned status %d", resp.StatusCode)}
	}
	return &apiError{Status: resp.StatusCode, Message: body.Error}
}

// errorMessage folds any operation error into the string surfaced to the UI:
// backend messages verbatim, everything transport-shaped becomes the generic
// connectivity message.
func errorMessage(err error) string {
	switch e := err.(type) {
	case *apiError:
		return e.Message
	case *connectivityError:
		return errMsgConnectivity
	default:
		return errMsgConnectivity
	}
}
