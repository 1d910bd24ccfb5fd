package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// MinServiceKeyLength is the shortest service API key the guard accepts.
// Real keys are long opaque tokens; anything shorter is a placeholder.
const MinServiceKeyLength = 32

// Guard decides once at startup whether the hosted backend (object storage
// and auth) is usable. When it is not, every operation that would reach the
// backend must return errs.ErrNotConfigured without attempting any I/O.
type Guard struct {
	BaseURL    string
	ServiceKey string

	problems []string
	warnOnce sync.Once
}

// NewGuard validates PUBLIC_BASE_URL and SERVICE_API_KEY from the given
// environment snapshot. The returned guard is safe for concurrent use.
func NewGuard(c Config) *Guard {
	g := &Guard{
		BaseURL:    c.GetString("PUBLIC_BASE_URL", ""),
		ServiceKey: c.GetString("SERVICE_API_KEY", ""),
	}
	g.problems = ValidateBackend(g.BaseURL, g.ServiceKey)
	return g
}

// ValidateBackend returns a human-readable problem per failed condition:
// both values present, URL carries the https prefix, key meets the minimum
// length. An empty result means the backend is configured.
func ValidateBackend(baseURL, serviceKey string) []string {
	var problems []string

	switch {
	case baseURL == "":
		problems = append(problems, "PUBLIC_BASE_URL is not set")
	case !strings.HasPrefix(baseURL, "https://"):
		problems = append(problems, "PUBLIC_BASE_URL must start with https://")
	}

	switch {
	case serviceKey == "":
		problems = append(problems, "SERVICE_API_KEY is not set")
	case len(serviceKey) < MinServiceKeyLength:
		problems = append(problems, fmt.Sprintf("SERVICE_API_KEY must be at least %d characters", MinServiceKeyLength))
	}

	return problems
}

// Configured reports whether backend-facing operations may proceed.
func (g *Guard) Configured() bool {
	return len(g.problems) == 0
}

// Problems lists the failed conditions, empty when configured.
func (g *Guard) Problems() []string {
	return g.problems
}

// WarnIfUnconfigured emits a single diagnostic naming every missing or
// malformed value. Repeat calls are no-ops.
func (g *Guard) WarnIfUnconfigured() {
	if g.Configured() {
		return
	}
	g.warnOnce.Do(func() {
		log.Warn().
			Strs("problems", g.problems).
			Msg("backend credentials missing or malformed, running in degraded mode")
	})
}
