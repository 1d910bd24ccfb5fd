package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultIdleTimeout is how long a session survives without any
// authenticated request before it expires.
const DefaultIdleTimeout = 15 * time.Minute

var ErrSessionExpired = errors.New("session expired")

// Claims is the payload of a session token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies session tokens. Tokens carry a sliding
// idle window: every authenticated request gets a fresh token, so a token
// that reaches its expiry unexchanged is exactly the inactivity sign-out.
type TokenManager struct {
	secret      []byte
	idleTimeout time.Duration
	now         func() time.Time
}

func NewTokenManager(secret string, idleTimeout time.Duration) *TokenManager {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	return &TokenManager{
		secret:      []byte(secret),
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
}

// Issue signs a new session token for the given account.
func (m *TokenManager) Issue(email string) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.idleTimeout)

	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing session token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify parses and validates a session token. An expired token returns
// ErrSessionExpired so callers can distinguish idle sign-out from tampering.
func (m *TokenManager) Verify(token string) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrSessionExpired
		}
		return nil, err
	}
	return &claims, nil
}

// Refresh re-issues a token for the same account, restarting the idle window.
func (m *TokenManager) Refresh(claims *Claims) (string, time.Time, error) {
	return m.Issue(claims.Email)
}
