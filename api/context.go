package api

import (
	"context"
	"errors"

	"github.com/rpupo63/portfolio-backend/auth"
)

type keyType string

const sessionClaimsKey keyType = "sessionClaims"

// ctxWithClaims adds verified session claims to the context
func ctxWithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, sessionClaimsKey, claims)
}

// ctxGetClaims retrieves verified session claims from the context
func ctxGetClaims(ctx context.Context) (*auth.Claims, error) {
	claims, ok := ctx.Value(sessionClaimsKey).(*auth.Claims)
	if !ok || claims == nil {
		return nil, errors.New("no session claims in context")
	}
	return claims, nil
}
