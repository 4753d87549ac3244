package auth

import (
	"context"
	"errors"
)

// ErrNoEmail is returned when a token verifies but carries no email claim.
var ErrNoEmail = errors.New("token has no email claim")

// Identity is what a verified bearer token tells us about the caller.
type Identity struct {
	Email string
}

// TokenVerifier checks a bearer token against an identity provider.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}
