package auth

import (
	"context"
	"fmt"

	"github.com/harentsoaR/doctors-portal-api/internal/config"
)

// NewVerifier builds the TokenVerifier selected by AUTH_PROVIDER.
func NewVerifier(ctx context.Context, cfg *config.Config) (TokenVerifier, error) {
	var (
		v   TokenVerifier
		err error
	)

	switch cfg.AuthProvider {
	case config.AuthProviderFirebase:
		v, err = NewFirebaseVerifier(ctx, cfg.FirebaseServiceAccount)
	case config.AuthProviderGoogle:
		v, err = NewGoogleVerifier(ctx, cfg.GoogleClientID)
	case config.AuthProviderJWT:
		v, err = NewJWTVerifier(cfg.JWTSecret)
	default:
		return nil, fmt.Errorf("unknown auth provider %q", cfg.AuthProvider)
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}
