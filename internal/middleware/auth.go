package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/harentsoaR/doctors-portal-api/internal/auth"
)

const (
	identityKey  = "identity"
	bearerPrefix = "Bearer "
)

// OptionalIdentity verifies a bearer token when one is sent and attaches the
// resulting identity to the context. It never rejects a request: a missing or
// invalid token just leaves the request without an identity.
func OptionalIdentity(verifier auth.TokenVerifier, logger *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			c.Next()
			return
		}

		token := strings.TrimPrefix(authHeader, bearerPrefix)
		identity, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			logger.Debug().Err(err).Str("path", c.FullPath()).Msg("token verification failed, continuing without identity")
			c.Next()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// IdentityFrom returns the identity attached by OptionalIdentity, if any.
func IdentityFrom(c *gin.Context) (auth.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return auth.Identity{}, false
	}
	identity, ok := v.(auth.Identity)
	if !ok || identity.Email == "" {
		return auth.Identity{}, false
	}
	return identity, true
}
