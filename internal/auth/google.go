package auth

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

var ErrInvalidGoogleAudience = errors.New("invalid google audience")

// GoogleVerifier checks Google ID tokens against the tokeninfo endpoint.
type GoogleVerifier struct {
	service  *oauth2.Service
	clientID string
}

func NewGoogleVerifier(ctx context.Context, clientID string, opts ...option.ClientOption) (*GoogleVerifier, error) {
	if len(opts) == 0 {
		opts = []option.ClientOption{option.WithHTTPClient(&http.Client{})}
	}

	service, err := oauth2.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &GoogleVerifier{service: service, clientID: clientID}, nil
}

func (v *GoogleVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	info, err := v.service.Tokeninfo().IdToken(token).Context(ctx).Do()
	if err != nil {
		return Identity{}, err
	}

	if info.Audience != v.clientID {
		return Identity{}, ErrInvalidGoogleAudience
	}
	if info.Email == "" {
		return Identity{}, ErrNoEmail
	}

	return Identity{Email: info.Email}, nil
}
