package services

import (
	"context"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
)

// GoogleAuthSvcFacade wraps the Google OAuth flow used by customer sign-in.
type GoogleAuthSvcFacade interface {
	// GenerateStateString creates a CSRF token for the redirect flow.
	GenerateStateString(ctx context.Context) (string, error)

	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string

	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// GetUserInfo uses the access token to fetch the Google userinfo payload.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)

	// ValidateGoogleIDToken validates an ID token minted by Google sign-in.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
