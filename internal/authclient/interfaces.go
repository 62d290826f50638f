package authclient

import "context"

// Authenticator defines the provider operations the HTTP shell delegates
// to. Client is the production implementation; tests substitute mocks.
type Authenticator interface {
	SignUp(ctx context.Context, email, password string, profile Profile) (*AuthResult, error)
	SignIn(ctx context.Context, email, password string) (*AuthResult, error)
	CompleteTwoFactor(ctx context.Context, challengeID, code string) (*AuthResult, error)
	SignOut(ctx context.Context, accessToken string) error
	GetKYCStatus(ctx context.Context, accessToken string) (*KYCStatus, error)
}

var _ Authenticator = (*Client)(nil)
