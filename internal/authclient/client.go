// Package authclient is a thin client for the external authentication and
// KYC provider. All verification, persistence, and session management
// live on the provider side; this package only shapes requests and maps
// provider responses onto the application's error scheme.
package authclient

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"

	apperrors "coinpulse/internal/errors"
)

// Profile carries the optional signup profile fields forwarded to the
// provider as user metadata.
type Profile struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Country   string `json:"country,omitempty"`
}

// User is the provider's view of an account.
type User struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	EmailConfirmed bool   `json:"email_confirmed"`
}

// Session is an issued token pair.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// AuthResult is the outcome of a signup, login, or 2FA completion. When
// the provider demands a second factor, Pending2FA is set and Session is
// nil until CompleteTwoFactor succeeds.
type AuthResult struct {
	User        *User    `json:"user,omitempty"`
	Session     *Session `json:"session,omitempty"`
	Pending2FA  bool     `json:"pending_2fa"`
	ChallengeID string   `json:"challenge_id,omitempty"`
	Method      string   `json:"method,omitempty"`
}

// KYCStatus is the provider's verification state for a user.
type KYCStatus struct {
	KYCStatus  string `json:"kyc_status"`
	IsVerified bool   `json:"is_verified"`
	CanFund    bool   `json:"can_fund"`
}

// Client talks to the auth provider's REST API.
type Client struct {
	http *resty.Client
}

// New creates a provider client for the given base URL and anon key.
func New(baseURL, anonKey string, timeout time.Duration) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("apikey", anonKey).
		SetHeader("Content-Type", "application/json")
	return &Client{http: http}
}

type credentialsRequest struct {
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Data     *Profile `json:"data,omitempty"`
}

type verifyRequest struct {
	ChallengeID string `json:"challenge_id"`
	Code        string `json:"code"`
}

type providerError struct {
	Error   string `json:"error"`
	Message string `json:"msg"`
}

// SignUp registers a new account with the provider.
func (c *Client) SignUp(ctx context.Context, email, password string, profile Profile) (*AuthResult, error) {
	var result AuthResult
	var provErr providerError

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(credentialsRequest{Email: email, Password: password, Data: &profile}).
		SetResult(&result).
		SetError(&provErr).
		Post("/auth/v1/signup")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAuthProviderUnavailable, err)
	}

	switch resp.StatusCode() {
	case 200, 201:
		return &result, nil
	case 409, 422:
		return nil, apperrors.ErrDuplicateEmail
	case 400:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, providerMessage(provErr))
	default:
		return nil, apperrors.WithMessage(apperrors.ErrAuthProviderUnavailable, providerMessage(provErr))
	}
}

// SignIn exchanges credentials for a session. When the account has a
// second factor enrolled the provider returns a challenge instead of a
// session; that surfaces here as a Pending2FA result, not an error.
func (c *Client) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	var result AuthResult
	var provErr providerError

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("grant_type", "password").
		SetBody(credentialsRequest{Email: email, Password: password}).
		SetResult(&result).
		SetError(&provErr).
		Post("/auth/v1/token")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAuthProviderUnavailable, err)
	}

	switch resp.StatusCode() {
	case 200:
		return &result, nil
	case 400, 401, 403:
		return nil, apperrors.ErrInvalidCredentials
	default:
		return nil, apperrors.WithMessage(apperrors.ErrAuthProviderUnavailable, providerMessage(provErr))
	}
}

// CompleteTwoFactor finishes a pending challenge and returns the session.
func (c *Client) CompleteTwoFactor(ctx context.Context, challengeID, code string) (*AuthResult, error) {
	var result AuthResult
	var provErr providerError

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(verifyRequest{ChallengeID: challengeID, Code: code}).
		SetResult(&result).
		SetError(&provErr).
		Post("/auth/v1/verify")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAuthProviderUnavailable, err)
	}

	switch resp.StatusCode() {
	case 200:
		return &result, nil
	case 400, 401, 403, 422:
		return nil, apperrors.ErrInvalidTwoFactor
	default:
		return nil, apperrors.WithMessage(apperrors.ErrAuthProviderUnavailable, providerMessage(provErr))
	}
}

// SignOut revokes the session behind the given access token. A provider
// outage is not an error worth surfacing for logout; the client just
// drops its token.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		Post("/auth/v1/logout")
	if err != nil {
		return apperrors.Wrap(apperrors.ErrAuthProviderUnavailable, err)
	}
	if resp.StatusCode() == 401 {
		return apperrors.ErrUnauthorized
	}
	return nil
}

// GetKYCStatus polls the provider's verification endpoint. Any provider
// failure maps to ErrKYCUnavailable so the client keeps polling rather
// than treating a blip as a terminal state.
func (c *Client) GetKYCStatus(ctx context.Context, accessToken string) (*KYCStatus, error) {
	var status KYCStatus

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&status).
		Get("/functions/v1/kyc-status")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrKYCUnavailable, err)
	}

	switch resp.StatusCode() {
	case 200:
		return &status, nil
	case 401, 403:
		return nil, apperrors.ErrUnauthorized
	default:
		return nil, apperrors.ErrKYCUnavailable
	}
}

func providerMessage(e providerError) string {
	if e.Message != "" {
		return e.Message
	}
	if e.Error != "" {
		return e.Error
	}
	return "Provider request failed"
}
