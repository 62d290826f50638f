package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coinpulse/internal/authclient"
	apperrors "coinpulse/internal/errors"
)

// AuthHandler handles authentication-related requests by delegating to
// the external auth provider. No credentials are verified or stored here.
type AuthHandler struct {
	auth authclient.Authenticator
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth authclient.Authenticator) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// SignupRequest represents the signup request payload
type SignupRequest struct {
	Email     string `json:"email" binding:"required,email,max=255"`
	Password  string `json:"password" binding:"required,min=8,max=128"`
	FirstName string `json:"first_name" binding:"max=100"`
	LastName  string `json:"last_name" binding:"max=100"`
	Country   string `json:"country" binding:"omitempty,len=2"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TwoFactorRequest represents the 2FA completion payload
type TwoFactorRequest struct {
	ChallengeID string `json:"challenge_id" binding:"required"`
	Code        string `json:"code" binding:"required,min=6,max=8"`
}

// Signup handles account registration via the auth provider
// @Summary     Register a new account
// @Description Register a new account with the external auth provider
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body SignupRequest true "Signup data"
// @Success     201 {object} authclient.AuthResult "Account created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Email already registered"
// @Failure     503 {object} ErrorResponse "Provider unavailable"
// @Router      /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.auth.SignUp(c.Request.Context(), req.Email, req.Password, authclient.Profile{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Country:   req.Country,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Login handles credential sign-in via the auth provider
// @Summary     Login
// @Description Authenticate with the external auth provider. Accounts with a second factor enrolled receive a pending challenge instead of a session.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Login credentials"
// @Success     200 {object} authclient.AuthResult "Session or pending 2FA challenge"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     503 {object} ErrorResponse "Provider unavailable"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.auth.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CompleteTwoFactor handles 2FA challenge completion
// @Summary     Complete two-factor verification
// @Description Exchange a pending challenge and code for a session
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body TwoFactorRequest true "Challenge and code"
// @Success     200 {object} authclient.AuthResult "Session issued"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid or expired code"
// @Failure     503 {object} ErrorResponse "Provider unavailable"
// @Router      /auth/2fa [post]
func (h *AuthHandler) CompleteTwoFactor(c *gin.Context) {
	var req TwoFactorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.auth.CompleteTwoFactor(c.Request.Context(), req.ChallengeID, req.Code)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Logout revokes the current session with the provider
// @Summary     Logout
// @Description Revoke the current session
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]string "Logged out"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := getAccessToken(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.auth.SignOut(c.Request.Context(), token); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

// GetKYCStatus returns the user's verification status from the provider
// @Summary     KYC status
// @Description Poll the user's verification status
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} authclient.KYCStatus "Verification status"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Status temporarily unavailable"
// @Router      /auth/kyc [get]
func (h *AuthHandler) GetKYCStatus(c *gin.Context) {
	token, err := getAccessToken(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	status, err := h.auth.GetKYCStatus(c.Request.Context(), token)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}
