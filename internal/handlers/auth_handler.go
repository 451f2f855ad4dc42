package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	userService services.UserServicer
	auditor     services.AuditServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService services.UserServicer, auditor services.AuditServicer) *AuthHandler {
	return &AuthHandler{userService: userService, auditor: auditor}
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	// RememberMe asks for a long-lived refresh token so the session
	// survives a restart.
	RememberMe bool `json:"remember_me"`
}

// ConfirmRequest represents the email confirmation payload
type ConfirmRequest struct {
	Token string `json:"token" binding:"required"`
}

// RefreshRequest represents the token refresh payload
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UserResponse represents the user data in the response
type UserResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	EmailConfirmed bool   `json:"email_confirmed"`
}

// AuthResponse represents the authentication response with tokens
type AuthResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token,omitempty"`
	User         UserResponse `json:"user"`
}

func userResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:             user.ID,
		Email:          user.Email,
		EmailConfirmed: user.EmailConfirmed(),
	}
}

// Register handles user registration
// @Summary     Register a new user
// @Description Register a new user with email and password; the account must confirm its email before logging in
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "User registration data"
// @Success     201 {object} UserResponse "User registered, confirmation pending"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Email already registered"
// @Router      /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, confirmationToken, err := h.userService.CreateUser(req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditor.Log(user.ID, "register", "user", user.ID, c.ClientIP(), nil)

	// The confirmation token is returned in the response body in place of
	// a mail delivery pipeline.
	c.JSON(http.StatusCreated, gin.H{
		"user":               userResponse(user),
		"confirmation_token": confirmationToken,
	})
}

// Confirm handles email confirmation
// @Summary     Confirm email address
// @Description Confirm a registered email with the single-use token issued at registration
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body ConfirmRequest true "Confirmation token"
// @Success     200 {object} UserResponse "Email confirmed"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unknown or spent token"
// @Router      /auth/confirm [post]
func (h *AuthHandler) Confirm(c *gin.Context) {
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.ConfirmEmail(req.Token)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditor.Log(user.ID, "confirm_email", "user", user.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"user": userResponse(user)})
}

// Login handles user login
// @Summary     Login user
// @Description Authenticate a user and get an access token; remember_me adds a refresh token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User login credentials"
// @Success     200 {object} AuthResponse "User authenticated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials or unconfirmed email"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.AttemptLogin(req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.GenerateAccessToken(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	resp := AuthResponse{Token: token, User: userResponse(user)}
	if req.RememberMe {
		refreshToken, err := middleware.GenerateRefreshToken(user)
		if err != nil {
			respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
			return
		}
		if err := h.userService.StoreRefreshTokenHash(user.ID, middleware.HashToken(refreshToken)); err != nil {
			respondWithError(c, err)
			return
		}
		resp.RefreshToken = refreshToken
	}

	h.auditor.Log(user.ID, "login", "user", user.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, resp)
}

// Refresh exchanges a refresh token for a new access token
// @Summary     Refresh access token
// @Description Exchange a valid refresh token for a new access token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RefreshRequest true "Refresh token"
// @Success     200 {object} AuthResponse "New access token issued"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid or revoked refresh token"
// @Router      /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	claims, err := middleware.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		respondWithError(c, apperrors.ErrInvalidToken)
		return
	}

	// The stored hash is the revocation check: logout clears it.
	storedHash, err := h.userService.GetRefreshTokenHash(claims.UserID)
	if err != nil || storedHash == "" || storedHash != middleware.HashToken(req.RefreshToken) {
		respondWithError(c, apperrors.ErrInvalidToken)
		return
	}

	user, err := h.userService.GetUserByID(claims.UserID)
	if err != nil {
		respondWithError(c, apperrors.ErrInvalidToken)
		return
	}

	token, err := middleware.GenerateAccessToken(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, User: userResponse(user)})
}

// Logout revokes the user's refresh token
// @Summary     Logout user
// @Description Revoke the stored refresh token so it can no longer be exchanged
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]string "Logged out"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.userService.ClearRefreshTokenHash(userID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditor.Log(userID, "logout", "user", userID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetProfile returns the authenticated user's profile
// @Summary     Get current user profile
// @Description Get the profile of the authenticated user
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} UserResponse "User profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userResponse(user)})
}
