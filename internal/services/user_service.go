package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// userService handles user-related business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// CreateUser registers a new user. The account starts unconfirmed; the
// returned raw token is delivered to the user out of band and must be
// presented to ConfirmEmail before the first login.
func (s *userService) CreateUser(email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", apperrors.WithMessage(apperrors.ErrInvalidInput, "email and password are required")
	}

	var count int64
	s.db.Model(&models.User{}).Where("email = ?", strings.ToLower(email)).Count(&count)
	if count > 0 {
		return nil, "", apperrors.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	token, err := newConfirmationToken()
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Email:                 strings.ToLower(email),
		Password:              string(hashedPassword),
		IsActive:              true,
		ConfirmationTokenHash: hashToken(token),
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return user, token, nil
}

// ConfirmEmail marks the account matching the token as confirmed and
// invalidates the token.
func (s *userService) ConfirmEmail(token string) (*models.User, error) {
	if token == "" {
		return nil, apperrors.ErrInvalidToken
	}

	var user models.User
	if err := s.db.Where("confirmation_token_hash = ?", hashToken(token)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	now := time.Now()
	user.EmailConfirmedAt = &now
	user.ConfirmationTokenHash = ""
	if err := s.db.Save(&user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &user, nil
}

// AttemptLogin verifies credentials and confirmation state. An unconfirmed
// account gets its own error code so the client can show a dedicated
// message; every other failure collapses into invalid credentials.
func (s *userService) AttemptLogin(email, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ? AND is_active = ?", strings.ToLower(email), true).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.EmailConfirmed() {
		return nil, apperrors.ErrEmailNotConfirmed
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.db.Model(&user).Update("last_login_at", now).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// StoreRefreshTokenHash persists the hash of the user's current refresh token.
func (s *userService) StoreRefreshTokenHash(userID, tokenHash string) error {
	result := s.db.Model(&models.User{}).Where("id = ?", userID).Update("refresh_token_hash", tokenHash)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// GetRefreshTokenHash returns the stored refresh token hash for the user.
func (s *userService) GetRefreshTokenHash(userID string) (string, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return "", err
	}
	return user.RefreshTokenHash, nil
}

// ClearRefreshTokenHash invalidates the user's refresh token on sign-out.
func (s *userService) ClearRefreshTokenHash(userID string) error {
	return s.StoreRefreshTokenHash(userID, "")
}

func newConfirmationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
