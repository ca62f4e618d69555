package user

import (
	"context"
	"fmt"
	"time"

	userRepo "randevio/database/repository/user"
	"randevio/models"
	"randevio/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is the lifetime of an issued auth token.
const TokenTTL = 72 * time.Hour

// AuthResponse contains the authenticated user's ID, role and JWT token.
type AuthResponse struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// UserService defines business logic for account operations.
type UserService interface {
	// Register validates registration details, creates the account, issues a
	// token and stores its hash.
	Register(user models.User, password string) (*AuthResponse, error)
	// Authenticate verifies credentials and issues a fresh token.
	Authenticate(email, password string) (*AuthResponse, error)
	// GetByID retrieves an account by its unique ID.
	GetByID(userID string) (*models.User, error)
	// UpdateFCMToken stores the account's current device push token.
	UpdateFCMToken(userID, fcmToken string) error
	// Revoke invalidates the account's current token.
	Revoke(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func (s *DefaultUserService) Register(user models.User, password string) (*AuthResponse, error) {
	if user.Email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if user.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if user.Role == "" {
		user.Role = models.RoleCustomer
	}
	if !models.ValidRole(user.Role) || user.Role == models.RoleAdmin {
		return nil, fmt.Errorf("invalid role %q", user.Role)
	}

	existing, err := s.Repo.GetByEmail(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user.ID = uuid.New().String()
	user.PasswordHash = string(hash)
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := s.Repo.Create(&user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	utils.GetLogger().Info("user registered",
		zap.String("userID", user.ID), zap.String("role", user.Role))

	return s.issueToken(&user)
}

func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	user, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	return s.issueToken(user)
}

// issueToken generates a JWT, persists its hash and mirrors it to the auth
// cache so middleware can reject revoked tokens without a database read.
func (s *DefaultUserService) issueToken(user *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(user.ID, user.Role, TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateTokenHash(user.ID, tokenHash); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + user.ID
	if err := utils.GetAuthCacheClient().Set(context.Background(), cacheKey, tokenHash, TokenTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache token hash", zap.String("userID", user.ID), zap.Error(err))
	}
	return &AuthResponse{ID: user.ID, Role: user.Role, Token: token}, nil
}

func (s *DefaultUserService) GetByID(userID string) (*models.User, error) {
	user, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}

func (s *DefaultUserService) UpdateFCMToken(userID, fcmToken string) error {
	if err := s.Repo.UpdateFCMToken(userID, fcmToken); err != nil {
		return fmt.Errorf("failed to update fcm token: %w", err)
	}
	return nil
}

func (s *DefaultUserService) Revoke(userID string) error {
	if err := s.Repo.UpdateTokenHash(userID, ""); err != nil {
		return fmt.Errorf("failed to clear token hash: %w", err)
	}
	cacheKey := utils.AuthCachePrefix + userID
	if err := utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to drop cached token hash",
			zap.String("userID", userID), zap.Error(err))
	}
	utils.GetLogger().Info("token revoked", zap.String("userID", userID))
	return nil
}
