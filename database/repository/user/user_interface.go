package userRepo

import "randevio/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by email; returns nil when absent.
	GetByEmail(email string) (*models.User, error)
	// UpdateTokenHash stores the hash of the user's current auth token.
	UpdateTokenHash(id, tokenHash string) error
	// UpdateFCMToken stores the user's current device push token.
	UpdateFCMToken(id, fcmToken string) error
	// Delete removes a user record by its ID.
	Delete(id string) error
}
