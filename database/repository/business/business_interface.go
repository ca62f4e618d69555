package businessRepo

import (
	"randevio/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BusinessRepository defines methods for business data access.
type BusinessRepository interface {
	// Create inserts a new business record.
	Create(business *models.Business) error
	// GetByID retrieves a business by its unique ID.
	GetByID(id string) (*models.Business, error)
	// GetByOwnerID retrieves the business owned by a user; returns nil when absent.
	GetByOwnerID(ownerID string) (*models.Business, error)
	// GetBySlug retrieves an active business by its public slug; returns nil when absent.
	GetBySlug(slug string) (*models.Business, error)
	// SlugExists reports whether a slug is already taken.
	SlugExists(slug string) (bool, error)
	// UpdateWithDocument patches a business document with the specified update document.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// SetWorkingHours replaces the weekly schedule.
	SetWorkingHours(id string, hours []models.WorkingHour) error
	// UpdateRating sets the aggregate rating fields.
	UpdateRating(id string, rating float64, count int) error
	// ListActive retrieves all active businesses (raffle sweep).
	ListActive() ([]models.Business, error)
}
