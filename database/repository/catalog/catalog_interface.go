package catalogRepo

import "randevio/models"

// ServiceRepository defines methods for service-catalogue data access.
type ServiceRepository interface {
	Create(service *models.Service) error
	// GetByID retrieves a service scoped to a business; returns nil when absent.
	GetByID(businessID, id string) (*models.Service, error)
	// ListByBusiness retrieves a business's services, optionally active only.
	ListByBusiness(businessID string, activeOnly bool) ([]models.Service, error)
	Update(service *models.Service) error
	Delete(businessID, id string) error
}

// StaffRepository defines methods for staff data access.
type StaffRepository interface {
	Create(staff *models.Staff) error
	GetByID(businessID, id string) (*models.Staff, error)
	ListByBusiness(businessID string, activeOnly bool) ([]models.Staff, error)
	Update(staff *models.Staff) error
	Delete(businessID, id string) error
}
