package business

import (
	"fmt"
	"time"

	businessRepo "randevio/database/repository/business"
	catalogRepo "randevio/database/repository/catalog"
	"randevio/models"
	"randevio/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// UpdateRequest carries the owner-editable business profile fields. Nil
// pointers are left untouched.
type UpdateRequest struct {
	Name          *string `json:"name,omitempty"`
	About         *string `json:"about,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Category      *string `json:"category,omitempty"`
	CategoryID    *string `json:"category_id,omitempty"`
	SubcategoryID *string `json:"subcategory_id,omitempty"`
	Province      *string `json:"province,omitempty"`
	District      *string `json:"district,omitempty"`
}

// BusinessService defines business logic for tenant management.
type BusinessService interface {
	// Create registers a new business for an owner, generating a unique slug.
	Create(business models.Business) (*models.Business, error)
	// GetByOwner retrieves the business owned by a user.
	GetByOwner(ownerID string) (*models.Business, error)
	// GetBySlug retrieves an active business by its public slug.
	GetBySlug(slug string) (*models.Business, error)
	// Update patches the owner-editable profile fields.
	Update(businessID string, req UpdateRequest) error
	// SetWorkingHours replaces the weekly schedule.
	SetWorkingHours(businessID string, hours []models.WorkingHour) error

	// Catalogue management.
	AddService(businessID string, service models.Service) (*models.Service, error)
	UpdateService(businessID string, service models.Service) error
	DeleteService(businessID, serviceID string) error
	ListServices(businessID string, activeOnly bool) ([]models.Service, error)
	AddStaff(businessID string, staff models.Staff) (*models.Staff, error)
	UpdateStaff(businessID string, staff models.Staff) error
	DeleteStaff(businessID, staffID string) error
	ListStaff(businessID string, activeOnly bool) ([]models.Staff, error)
}

// DefaultBusinessService is the production implementation.
type DefaultBusinessService struct {
	Repo     businessRepo.BusinessRepository
	Services catalogRepo.ServiceRepository
	Staff    catalogRepo.StaffRepository
}

func (s *DefaultBusinessService) Create(business models.Business) (*models.Business, error) {
	if business.Name == "" {
		return nil, fmt.Errorf("business name is required")
	}
	if business.OwnerID == "" {
		return nil, fmt.Errorf("owner id is required")
	}

	existing, err := s.Repo.GetByOwnerID(business.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing business: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("owner already has a business")
	}

	slug, err := s.uniqueSlug(business.Name)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	business.ID = uuid.New().String()
	business.Slug = slug
	business.IsActive = true
	business.Rating = 0
	business.RatingCount = 0
	business.CreatedAt = now
	business.UpdatedAt = now

	if err := s.Repo.Create(&business); err != nil {
		return nil, fmt.Errorf("failed to create business: %w", err)
	}
	utils.GetLogger().Info("business created",
		zap.String("businessID", business.ID), zap.String("slug", slug))
	return &business, nil
}

func (s *DefaultBusinessService) GetByOwner(ownerID string) (*models.Business, error) {
	business, err := s.Repo.GetByOwnerID(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch business: %w", err)
	}
	return business, nil
}

func (s *DefaultBusinessService) GetBySlug(slug string) (*models.Business, error) {
	business, err := s.Repo.GetBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch business: %w", err)
	}
	return business, nil
}

func (s *DefaultBusinessService) Update(businessID string, req UpdateRequest) error {
	set := bson.M{"updated_at": time.Now()}
	apply := func(field string, value *string) {
		if value != nil {
			set[field] = *value
		}
	}
	apply("name", req.Name)
	apply("about", req.About)
	apply("phone", req.Phone)
	apply("category", req.Category)
	apply("category_id", req.CategoryID)
	apply("subcategory_id", req.SubcategoryID)
	apply("province", req.Province)
	apply("district", req.District)

	if err := s.Repo.UpdateWithDocument(businessID, bson.M{"$set": set}); err != nil {
		return fmt.Errorf("failed to update business: %w", err)
	}
	return nil
}

func (s *DefaultBusinessService) SetWorkingHours(businessID string, hours []models.WorkingHour) error {
	for _, h := range hours {
		if h.Weekday < 0 || h.Weekday > 6 {
			return fmt.Errorf("invalid weekday %d", h.Weekday)
		}
		if h.Closed {
			continue
		}
		if _, err := time.Parse("15:04", h.Open); err != nil {
			return fmt.Errorf("invalid opening time %q", h.Open)
		}
		if _, err := time.Parse("15:04", h.Close); err != nil {
			return fmt.Errorf("invalid closing time %q", h.Close)
		}
	}
	if err := s.Repo.SetWorkingHours(businessID, hours); err != nil {
		return fmt.Errorf("failed to set working hours: %w", err)
	}
	return nil
}

func (s *DefaultBusinessService) AddService(businessID string, service models.Service) (*models.Service, error) {
	if service.Name == "" {
		return nil, fmt.Errorf("service name is required")
	}
	if service.Duration <= 0 {
		return nil, fmt.Errorf("service duration must be positive")
	}
	if service.Price < 0 {
		return nil, fmt.Errorf("service price cannot be negative")
	}

	now := time.Now()
	service.ID = uuid.New().String()
	service.BusinessID = businessID
	service.IsActive = true
	service.CreatedAt = now
	service.UpdatedAt = now

	if err := s.Services.Create(&service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return &service, nil
}

func (s *DefaultBusinessService) UpdateService(businessID string, service models.Service) error {
	service.BusinessID = businessID
	service.UpdatedAt = time.Now()
	if err := s.Services.Update(&service); err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	return nil
}

func (s *DefaultBusinessService) DeleteService(businessID, serviceID string) error {
	if err := s.Services.Delete(businessID, serviceID); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

func (s *DefaultBusinessService) ListServices(businessID string, activeOnly bool) ([]models.Service, error) {
	return s.Services.ListByBusiness(businessID, activeOnly)
}

func (s *DefaultBusinessService) AddStaff(businessID string, staff models.Staff) (*models.Staff, error) {
	if staff.Name == "" {
		return nil, fmt.Errorf("staff name is required")
	}

	now := time.Now()
	staff.ID = uuid.New().String()
	staff.BusinessID = businessID
	staff.IsActive = true
	staff.CreatedAt = now
	staff.UpdatedAt = now

	if err := s.Staff.Create(&staff); err != nil {
		return nil, fmt.Errorf("failed to create staff: %w", err)
	}
	return &staff, nil
}

func (s *DefaultBusinessService) UpdateStaff(businessID string, staff models.Staff) error {
	staff.BusinessID = businessID
	staff.UpdatedAt = time.Now()
	if err := s.Staff.Update(&staff); err != nil {
		return fmt.Errorf("failed to update staff: %w", err)
	}
	return nil
}

func (s *DefaultBusinessService) DeleteStaff(businessID, staffID string) error {
	if err := s.Staff.Delete(businessID, staffID); err != nil {
		return fmt.Errorf("failed to delete staff: %w", err)
	}
	return nil
}

func (s *DefaultBusinessService) ListStaff(businessID string, activeOnly bool) ([]models.Staff, error) {
	return s.Staff.ListByBusiness(businessID, activeOnly)
}
