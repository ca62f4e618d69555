package website

import (
	"fmt"

	businessRepo "randevio/database/repository/business"
	catalogRepo "randevio/database/repository/catalog"
	reviewRepo "randevio/database/repository/review"
	"randevio/models"
	"randevio/services/media"
)

// WebsiteService defines business logic for the generated public site.
type WebsiteService interface {
	// BuildSite assembles the public-site payload for an active business by
	// its slug; returns nil when the slug resolves to nothing.
	BuildSite(slug string) (*models.SitePayload, error)
}

// DefaultWebsiteService is the production implementation.
type DefaultWebsiteService struct {
	Businesses businessRepo.BusinessRepository
	Services   catalogRepo.ServiceRepository
	Staff      catalogRepo.StaffRepository
	Reviews    reviewRepo.ReviewRepository
	Media      media.MediaService
}

func (s *DefaultWebsiteService) BuildSite(slug string) (*models.SitePayload, error) {
	business, err := s.Businesses.GetBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch business: %w", err)
	}
	if business == nil {
		return nil, nil
	}

	services, err := s.Services.ListByBusiness(business.ID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	staff, err := s.Staff.ListByBusiness(business.ID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	reviews, err := s.Reviews.ListByBusiness(business.ID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	gallery, err := s.Media.List(business.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery: %w", err)
	}

	return &models.SitePayload{
		Business:     *business,
		Services:     services,
		Staff:        staff,
		WorkingHours: business.WorkingHours,
		Gallery:      gallery,
		Reviews:      reviews,
	}, nil
}
