package review

import (
	"fmt"
	"time"

	appointmentRepo "randevio/database/repository/appointment"
	businessRepo "randevio/database/repository/business"
	reviewRepo "randevio/database/repository/review"
	"randevio/models"
	"randevio/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewService defines business logic for appointment reviews.
type ReviewService interface {
	// Create records a review for a completed appointment and refreshes the
	// business's aggregate rating.
	Create(businessID string, review models.Review) (*models.Review, error)
	// ListByBusiness retrieves a business's reviews.
	ListByBusiness(businessID string, approvedOnly bool) ([]models.Review, error)
	// Reply stores the owner's reply on a review.
	Reply(businessID, reviewID, reply string) error
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Repo         reviewRepo.ReviewRepository
	Appointments appointmentRepo.AppointmentRepository
	Businesses   businessRepo.BusinessRepository
}

func (s *DefaultReviewService) Create(businessID string, review models.Review) (*models.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}
	if review.AppointmentID == "" {
		return nil, fmt.Errorf("appointment id is required")
	}

	appointment, err := s.Appointments.GetByID(businessID, review.AppointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment: %w", err)
	}
	if appointment == nil {
		return nil, fmt.Errorf("appointment %s not found", review.AppointmentID)
	}
	if appointment.Status != models.AppointmentCompleted {
		return nil, fmt.Errorf("only completed appointments can be reviewed")
	}

	reviewed, err := s.Repo.HasReviewForAppointment(review.AppointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}
	if reviewed {
		return nil, fmt.Errorf("appointment %s was already reviewed", review.AppointmentID)
	}

	now := time.Now()
	review.ID = uuid.New().String()
	review.BusinessID = businessID
	if review.CustomerName == "" {
		review.CustomerName = appointment.CustomerName
	}
	review.Approved = true
	review.CreatedAt = now
	review.UpdatedAt = now

	if err := s.Repo.Create(&review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	s.refreshRating(businessID)
	return &review, nil
}

func (s *DefaultReviewService) ListByBusiness(businessID string, approvedOnly bool) ([]models.Review, error) {
	reviews, err := s.Repo.ListByBusiness(businessID, approvedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

func (s *DefaultReviewService) Reply(businessID, reviewID, reply string) error {
	if reply == "" {
		return fmt.Errorf("reply cannot be empty")
	}
	if err := s.Repo.SetReply(businessID, reviewID, reply); err != nil {
		return fmt.Errorf("failed to reply to review: %w", err)
	}
	return nil
}

func (s *DefaultReviewService) refreshRating(businessID string) {
	sum, count, err := s.Repo.RatingSummary(businessID)
	if err != nil {
		utils.GetLogger().Warn("failed to summarize ratings",
			zap.String("businessID", businessID), zap.Error(err))
		return
	}
	rating := 0.0
	if count > 0 {
		rating = float64(sum) / float64(count)
	}
	if err := s.Businesses.UpdateRating(businessID, rating, count); err != nil {
		utils.GetLogger().Warn("failed to update business rating",
			zap.String("businessID", businessID), zap.Error(err))
	}
}
