package raffle

import (
	"fmt"
	"math/rand"
	"time"

	appointmentRepo "randevio/database/repository/appointment"
	businessRepo "randevio/database/repository/business"
	raffleRepo "randevio/database/repository/raffle"
	"randevio/models"
	"randevio/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RaffleService defines business logic for the monthly customer raffle.
type RaffleService interface {
	// DrawMonth picks a winner among the distinct customers who completed an
	// appointment at the business in the given month ("YYYY-MM"). One draw
	// per business per month.
	DrawMonth(businessID, month string) (*models.RaffleDraw, error)
	// ListDraws retrieves a business's past draws.
	ListDraws(businessID string) ([]models.RaffleDraw, error)
	// RunMonthlyDraw sweeps every active business for the previous month.
	RunMonthlyDraw(now time.Time) error
}

// DefaultRaffleService is the production implementation.
type DefaultRaffleService struct {
	Repo         raffleRepo.RaffleRepository
	Appointments appointmentRepo.AppointmentRepository
	Businesses   businessRepo.BusinessRepository
}

func (s *DefaultRaffleService) DrawMonth(businessID, month string) (*models.RaffleDraw, error) {
	monthStart, err := time.ParseInLocation("2006-01", month, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: expected YYYY-MM", month)
	}

	exists, err := s.Repo.ExistsForMonth(businessID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing draw: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("a draw for %s already exists", month)
	}

	monthEnd := monthStart.AddDate(0, 1, 0)
	entries, err := s.Appointments.DistinctCompletedCustomers(businessID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to collect raffle entries: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no eligible customers for %s", month)
	}

	winner := entries[rand.Intn(len(entries))]
	draw := &models.RaffleDraw{
		ID:          uuid.New().String(),
		BusinessID:  businessID,
		Month:       month,
		WinnerName:  winner.Name,
		WinnerPhone: winner.Phone,
		Entries:     len(entries),
		DrawnAt:     time.Now(),
	}
	if err := s.Repo.Create(draw); err != nil {
		return nil, fmt.Errorf("failed to record draw: %w", err)
	}
	utils.GetLogger().Info("raffle drawn",
		zap.String("businessID", businessID),
		zap.String("month", month),
		zap.Int("entries", draw.Entries))
	return draw, nil
}

func (s *DefaultRaffleService) ListDraws(businessID string) ([]models.RaffleDraw, error) {
	draws, err := s.Repo.ListByBusiness(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list draws: %w", err)
	}
	return draws, nil
}

func (s *DefaultRaffleService) RunMonthlyDraw(now time.Time) error {
	month := now.AddDate(0, -1, 0).UTC().Format("2006-01")
	businesses, err := s.Businesses.ListActive()
	if err != nil {
		return fmt.Errorf("failed to list active businesses: %w", err)
	}

	for _, business := range businesses {
		if _, err := s.DrawMonth(business.ID, month); err != nil {
			// Businesses with no entries or an existing draw are expected;
			// log and continue the sweep.
			utils.GetLogger().Debug("raffle skipped",
				zap.String("businessID", business.ID),
				zap.String("month", month),
				zap.Error(err))
		}
	}
	return nil
}
