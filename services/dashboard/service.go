package dashboard

import (
	"fmt"
	"time"

	appointmentRepo "randevio/database/repository/appointment"
	"randevio/models"
)

// Service defines business logic for the owner dashboard.
type Service interface {
	// Stats computes today's counters and their trends against yesterday.
	Stats(businessID string, now time.Time) (*models.DashboardStats, error)
}

// DefaultService is the production implementation.
type DefaultService struct {
	Repo appointmentRepo.AppointmentRepository
}

func (s *DefaultService) Stats(businessID string, now time.Time) (*models.DashboardStats, error) {
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	yesterdayStart := todayStart.Add(-24 * time.Hour)
	yesterdayEnd := todayStart.Add(-time.Nanosecond)

	today, err := s.Repo.DayStats(businessID, todayStart, todayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to compute today's stats: %w", err)
	}
	yesterday, err := s.Repo.DayStats(businessID, yesterdayStart, yesterdayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to compute yesterday's stats: %w", err)
	}

	return &models.DashboardStats{
		Today: today,
		Trends: models.TrendSet{
			Appointments: Trend(float64(today.Appointments), float64(yesterday.Appointments)),
			Revenue:      Trend(today.Revenue, yesterday.Revenue),
			Customers:    Trend(float64(today.Customers), float64(yesterday.Customers)),
			Completion:   Trend(today.CompletionRate, yesterday.CompletionRate),
		},
	}, nil
}
