package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	appointmentRepo "randevio/database/repository/appointment"
	"randevio/utils"

	"go.uber.org/zap"
)

const cacheTTL = 2 * time.Minute

// ErrInvalidDate marks a malformed date parameter, as opposed to a backing
// store failure.
var ErrInvalidDate = errors.New("invalid date: expected YYYY-MM-DD")

// DayAvailability is the calendar payload for one business day.
type DayAvailability struct {
	Date              string   `json:"date"`
	BookedSlots       []string `json:"bookedSlots"`
	TotalAppointments int      `json:"totalAppointments"`
}

// Service defines business logic for calendar availability.
type Service interface {
	// ForDay computes the booked slot labels for a business on a date
	// ("YYYY-MM-DD"), optionally restricted to one staff member.
	ForDay(businessID, date, staffID string) (*DayAvailability, error)
	// InvalidateDay drops the cached availability for a business day, all
	// staff variants included.
	InvalidateDay(businessID string, day time.Time)
}

// DefaultService is the production implementation.
type DefaultService struct {
	Repo appointmentRepo.AppointmentRepository
}

// ForDay loads the day's blocking appointments and folds them into slot
// labels. Results are cached briefly; bookings invalidate the day's keys.
func (s *DefaultService) ForDay(businessID, date, staffID string) (*DayAvailability, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	cacheKey := cacheKey(businessID, date, staffID)
	ctx := context.Background()
	if raw, err := utils.GetCacheClient().Get(ctx, cacheKey).Result(); err == nil {
		var cached DayAvailability
		if json.Unmarshal([]byte(raw), &cached) == nil {
			return &cached, nil
		}
	}

	dayStart := day
	dayEnd := day.Add(24*time.Hour - time.Nanosecond)
	appointments, err := s.Repo.ListForDay(businessID, staffID, dayStart, dayEnd, BlockingStatuses)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments for %s: %w", date, err)
	}

	result := &DayAvailability{
		Date:              date,
		BookedSlots:       BookedSlots(appointments),
		TotalAppointments: len(appointments),
	}

	if raw, err := json.Marshal(result); err == nil {
		if err := utils.GetCacheClient().Set(ctx, cacheKey, raw, cacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache availability", zap.String("key", cacheKey), zap.Error(err))
		}
	}
	return result, nil
}

// InvalidateDay removes every cached variant for the day so the next read
// reflects the new booking. Staff-scoped keys share the day prefix.
func (s *DefaultService) InvalidateDay(businessID string, day time.Time) {
	ctx := context.Background()
	pattern := fmt.Sprintf("availability:%s:%s:*", businessID, day.UTC().Format("2006-01-02"))
	client := utils.GetCacheClient()
	keys, err := client.Keys(ctx, pattern).Result()
	if err != nil {
		utils.GetLogger().Warn("failed to scan availability keys", zap.String("pattern", pattern), zap.Error(err))
		return
	}
	if len(keys) > 0 {
		if err := client.Del(ctx, keys...).Err(); err != nil {
			utils.GetLogger().Warn("failed to invalidate availability", zap.String("pattern", pattern), zap.Error(err))
		}
	}
}

func cacheKey(businessID, date, staffID string) string {
	if staffID == "" {
		staffID = "all"
	}
	return fmt.Sprintf("availability:%s:%s:%s", businessID, date, staffID)
}
