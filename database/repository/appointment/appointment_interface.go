package appointmentRepo

import (
	"time"

	"randevio/models"
)

// ListCriteria narrows an owner's appointment listing.
type ListCriteria struct {
	Day    *time.Time // calendar day, any location
	Status models.AppointmentStatus
	Page   int
	Limit  int
}

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// Create inserts a new appointment record.
	Create(appointment *models.Appointment) error
	// GetByID retrieves an appointment scoped to a business; returns nil when absent.
	GetByID(businessID, id string) (*models.Appointment, error)
	// UpdateStatus sets the status of an appointment.
	UpdateStatus(businessID, id string, status models.AppointmentStatus) error
	// ListForDay retrieves a business's appointments within [dayStart, dayEnd]
	// whose status is one of statuses, optionally filtered to one staff member.
	ListForDay(businessID, staffID string, dayStart, dayEnd time.Time, statuses []models.AppointmentStatus) ([]models.Appointment, error)
	// List retrieves a page of a business's appointments, newest first, with the total count.
	List(businessID string, criteria ListCriteria) ([]models.Appointment, int64, error)
	// DayStats computes the dashboard counters for one day.
	DayStats(businessID string, dayStart, dayEnd time.Time) (models.DayStats, error)
	// DistinctCompletedCustomers lists distinct customers with a COMPLETED
	// appointment in [from, to) (raffle entries).
	DistinctCompletedCustomers(businessID string, from, to time.Time) ([]models.RaffleEntry, error)
}
