package appointment

import (
	"fmt"
	"time"

	appointmentRepo "randevio/database/repository/appointment"
	businessRepo "randevio/database/repository/business"
	catalogRepo "randevio/database/repository/catalog"
	"randevio/models"
	"randevio/services/availability"
	"randevio/services/notification"
	"randevio/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingRequest is a public booking submission against a business's calendar.
type BookingRequest struct {
	ServiceID     string `json:"service_id" binding:"required"`
	StaffID       string `json:"staff_id"`
	Date          string `json:"date" binding:"required"` // "YYYY-MM-DD"
	Time          string `json:"time" binding:"required"` // "HH:MM"
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`
	Note          string `json:"note"`
}

// AppointmentService defines business logic for bookings.
type AppointmentService interface {
	// Book creates a PENDING appointment on a business's calendar, rejecting
	// starts whose slots are already booked.
	Book(business *models.Business, req BookingRequest) (*models.Appointment, error)
	// List retrieves a page of a business's appointments.
	List(businessID string, criteria appointmentRepo.ListCriteria) ([]models.Appointment, models.Pagination, error)
	// UpdateStatus advances an appointment through its lifecycle.
	UpdateStatus(businessID, id string, next models.AppointmentStatus) error
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo         appointmentRepo.AppointmentRepository
	Businesses   businessRepo.BusinessRepository
	Services     catalogRepo.ServiceRepository
	Availability availability.Service
	Notifier     notification.Notifier
}

func (s *DefaultAppointmentService) Book(business *models.Business, req BookingRequest) (*models.Appointment, error) {
	service, err := s.Services.GetByID(business.ID, req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if service == nil || !service.IsActive {
		return nil, fmt.Errorf("service %s not found", req.ServiceID)
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", req.Date+" "+req.Time, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid date or time: expected YYYY-MM-DD and HH:MM")
	}
	if start.Before(time.Now().UTC()) {
		return nil, fmt.Errorf("cannot book a past slot")
	}

	// Reject starts landing on an already-booked slot for the chosen staff.
	day, err := s.Availability.ForDay(business.ID, req.Date, req.StaffID)
	if err != nil {
		return nil, err
	}
	startLabel := availability.SlotLabel(start)
	for _, booked := range day.BookedSlots {
		if booked == startLabel {
			return nil, fmt.Errorf("slot %s is already booked", startLabel)
		}
	}

	now := time.Now()
	appointment := &models.Appointment{
		ID:            uuid.New().String(),
		BusinessID:    business.ID,
		StaffID:       req.StaffID,
		ServiceID:     service.ID,
		Date:          start,
		Duration:      service.Duration,
		Price:         service.Price,
		Status:        models.AppointmentPending,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Note:          req.Note,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Repo.Create(appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.Availability.InvalidateDay(business.ID, start)
	s.notifyOwner(business, appointment)

	utils.GetLogger().Info("appointment booked",
		zap.String("appointmentID", appointment.ID),
		zap.String("businessID", business.ID),
		zap.String("slot", startLabel))
	return appointment, nil
}

func (s *DefaultAppointmentService) List(businessID string, criteria appointmentRepo.ListCriteria) ([]models.Appointment, models.Pagination, error) {
	if criteria.Page < 1 {
		criteria.Page = 1
	}
	if criteria.Limit < 1 || criteria.Limit > 100 {
		criteria.Limit = 20
	}
	appointments, total, err := s.Repo.List(businessID, criteria)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, models.NewPagination(criteria.Page, criteria.Limit, total), nil
}

func (s *DefaultAppointmentService) UpdateStatus(businessID, id string, next models.AppointmentStatus) error {
	appointment, err := s.Repo.GetByID(businessID, id)
	if err != nil {
		return fmt.Errorf("failed to fetch appointment: %w", err)
	}
	if appointment == nil {
		return fmt.Errorf("appointment %s not found", id)
	}
	if !appointment.Status.CanTransition(next) {
		return fmt.Errorf("cannot move appointment from %s to %s", appointment.Status, next)
	}

	if err := s.Repo.UpdateStatus(businessID, id, next); err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}

	// Cancellations and no-shows free calendar slots.
	if next == models.AppointmentCancelled || next == models.AppointmentNoShow {
		s.Availability.InvalidateDay(businessID, appointment.Date)
	}
	utils.GetLogger().Info("appointment status changed",
		zap.String("appointmentID", id),
		zap.String("from", string(appointment.Status)),
		zap.String("to", string(next)))
	return nil
}

func (s *DefaultAppointmentService) notifyOwner(business *models.Business, appointment *models.Appointment) {
	if s.Notifier == nil {
		return
	}
	title := "Yeni randevu"
	body := fmt.Sprintf("%s, %s %s",
		appointment.CustomerName,
		appointment.Date.Format("02.01.2006"),
		availability.SlotLabel(appointment.Date))
	data := map[string]string{"appointment_id": appointment.ID}
	if err := s.Notifier.PushToUser(business.OwnerID, title, body, data); err != nil {
		utils.GetLogger().Warn("failed to notify owner",
			zap.String("businessID", business.ID), zap.Error(err))
	}
}
