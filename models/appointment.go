package models

import "time"

// AppointmentStatus is the closed set of appointment states. Values are
// validated on ingestion so that invalid strings never reach comparisons.
type AppointmentStatus string

const (
	AppointmentPending    AppointmentStatus = "PENDING"
	AppointmentConfirmed  AppointmentStatus = "CONFIRMED"
	AppointmentInProgress AppointmentStatus = "IN_PROGRESS"
	AppointmentCompleted  AppointmentStatus = "COMPLETED"
	AppointmentCancelled  AppointmentStatus = "CANCELLED"
	AppointmentNoShow     AppointmentStatus = "NO_SHOW"
)

// Valid reports whether s is a known appointment status.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentInProgress,
		AppointmentCompleted, AppointmentCancelled, AppointmentNoShow:
		return true
	}
	return false
}

// CanTransition reports whether the status may advance to next. The
// progression is monotonic: PENDING/CONFIRMED → IN_PROGRESS → COMPLETED,
// with CANCELLED and NO_SHOW as terminal divergences before completion.
func (s AppointmentStatus) CanTransition(next AppointmentStatus) bool {
	if !next.Valid() || s == next {
		return false
	}
	switch s {
	case AppointmentPending:
		return next == AppointmentConfirmed || next == AppointmentInProgress ||
			next == AppointmentCancelled || next == AppointmentNoShow
	case AppointmentConfirmed:
		return next == AppointmentInProgress || next == AppointmentCompleted ||
			next == AppointmentCancelled || next == AppointmentNoShow
	case AppointmentInProgress:
		return next == AppointmentCompleted || next == AppointmentCancelled
	}
	// COMPLETED, CANCELLED and NO_SHOW are terminal.
	return false
}

// Appointment is a booking of one service at one instant. End time is derived
// as Date + Duration. Price and Duration are denormalized from the service at
// booking time so that availability and revenue reads need no join.
type Appointment struct {
	ID         string `bson:"id" json:"id"`
	BusinessID string `bson:"business_id" json:"business_id"`
	StaffID    string `bson:"staff_id,omitempty" json:"staff_id,omitempty"`
	ServiceID  string `bson:"service_id" json:"service_id"`

	Date     time.Time `bson:"date" json:"date"`
	Duration int       `bson:"duration" json:"duration"` // minutes, from the service
	Price    float64   `bson:"price" json:"price"`       // from the service

	Status AppointmentStatus `bson:"status" json:"status"`

	CustomerName  string `bson:"customer_name" json:"customer_name"`
	CustomerPhone string `bson:"customer_phone" json:"customer_phone"`
	CustomerEmail string `bson:"customer_email,omitempty" json:"customer_email,omitempty"`
	Note          string `bson:"note,omitempty" json:"note,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
