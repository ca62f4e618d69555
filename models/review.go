package models

import "time"

// Review is a customer rating of a completed appointment.
type Review struct {
	ID            string    `bson:"id" json:"id"`
	BusinessID    string    `bson:"business_id" json:"business_id"`
	AppointmentID string    `bson:"appointment_id" json:"appointment_id"`
	CustomerName  string    `bson:"customer_name" json:"customer_name"`
	Rating        int       `bson:"rating" json:"rating"` // 1..5
	Comment       string    `bson:"comment,omitempty" json:"comment,omitempty"`
	Reply         string    `bson:"reply,omitempty" json:"reply,omitempty"`
	Approved      bool      `bson:"approved" json:"approved"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}
