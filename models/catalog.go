package models

import "time"

// Service is a bookable offering of a business. Duration drives how many
// 30-minute slots an appointment occupies.
type Service struct {
	ID         string    `bson:"id" json:"id"`
	BusinessID string    `bson:"business_id" json:"business_id"`
	Name       string    `bson:"name" json:"name"`
	Price      float64   `bson:"price" json:"price"`
	Duration   int       `bson:"duration" json:"duration"` // minutes
	IsActive   bool      `bson:"is_active" json:"is_active"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// Staff is a bookable member of a business.
type Staff struct {
	ID         string    `bson:"id" json:"id"`
	BusinessID string    `bson:"business_id" json:"business_id"`
	Name       string    `bson:"name" json:"name"`
	Title      string    `bson:"title,omitempty" json:"title,omitempty"`
	IsActive   bool      `bson:"is_active" json:"is_active"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}
