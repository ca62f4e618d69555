package models

import "time"

// WorkingHour describes one weekday of a business schedule. SlotDuration is
// the owner-configured booking granularity for the public site; the
// availability calculator uses its own fixed 30-minute buckets and does not
// consult it.
type WorkingHour struct {
	Weekday      int    `bson:"weekday" json:"weekday"` // 0 = Sunday ... 6 = Saturday
	Open         string `bson:"open" json:"open"`       // "HH:MM", 24h
	Close        string `bson:"close" json:"close"`
	Closed       bool   `bson:"closed" json:"closed"`
	SlotDuration int    `bson:"slot_duration,omitempty" json:"slot_duration,omitempty"` // minutes
}

// Business represents a tenant on the platform.
type Business struct {
	ID      string `bson:"id" json:"id"`
	OwnerID string `bson:"owner_id" json:"owner_id"`
	Name    string `bson:"name" json:"name"`
	Slug    string `bson:"slug" json:"slug"`
	About   string `bson:"about,omitempty" json:"about,omitempty"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`

	// Category is the legacy free-text category field; CategoryID and
	// SubcategoryID are the structured replacements. Either or both may be set.
	Category      string `bson:"category,omitempty" json:"category,omitempty"`
	CategoryID    string `bson:"category_id,omitempty" json:"category_id,omitempty"`
	SubcategoryID string `bson:"subcategory_id,omitempty" json:"subcategory_id,omitempty"`

	Province string `bson:"province,omitempty" json:"province,omitempty"`
	District string `bson:"district,omitempty" json:"district,omitempty"`

	Rating      float64 `bson:"rating" json:"rating"`
	RatingCount int     `bson:"rating_count" json:"rating_count"`

	WorkingHours []WorkingHour `bson:"working_hours,omitempty" json:"working_hours,omitempty"`

	IsActive  bool      `bson:"is_active" json:"is_active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
