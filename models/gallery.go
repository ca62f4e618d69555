package models

import "time"

// GalleryImage is a business photo hosted on the external media service.
// PublicID is the host-side identifier; URLs are resolved on read.
type GalleryImage struct {
	ID         string    `bson:"id" json:"id"`
	BusinessID string    `bson:"business_id" json:"business_id"`
	PublicID   string    `bson:"public_id" json:"public_id"`
	URL        string    `bson:"-" json:"url,omitempty"`
	Caption    string    `bson:"caption,omitempty" json:"caption,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
