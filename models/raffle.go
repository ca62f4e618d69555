package models

import "time"

// RaffleDraw records one monthly customer raffle for a business. Entries is
// the number of distinct customers with a completed appointment that month.
type RaffleDraw struct {
	ID          string    `bson:"id" json:"id"`
	BusinessID  string    `bson:"business_id" json:"business_id"`
	Month       string    `bson:"month" json:"month"` // "YYYY-MM"
	WinnerName  string    `bson:"winner_name" json:"winner_name"`
	WinnerPhone string    `bson:"winner_phone" json:"winner_phone"`
	Entries     int       `bson:"entries" json:"entries"`
	DrawnAt     time.Time `bson:"drawn_at" json:"drawn_at"`
}

// RaffleEntry identifies a distinct customer eligible for a draw.
type RaffleEntry struct {
	Name  string `bson:"name" json:"name"`
	Phone string `bson:"phone" json:"phone"`
}
