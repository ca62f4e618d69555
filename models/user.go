package models

import "time"

// User roles.
const (
	RoleCustomer = "customer"
	RoleOwner    = "owner"
	RoleAdmin    = "admin"
)

// User represents an account on the platform. Owners additionally have a
// Business document referencing them.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash string    `bson:"password_hash,omitempty" json:"-"`
	Role         string    `bson:"role" json:"role"`
	FCMToken     string    `bson:"fcm_token,omitempty" json:"-"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// ValidRole reports whether s is a known role.
func ValidRole(s string) bool {
	switch s {
	case RoleCustomer, RoleOwner, RoleAdmin:
		return true
	}
	return false
}
