package models

import "time"

// RequestStatus is the closed set of service-request states. ACTIVE and
// PENDING both count as open; PENDING predates ACTIVE and survives in older
// documents.
type RequestStatus string

const (
	RequestActive   RequestStatus = "ACTIVE"
	RequestPending  RequestStatus = "PENDING"
	RequestAccepted RequestStatus = "ACCEPTED"
	RequestExpired  RequestStatus = "EXPIRED"
	RequestClosed   RequestStatus = "CLOSED"
)

// OpenRequestStatuses are the states in which a request is visible to
// eligible businesses.
var OpenRequestStatuses = []RequestStatus{RequestActive, RequestPending}

// Valid reports whether s is a known request status.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestActive, RequestPending, RequestAccepted, RequestExpired, RequestClosed:
		return true
	}
	return false
}

// UrgencyLevel orders requests for display; higher is more urgent. A closed
// int enum keeps the store's single-key descending sort well-defined.
type UrgencyLevel int

const (
	UrgencyLow    UrgencyLevel = 0
	UrgencyNormal UrgencyLevel = 1
	UrgencyHigh   UrgencyLevel = 2
	UrgencyUrgent UrgencyLevel = 3
)

// Valid reports whether u is a known urgency level.
func (u UrgencyLevel) Valid() bool {
	return u >= UrgencyLow && u <= UrgencyUrgent
}

// ServiceRequest is a customer-posted solicitation for an unscheduled
// service, open to competitive responses from multiple businesses.
type ServiceRequest struct {
	ID     string `bson:"id" json:"id"`
	UserID string `bson:"user_id,omitempty" json:"user_id,omitempty"`

	CustomerName  string `bson:"customer_name" json:"customer_name"`
	CustomerPhone string `bson:"customer_phone" json:"customer_phone"`
	CustomerEmail string `bson:"customer_email,omitempty" json:"customer_email,omitempty"`

	ServiceName string `bson:"service_name" json:"service_name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`

	Province string `bson:"province" json:"province"`
	District string `bson:"district,omitempty" json:"district,omitempty"`

	CategoryID    string `bson:"category_id,omitempty" json:"category_id,omitempty"`
	SubcategoryID string `bson:"subcategory_id,omitempty" json:"subcategory_id,omitempty"`

	Urgency UrgencyLevel  `bson:"urgency" json:"urgency"`
	Status  RequestStatus `bson:"status" json:"status"`

	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ResponseStatus is the closed set of response states. Exactly one response
// per request may become ACCEPTED; its siblings are REJECTED in the same
// transaction.
type ResponseStatus string

const (
	ResponsePending  ResponseStatus = "PENDING"
	ResponseAccepted ResponseStatus = "ACCEPTED"
	ResponseRejected ResponseStatus = "REJECTED"
)

// Valid reports whether s is a known response status.
func (s ResponseStatus) Valid() bool {
	switch s {
	case ResponsePending, ResponseAccepted, ResponseRejected:
		return true
	}
	return false
}

// ServiceRequestResponse is a business's offer against a service request.
type ServiceRequestResponse struct {
	ID               string `bson:"id" json:"id"`
	ServiceRequestID string `bson:"service_request_id" json:"service_request_id"`
	BusinessID       string `bson:"business_id" json:"business_id"`

	Status        ResponseStatus `bson:"status" json:"status"`
	Message       string         `bson:"message,omitempty" json:"message,omitempty"`
	ProposedPrice float64        `bson:"proposed_price,omitempty" json:"proposed_price,omitempty"`
	ProposedDate  string         `bson:"proposed_date,omitempty" json:"proposed_date,omitempty"` // "YYYY-MM-DD"
	ProposedTime  string         `bson:"proposed_time,omitempty" json:"proposed_time,omitempty"` // "HH:MM"

	CustomerViewed bool `bson:"customer_viewed" json:"customer_viewed"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// RequestWithResponses pairs a request with its responses for display.
type RequestWithResponses struct {
	Request   ServiceRequest           `json:"request"`
	Responses []ServiceRequestResponse `json:"responses"`
}
