package requestRepo

import (
	"context"
	"time"

	"randevio/models"
)

// RequestRepository defines methods for service-request data access.
type RequestRepository interface {
	// CreateRequest inserts a new service request.
	CreateRequest(request *models.ServiceRequest) error
	// GetRequestByID retrieves a request; returns nil when absent.
	GetRequestByID(id string) (*models.ServiceRequest, error)
	// ListByUser retrieves a customer's own requests, newest first.
	ListByUser(userID string) ([]models.ServiceRequest, error)
	// FindActivePool retrieves a page of the active pool for the given
	// criteria, ordered by urgency descending then creation time descending,
	// with the total count.
	FindActivePool(criteria ActivePoolCriteria, page, limit int) ([]models.ServiceRequest, int64, error)
	// ListByIDs retrieves a page of requests by ID, same ordering as the pool.
	ListByIDs(ids []string, page, limit int) ([]models.ServiceRequest, int64, error)
	// UpdateRequestStatus sets the status of a request.
	UpdateRequestStatus(id string, status models.RequestStatus) error
	// ExpireOpen marks open requests whose expiry has passed as EXPIRED and
	// returns how many were updated.
	ExpireOpen(now time.Time) (int64, error)

	// CreateResponse inserts a business's offer against a request.
	CreateResponse(response *models.ServiceRequestResponse) error
	// ResponsesForRequest retrieves all responses to a request, newest first.
	ResponsesForRequest(requestID string) ([]models.ServiceRequestResponse, error)
	// ResponsesForRequests retrieves responses for many requests, grouped by request ID.
	ResponsesForRequests(requestIDs []string) (map[string][]models.ServiceRequestResponse, error)
	// RespondedRequestIDs lists the IDs of requests a business has responded
	// to, optionally restricted to one response status.
	RespondedRequestIDs(businessID string, status models.ResponseStatus) ([]string, error)
	// HasResponse reports whether a business has already responded to a request.
	HasResponse(requestID, businessID string) (bool, error)
	// AcceptResponse atomically marks one response ACCEPTED, its siblings
	// REJECTED, and the request ACCEPTED.
	AcceptResponse(ctx context.Context, requestID, responseID string) error
	// MarkResponsesViewed flags all responses to a request as seen by the customer.
	MarkResponsesViewed(requestID string) error
}
