package requests

import (
	"context"
	"fmt"
	"time"

	requestRepo "randevio/database/repository/request"
	"randevio/models"
	"randevio/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultRequestTTL is how long a new request stays open when the customer
// does not pick an expiry.
const DefaultRequestTTL = 7 * 24 * time.Hour

// RequestService defines business logic for service requests and offers.
type RequestService interface {
	// CreateRequest validates and persists a new customer request.
	CreateRequest(request models.ServiceRequest) (*models.ServiceRequest, error)
	// ListMine retrieves a customer's requests with their responses attached.
	ListMine(userID string) ([]models.RequestWithResponses, error)
	// MatchPool returns the business-side request listing for a view mode.
	MatchPool(business *models.Business, mode string, page, limit int) (*PoolPage, error)
	// Respond records a business's offer against an open request.
	Respond(business *models.Business, requestID string, response models.ServiceRequestResponse) (*models.ServiceRequestResponse, error)
	// Accept marks one response accepted on behalf of the requesting
	// customer; every sibling offer is rejected in the same transaction.
	Accept(userID, requestID, responseID string) error
	// ViewResponses returns a request's responses and marks them seen.
	ViewResponses(userID, requestID string) ([]models.ServiceRequestResponse, error)
}

// DefaultRequestService is the production implementation.
type DefaultRequestService struct {
	Repo     requestRepo.RequestRepository
	Keywords KeywordTable
}

func (s *DefaultRequestService) CreateRequest(request models.ServiceRequest) (*models.ServiceRequest, error) {
	if request.ServiceName == "" {
		return nil, fmt.Errorf("service name is required")
	}
	if request.CustomerName == "" || request.CustomerPhone == "" {
		return nil, fmt.Errorf("customer name and phone are required")
	}
	if request.Province == "" {
		return nil, fmt.Errorf("province is required")
	}
	if !request.Urgency.Valid() {
		request.Urgency = models.UrgencyNormal
	}

	now := time.Now()
	request.ID = uuid.New().String()
	request.Status = models.RequestActive
	if request.ExpiresAt.IsZero() || !request.ExpiresAt.After(now) {
		request.ExpiresAt = now.Add(DefaultRequestTTL)
	}
	request.CreatedAt = now
	request.UpdatedAt = now

	if err := s.Repo.CreateRequest(&request); err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	utils.GetLogger().Info("service request created",
		zap.String("requestID", request.ID),
		zap.String("province", request.Province),
		zap.Int("urgency", int(request.Urgency)))
	return &request, nil
}

func (s *DefaultRequestService) ListMine(userID string) ([]models.RequestWithResponses, error) {
	requests, err := s.Repo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	ids := make([]string, 0, len(requests))
	for _, req := range requests {
		ids = append(ids, req.ID)
	}
	responses, err := s.Repo.ResponsesForRequests(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load responses: %w", err)
	}

	out := make([]models.RequestWithResponses, 0, len(requests))
	for _, req := range requests {
		out = append(out, models.RequestWithResponses{
			Request:   req,
			Responses: responses[req.ID],
		})
	}
	return out, nil
}

func (s *DefaultRequestService) Respond(business *models.Business, requestID string, response models.ServiceRequestResponse) (*models.ServiceRequestResponse, error) {
	request, err := s.Repo.GetRequestByID(requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch request: %w", err)
	}
	if request == nil {
		return nil, fmt.Errorf("request %s not found", requestID)
	}
	if !isOpen(request.Status) || !request.ExpiresAt.After(time.Now()) {
		return nil, fmt.Errorf("request %s is no longer open", requestID)
	}

	exists, err := s.Repo.HasResponse(requestID, business.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing response: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("business has already responded to request %s", requestID)
	}

	now := time.Now()
	response.ID = uuid.New().String()
	response.ServiceRequestID = requestID
	response.BusinessID = business.ID
	response.Status = models.ResponsePending
	response.CustomerViewed = false
	response.CreatedAt = now
	response.UpdatedAt = now

	if err := s.Repo.CreateResponse(&response); err != nil {
		return nil, fmt.Errorf("failed to create response: %w", err)
	}
	utils.GetLogger().Info("request response created",
		zap.String("requestID", requestID),
		zap.String("businessID", business.ID))
	return &response, nil
}

func (s *DefaultRequestService) Accept(userID, requestID, responseID string) error {
	request, err := s.Repo.GetRequestByID(requestID)
	if err != nil {
		return fmt.Errorf("failed to fetch request: %w", err)
	}
	if request == nil {
		return fmt.Errorf("request %s not found", requestID)
	}
	if request.UserID != "" && request.UserID != userID {
		return fmt.Errorf("request %s does not belong to this user", requestID)
	}
	if !isOpen(request.Status) {
		return fmt.Errorf("request %s is no longer open", requestID)
	}

	if err := s.Repo.AcceptResponse(context.Background(), requestID, responseID); err != nil {
		return fmt.Errorf("failed to accept response: %w", err)
	}
	utils.GetLogger().Info("request response accepted",
		zap.String("requestID", requestID),
		zap.String("responseID", responseID))
	return nil
}

func (s *DefaultRequestService) ViewResponses(userID, requestID string) ([]models.ServiceRequestResponse, error) {
	request, err := s.Repo.GetRequestByID(requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch request: %w", err)
	}
	if request == nil {
		return nil, fmt.Errorf("request %s not found", requestID)
	}
	if request.UserID != "" && request.UserID != userID {
		return nil, fmt.Errorf("request %s does not belong to this user", requestID)
	}

	responses, err := s.Repo.ResponsesForRequest(requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to load responses: %w", err)
	}
	if err := s.Repo.MarkResponsesViewed(requestID); err != nil {
		utils.GetLogger().Warn("failed to mark responses viewed",
			zap.String("requestID", requestID), zap.Error(err))
	}
	return responses, nil
}

func isOpen(status models.RequestStatus) bool {
	for _, open := range models.OpenRequestStatuses {
		if status == open {
			return true
		}
	}
	return false
}
