package requests

import (
	"fmt"
	"time"

	requestRepo "randevio/database/repository/request"
	"randevio/models"
)

// View modes for a business's request listing.
const (
	ViewActive    = "active"    // open pool the business may still respond to
	ViewResponded = "responded" // requests the business has responded to
	ViewAccepted  = "accepted"  // requests where the business's response won
)

// RequestView is the business-facing projection of a request. The requester
// is identified by name only; phone and email stay with the customer until an
// offer is accepted.
type RequestView struct {
	ID            string               `json:"id"`
	CustomerName  string               `json:"customer_name"`
	ServiceName   string               `json:"service_name"`
	Description   string               `json:"description,omitempty"`
	Province      string               `json:"province"`
	District      string               `json:"district,omitempty"`
	CategoryID    string               `json:"category_id,omitempty"`
	SubcategoryID string               `json:"subcategory_id,omitempty"`
	Urgency       models.UrgencyLevel  `json:"urgency"`
	Status        models.RequestStatus `json:"status"`
	ExpiresAt     time.Time            `json:"expires_at"`
	CreatedAt     time.Time            `json:"created_at"`
}

// BusinessSummary is the resolved business context echoed with a listing so
// the client can render it without a second lookup.
type BusinessSummary struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	Category      string  `json:"category,omitempty"`
	CategoryID    string  `json:"category_id,omitempty"`
	SubcategoryID string  `json:"subcategory_id,omitempty"`
	Province      string  `json:"province,omitempty"`
	District      string  `json:"district,omitempty"`
	Rating        float64 `json:"rating"`
}

// PoolPage is one page of the matched request listing.
type PoolPage struct {
	Business   BusinessSummary                            `json:"business"`
	Requests   []RequestView                              `json:"serviceRequests"`
	Responses  map[string][]models.ServiceRequestResponse `json:"responses,omitempty"`
	Pagination models.Pagination                          `json:"pagination"`
}

func newRequestView(req models.ServiceRequest) RequestView {
	return RequestView{
		ID:            req.ID,
		CustomerName:  req.CustomerName,
		ServiceName:   req.ServiceName,
		Description:   req.Description,
		Province:      req.Province,
		District:      req.District,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		Urgency:       req.Urgency,
		Status:        req.Status,
		ExpiresAt:     req.ExpiresAt,
		CreatedAt:     req.CreatedAt,
	}
}

func newRequestViews(requests []models.ServiceRequest) []RequestView {
	views := make([]RequestView, 0, len(requests))
	for _, req := range requests {
		views = append(views, newRequestView(req))
	}
	return views
}

func summarizeBusiness(business *models.Business) BusinessSummary {
	return BusinessSummary{
		ID:            business.ID,
		Name:          business.Name,
		Slug:          business.Slug,
		Category:      business.Category,
		CategoryID:    business.CategoryID,
		SubcategoryID: business.SubcategoryID,
		Province:      business.Province,
		District:      business.District,
		Rating:        business.Rating,
	}
}

// MatchPool returns the request listing for a business in the given view
// mode. The active view widens by category (structured IDs OR legacy
// keywords) and narrows by status, expiry and the business's location; the
// responded and accepted views pivot on the business's own responses.
func (s *DefaultRequestService) MatchPool(business *models.Business, mode string, page, limit int) (*PoolPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	switch mode {
	case ViewActive, "":
		return s.activePool(business, page, limit)
	case ViewResponded:
		return s.respondedPool(business, "", page, limit)
	case ViewAccepted:
		return s.respondedPool(business, models.ResponseAccepted, page, limit)
	}
	return nil, fmt.Errorf("unknown view mode %q", mode)
}

func (s *DefaultRequestService) activePool(business *models.Business, page, limit int) (*PoolPage, error) {
	// Requests the business already answered leave its active pool.
	responded, err := s.Repo.RespondedRequestIDs(business.ID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load responded request ids: %w", err)
	}

	criteria := requestRepo.ActivePoolCriteria{
		CategoryID:    business.CategoryID,
		SubcategoryID: business.SubcategoryID,
		Keywords:      s.Keywords.KeywordsFor(business.Category),
		Province:      business.Province,
		District:      business.District,
		ExcludeIDs:    responded,
		Now:           time.Now(),
	}

	requests, total, err := s.Repo.FindActivePool(criteria, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query active pool: %w", err)
	}
	return &PoolPage{
		Business:   summarizeBusiness(business),
		Requests:   newRequestViews(requests),
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

func (s *DefaultRequestService) respondedPool(business *models.Business, status models.ResponseStatus, page, limit int) (*PoolPage, error) {
	ids, err := s.Repo.RespondedRequestIDs(business.ID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to load responded request ids: %w", err)
	}

	requests, total, err := s.Repo.ListByIDs(ids, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list responded requests: %w", err)
	}

	requestIDs := make([]string, 0, len(requests))
	for _, req := range requests {
		requestIDs = append(requestIDs, req.ID)
	}
	responses, err := s.Repo.ResponsesForRequests(requestIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load responses: %w", err)
	}
	// Only the business's own offers belong in its view.
	own := make(map[string][]models.ServiceRequestResponse, len(responses))
	for id, list := range responses {
		for _, resp := range list {
			if resp.BusinessID == business.ID {
				own[id] = append(own[id], resp)
			}
		}
	}

	return &PoolPage{
		Business:   summarizeBusiness(business),
		Requests:   newRequestViews(requests),
		Responses:  own,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}
