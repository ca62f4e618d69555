package requests

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	requestRepo "randevio/database/repository/request"
	"randevio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo records the criteria the matcher builds and serves canned pages.
type fakeRepo struct {
	respondedIDs     []string
	respondedStatus  models.ResponseStatus
	poolCriteria     requestRepo.ActivePoolCriteria
	poolRequests     []models.ServiceRequest
	poolTotal        int64
	listedIDs        []string
	byIDRequests     []models.ServiceRequest
	byIDTotal        int64
	groupedResponses map[string][]models.ServiceRequestResponse
}

func (f *fakeRepo) CreateRequest(*models.ServiceRequest) error            { return nil }
func (f *fakeRepo) GetRequestByID(string) (*models.ServiceRequest, error) { return nil, nil }
func (f *fakeRepo) ListByUser(string) ([]models.ServiceRequest, error)    { return nil, nil }

func (f *fakeRepo) FindActivePool(criteria requestRepo.ActivePoolCriteria, page, limit int) ([]models.ServiceRequest, int64, error) {
	f.poolCriteria = criteria
	return f.poolRequests, f.poolTotal, nil
}

func (f *fakeRepo) ListByIDs(ids []string, page, limit int) ([]models.ServiceRequest, int64, error) {
	f.listedIDs = ids
	return f.byIDRequests, f.byIDTotal, nil
}

func (f *fakeRepo) UpdateRequestStatus(string, models.RequestStatus) error { return nil }
func (f *fakeRepo) ExpireOpen(time.Time) (int64, error)                    { return 0, nil }
func (f *fakeRepo) CreateResponse(*models.ServiceRequestResponse) error    { return nil }

func (f *fakeRepo) ResponsesForRequest(string) ([]models.ServiceRequestResponse, error) {
	return nil, nil
}

func (f *fakeRepo) ResponsesForRequests([]string) (map[string][]models.ServiceRequestResponse, error) {
	return f.groupedResponses, nil
}

func (f *fakeRepo) RespondedRequestIDs(businessID string, status models.ResponseStatus) ([]string, error) {
	f.respondedStatus = status
	return f.respondedIDs, nil
}

func (f *fakeRepo) HasResponse(string, string) (bool, error)            { return false, nil }
func (f *fakeRepo) AcceptResponse(context.Context, string, string) error { return nil }
func (f *fakeRepo) MarkResponsesViewed(string) error                     { return nil }

func newMatcher(repo *fakeRepo) *DefaultRequestService {
	return &DefaultRequestService{Repo: repo, Keywords: DefaultKeywordTable}
}

func TestMatchPool_ActiveExcludesRespondedRequests(t *testing.T) {
	repo := &fakeRepo{respondedIDs: []string{"req-1", "req-9"}}
	svc := newMatcher(repo)

	business := &models.Business{ID: "biz-1", Category: "BARBER", Province: "İstanbul"}
	_, err := svc.MatchPool(business, ViewActive, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"req-1", "req-9"}, repo.poolCriteria.ExcludeIDs)
	assert.Equal(t, models.ResponseStatus(""), repo.respondedStatus)
}

func TestMatchPool_ActiveBuildsCriteriaFromBusiness(t *testing.T) {
	repo := &fakeRepo{}
	svc := newMatcher(repo)

	business := &models.Business{
		ID:            "biz-1",
		Category:      "barber",
		CategoryID:    "cat-1",
		SubcategoryID: "sub-2",
		Province:      "İstanbul",
		District:      "Kadıköy",
	}
	_, err := svc.MatchPool(business, "", 1, 10)
	require.NoError(t, err)

	c := repo.poolCriteria
	assert.Equal(t, "cat-1", c.CategoryID)
	assert.Equal(t, "sub-2", c.SubcategoryID)
	assert.Equal(t, []string{"berber", "saç", "traş"}, c.Keywords)
	assert.Equal(t, "İstanbul", c.Province)
	assert.Equal(t, "Kadıköy", c.District)
	assert.WithinDuration(t, time.Now(), c.Now, time.Second)
}

func TestMatchPool_AcceptedFiltersByResponseStatus(t *testing.T) {
	repo := &fakeRepo{respondedIDs: []string{"req-3"}}
	svc := newMatcher(repo)

	_, err := svc.MatchPool(&models.Business{ID: "biz-1"}, ViewAccepted, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, models.ResponseAccepted, repo.respondedStatus)
	assert.Equal(t, []string{"req-3"}, repo.listedIDs)
}

func TestMatchPool_RespondedKeepsOnlyOwnOffers(t *testing.T) {
	repo := &fakeRepo{
		respondedIDs: []string{"req-3"},
		byIDRequests: []models.ServiceRequest{{ID: "req-3"}},
		byIDTotal:    1,
		groupedResponses: map[string][]models.ServiceRequestResponse{
			"req-3": {
				{ID: "resp-mine", BusinessID: "biz-1"},
				{ID: "resp-other", BusinessID: "biz-2"},
			},
		},
	}
	svc := newMatcher(repo)

	page, err := svc.MatchPool(&models.Business{ID: "biz-1"}, ViewResponded, 1, 10)
	require.NoError(t, err)

	require.Len(t, page.Responses["req-3"], 1)
	assert.Equal(t, "resp-mine", page.Responses["req-3"][0].ID)
}

func TestMatchPool_PaginationMath(t *testing.T) {
	repo := &fakeRepo{poolTotal: 25}
	svc := newMatcher(repo)

	page, err := svc.MatchPool(&models.Business{ID: "biz-1"}, ViewActive, 2, 10)
	require.NoError(t, err)

	assert.Equal(t, 2, page.Pagination.Page)
	assert.Equal(t, 10, page.Pagination.Limit)
	assert.Equal(t, int64(25), page.Pagination.Total)
	assert.Equal(t, 3, page.Pagination.Pages)
}

func TestMatchPool_ClampsPageAndLimit(t *testing.T) {
	repo := &fakeRepo{}
	svc := newMatcher(repo)

	page, err := svc.MatchPool(&models.Business{ID: "biz-1"}, ViewActive, 0, 500)
	require.NoError(t, err)

	assert.Equal(t, 1, page.Pagination.Page)
	assert.Equal(t, 10, page.Pagination.Limit)
}

func TestMatchPool_UnknownMode(t *testing.T) {
	svc := newMatcher(&fakeRepo{})

	_, err := svc.MatchPool(&models.Business{ID: "biz-1"}, "archived", 1, 10)
	assert.Error(t, err)
}

func TestMatchPool_PoolHidesCustomerContact(t *testing.T) {
	// Businesses browsing the pool see the requester by name only; phone and
	// email stay hidden until an offer is accepted.
	repo := &fakeRepo{
		poolRequests: []models.ServiceRequest{{
			ID:            "req-1",
			UserID:        "user-7",
			CustomerName:  "Ayşe",
			CustomerPhone: "+905551112233",
			CustomerEmail: "ayse@example.com",
			ServiceName:   "saç kesimi",
			Province:      "İstanbul",
		}},
		poolTotal: 1,
	}
	svc := newMatcher(repo)

	page, err := svc.MatchPool(&models.Business{ID: "biz-1"}, ViewActive, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Requests, 1)
	assert.Equal(t, "Ayşe", page.Requests[0].CustomerName)

	raw, err := json.Marshal(page)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "+905551112233")
	assert.NotContains(t, string(raw), "ayse@example.com")
	assert.NotContains(t, string(raw), "user-7")
}

func TestMatchPool_IncludesBusinessSummary(t *testing.T) {
	repo := &fakeRepo{}
	svc := newMatcher(repo)

	business := &models.Business{
		ID:       "biz-1",
		Name:     "Işık Berber",
		Slug:     "isik-berber",
		Category: "BARBER",
		Province: "İstanbul",
		Rating:   4.6,
	}
	page, err := svc.MatchPool(business, ViewActive, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, "biz-1", page.Business.ID)
	assert.Equal(t, "Işık Berber", page.Business.Name)
	assert.Equal(t, "isik-berber", page.Business.Slug)
	assert.Equal(t, 4.6, page.Business.Rating)
}

func TestKeywordsFor_UnknownCategory(t *testing.T) {
	assert.Nil(t, DefaultKeywordTable.KeywordsFor(""))
	assert.Nil(t, DefaultKeywordTable.KeywordsFor("SPACE TRAVEL"))
	assert.Equal(t, []string{"berber", "saç", "traş"}, DefaultKeywordTable.KeywordsFor(" Barber "))
}
