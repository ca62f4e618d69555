package requestRepo

import (
	"testing"
	"time"

	"randevio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestActivePoolFilter_Degenerate(t *testing.T) {
	// A business with no category fields and no location narrows nothing:
	// only the open-and-unexpired base filter remains.
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	filter := ActivePoolCriteria{Now: now}.Filter()

	assert.Equal(t, bson.M{"$in": models.OpenRequestStatuses}, filter["status"])
	assert.Equal(t, bson.M{"$gt": now}, filter["expires_at"])
	assert.NotContains(t, filter, "$or")
	assert.NotContains(t, filter, "province")
	assert.NotContains(t, filter, "district")
	assert.NotContains(t, filter, "id")
}

func TestActivePoolFilter_ExpiryIsStrict(t *testing.T) {
	// expires_at == now must be excluded, so the comparison is $gt, not $gte.
	now := time.Now()
	filter := ActivePoolCriteria{Now: now}.Filter()

	expiry, ok := filter["expires_at"].(bson.M)
	require.True(t, ok)
	_, hasGt := expiry["$gt"]
	assert.True(t, hasGt)
	assert.NotContains(t, expiry, "$gte")
}

func TestActivePoolFilter_StructuredCategory(t *testing.T) {
	filter := ActivePoolCriteria{
		CategoryID:    "cat-1",
		SubcategoryID: "sub-2",
		Now:           time.Now(),
	}.Filter()

	conds, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, conds, 1)
	assert.Equal(t, bson.M{"category_id": "cat-1", "subcategory_id": "sub-2"}, conds[0])
}

func TestActivePoolFilter_KeywordsAreCaseInsensitive(t *testing.T) {
	filter := ActivePoolCriteria{
		Keywords: []string{"berber", "saç"},
		Now:      time.Now(),
	}.Filter()

	conds, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, conds, 2)
	for i, want := range []string{"berber", "saç"} {
		re, ok := conds[i]["service_name"].(primitive.Regex)
		require.True(t, ok)
		assert.Equal(t, want, re.Pattern)
		assert.Equal(t, "i", re.Options)
	}
}

func TestActivePoolFilter_StructuredAndKeywordsCombineWithOr(t *testing.T) {
	filter := ActivePoolCriteria{
		CategoryID: "cat-1",
		Keywords:   []string{"berber"},
		Now:        time.Now(),
	}.Filter()

	conds, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	assert.Len(t, conds, 2)
}

func TestActivePoolFilter_LocationAppliedOnlyWhenSet(t *testing.T) {
	filter := ActivePoolCriteria{
		Province: "İstanbul",
		Now:      time.Now(),
	}.Filter()

	assert.Equal(t, "İstanbul", filter["province"])
	assert.NotContains(t, filter, "district")
}

func TestActivePoolFilter_ExcludesRespondedRequests(t *testing.T) {
	filter := ActivePoolCriteria{
		ExcludeIDs: []string{"req-1", "req-2"},
		Now:        time.Now(),
	}.Filter()

	assert.Equal(t, bson.M{"$nin": []string{"req-1", "req-2"}}, filter["id"])
}
