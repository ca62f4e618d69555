package requestRepo

import (
	"regexp"
	"time"

	"randevio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivePoolCriteria describes which open requests a business is eligible to
// see. Category conditions (structured IDs and legacy keyword substrings) are
// independent and combined with OR; when none is present the category filter
// is omitted entirely rather than matching nothing. Location fields narrow
// with AND, each applied only when set.
type ActivePoolCriteria struct {
	CategoryID    string
	SubcategoryID string
	Keywords      []string // legacy-category substrings, matched case-insensitively against service_name
	Province      string
	District      string
	ExcludeIDs    []string // requests the business has already responded to
	Now           time.Time
}

// Filter builds the store filter for the criteria. A request matches when it
// is open, unexpired (strictly expires_at > now, so a request expiring at
// "now" is already out), not excluded, inside the business's location when
// one is set, and satisfies at least one category condition if any exist.
func (c ActivePoolCriteria) Filter() bson.M {
	filter := bson.M{
		"status":     bson.M{"$in": models.OpenRequestStatuses},
		"expires_at": bson.M{"$gt": c.Now},
	}

	var categoryConds []bson.M
	if c.CategoryID != "" {
		cond := bson.M{"category_id": c.CategoryID}
		if c.SubcategoryID != "" {
			cond["subcategory_id"] = c.SubcategoryID
		}
		categoryConds = append(categoryConds, cond)
	}
	for _, keyword := range c.Keywords {
		categoryConds = append(categoryConds, bson.M{
			"service_name": primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"},
		})
	}
	if len(categoryConds) > 0 {
		filter["$or"] = categoryConds
	}

	if c.Province != "" {
		filter["province"] = c.Province
	}
	if c.District != "" {
		filter["district"] = c.District
	}

	if len(c.ExcludeIDs) > 0 {
		filter["id"] = bson.M{"$nin": c.ExcludeIDs}
	}

	return filter
}
