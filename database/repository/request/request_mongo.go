package requestRepo

import (
	"context"
	"fmt"
	"time"

	"randevio/database"
	"randevio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRequestRepo implements RequestRepository using MongoDB, over the
// service_requests and service_request_responses collections.
type MongoRequestRepo struct {
	requests  *mongo.Collection
	responses *mongo.Collection
}

// NewMongoRequestRepo creates a new instance of RequestRepository using MongoDB.
func NewMongoRequestRepo() RequestRepository {
	repo := &MongoRequestRepo{
		requests:  database.Collection("service_requests"),
		responses: database.Collection("service_request_responses"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create request indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// poolSort is the defined result ordering: urgency descending, then recency.
var poolSort = bson.D{{Key: "urgency", Value: -1}, {Key: "created_at", Value: -1}}

func (r *MongoRequestRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	requestIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "expires_at", Value: 1}}},
		{Keys: bson.D{{Key: "category_id", Value: 1}}},
		{Keys: bson.D{{Key: "province", Value: 1}, {Key: "district", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}
	if _, err := r.requests.Indexes().CreateMany(ctx, requestIndexes); err != nil {
		return fmt.Errorf("failed to create request indexes: %w", err)
	}

	responseIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		// One response per business per request.
		{
			Keys:    bson.D{{Key: "service_request_id", Value: 1}, {Key: "business_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "business_id", Value: 1}, {Key: "status", Value: 1}}},
	}
	if _, err := r.responses.Indexes().CreateMany(ctx, responseIndexes); err != nil {
		return fmt.Errorf("failed to create response indexes: %w", err)
	}
	return nil
}

func (r *MongoRequestRepo) CreateRequest(request *models.ServiceRequest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.requests.InsertOne(ctx, request); err != nil {
		return fmt.Errorf("failed to insert service request: %w", err)
	}
	return nil
}

func (r *MongoRequestRepo) GetRequestByID(id string) (*models.ServiceRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var request models.ServiceRequest
	if err := r.requests.FindOne(ctx, bson.M{"id": id}).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service request %s: %w", id, err)
	}
	return &request, nil
}

func (r *MongoRequestRepo) ListByUser(userID string) ([]models.ServiceRequest, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.requests.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var requests []models.ServiceRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode service requests: %w", err)
	}
	return requests, nil
}

func (r *MongoRequestRepo) FindActivePool(criteria ActivePoolCriteria, page, limit int) ([]models.ServiceRequest, int64, error) {
	return r.findPage(criteria.Filter(), page, limit)
}

func (r *MongoRequestRepo) ListByIDs(ids []string, page, limit int) ([]models.ServiceRequest, int64, error) {
	if len(ids) == 0 {
		return []models.ServiceRequest{}, 0, nil
	}
	return r.findPage(bson.M{"id": bson.M{"$in": ids}}, page, limit)
}

func (r *MongoRequestRepo) findPage(filter bson.M, page, limit int) ([]models.ServiceRequest, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	total, err := r.requests.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count service requests: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	opts := options.Find().
		SetSort(poolSort).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.requests.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find service requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.ServiceRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, 0, fmt.Errorf("failed to decode service requests: %w", err)
	}
	return requests, total, nil
}

func (r *MongoRequestRepo) UpdateRequestStatus(id string, status models.RequestStatus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	res, err := r.requests.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update request %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("request %s not found", id)
	}
	return nil
}

func (r *MongoRequestRepo) ExpireOpen(now time.Time) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"status":     bson.M{"$in": models.OpenRequestStatuses},
		"expires_at": bson.M{"$lte": now},
	}
	update := bson.M{"$set": bson.M{"status": models.RequestExpired, "updated_at": now}}
	res, err := r.requests.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to expire open requests: %w", err)
	}
	return res.ModifiedCount, nil
}
