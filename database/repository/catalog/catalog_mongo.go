package catalogRepo

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

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func ensureIndexes(coll *mongo.Collection) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "business_id", Value: 1}}},
	}
	if _, err := coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo creates a new instance of ServiceRepository using MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	coll := database.Collection("services")
	if err := ensureIndexes(coll); err != nil {
		fmt.Printf("failed to create service indexes: %v\n", err)
	}
	return &MongoServiceRepo{coll: coll}
}

func (r *MongoServiceRepo) Create(service *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, service); err != nil {
		return fmt.Errorf("failed to insert service: %w", err)
	}
	return nil
}

func (r *MongoServiceRepo) GetByID(businessID, id string) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var service models.Service
	filter := bson.M{"id": id, "business_id": businessID}
	if err := r.coll.FindOne(ctx, filter).Decode(&service); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service %s: %w", id, err)
	}
	return &service, nil
}

func (r *MongoServiceRepo) ListByBusiness(businessID string, activeOnly bool) ([]models.Service, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"business_id": businessID}
	if activeOnly {
		filter["is_active"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

func (r *MongoServiceRepo) Update(service *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	service.UpdatedAt = time.Now()
	filter := bson.M{"id": service.ID, "business_id": service.BusinessID}
	res, err := r.coll.ReplaceOne(ctx, filter, service)
	if err != nil {
		return fmt.Errorf("failed to update service %s: %w", service.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("service %s not found", service.ID)
	}
	return nil
}

func (r *MongoServiceRepo) Delete(businessID, id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "business_id": businessID})
	if err != nil {
		return fmt.Errorf("failed to delete service %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("service %s not found", id)
	}
	return nil
}

// MongoStaffRepo implements StaffRepository using MongoDB.
type MongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo creates a new instance of StaffRepository using MongoDB.
func NewMongoStaffRepo() StaffRepository {
	coll := database.Collection("staff")
	if err := ensureIndexes(coll); err != nil {
		fmt.Printf("failed to create staff indexes: %v\n", err)
	}
	return &MongoStaffRepo{coll: coll}
}

func (r *MongoStaffRepo) Create(staff *models.Staff) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, staff); err != nil {
		return fmt.Errorf("failed to insert staff: %w", err)
	}
	return nil
}

func (r *MongoStaffRepo) GetByID(businessID, id string) (*models.Staff, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var staff models.Staff
	filter := bson.M{"id": id, "business_id": businessID}
	if err := r.coll.FindOne(ctx, filter).Decode(&staff); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch staff %s: %w", id, err)
	}
	return &staff, nil
}

func (r *MongoStaffRepo) ListByBusiness(businessID string, activeOnly bool) ([]models.Staff, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"business_id": businessID}
	if activeOnly {
		filter["is_active"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer cursor.Close(ctx)

	var staff []models.Staff
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, fmt.Errorf("failed to decode staff: %w", err)
	}
	return staff, nil
}

func (r *MongoStaffRepo) Update(staff *models.Staff) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	staff.UpdatedAt = time.Now()
	filter := bson.M{"id": staff.ID, "business_id": staff.BusinessID}
	res, err := r.coll.ReplaceOne(ctx, filter, staff)
	if err != nil {
		return fmt.Errorf("failed to update staff %s: %w", staff.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("staff %s not found", staff.ID)
	}
	return nil
}

func (r *MongoStaffRepo) Delete(businessID, id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "business_id": businessID})
	if err != nil {
		return fmt.Errorf("failed to delete staff %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("staff %s not found", id)
	}
	return nil
}
