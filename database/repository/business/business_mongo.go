package businessRepo

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

// MongoBusinessRepo implements BusinessRepository using MongoDB.
type MongoBusinessRepo struct {
	coll *mongo.Collection
}

// NewMongoBusinessRepo creates a new instance of BusinessRepository using MongoDB.
func NewMongoBusinessRepo() BusinessRepository {
	coll := database.Collection("businesses")
	repo := &MongoBusinessRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create business indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBusinessRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category_id", Value: 1}}},
		{Keys: bson.D{{Key: "province", Value: 1}, {Key: "district", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoBusinessRepo) Create(business *models.Business) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, business); err != nil {
		return fmt.Errorf("failed to insert business: %w", err)
	}
	return nil
}

func (r *MongoBusinessRepo) GetByID(id string) (*models.Business, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var business models.Business
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&business); err != nil {
		return nil, fmt.Errorf("failed to fetch business with id %s: %w", id, err)
	}
	return &business, nil
}

func (r *MongoBusinessRepo) GetByOwnerID(ownerID string) (*models.Business, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var business models.Business
	if err := r.coll.FindOne(ctx, bson.M{"owner_id": ownerID}).Decode(&business); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch business for owner %s: %w", ownerID, err)
	}
	return &business, nil
}

func (r *MongoBusinessRepo) GetBySlug(slug string) (*models.Business, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var business models.Business
	filter := bson.M{"slug": slug, "is_active": true}
	if err := r.coll.FindOne(ctx, filter).Decode(&business); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch business with slug %s: %w", slug, err)
	}
	return &business, nil
}

func (r *MongoBusinessRepo) SlugExists(slug string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"slug": slug})
	if err != nil {
		return false, fmt.Errorf("failed to count slug %s: %w", slug, err)
	}
	return count > 0, nil
}

func (r *MongoBusinessRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updated_at"] = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update business %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("business %s not found", id)
	}
	return nil
}

func (r *MongoBusinessRepo) SetWorkingHours(id string, hours []models.WorkingHour) error {
	return r.UpdateWithDocument(id, bson.M{"working_hours": hours})
}

func (r *MongoBusinessRepo) UpdateRating(id string, rating float64, count int) error {
	return r.UpdateWithDocument(id, bson.M{"rating": rating, "rating_count": count})
}

func (r *MongoBusinessRepo) ListActive() ([]models.Business, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to list active businesses: %w", err)
	}
	defer cursor.Close(ctx)

	var businesses []models.Business
	if err := cursor.All(ctx, &businesses); err != nil {
		return nil, fmt.Errorf("failed to decode businesses: %w", err)
	}
	return businesses, nil
}
