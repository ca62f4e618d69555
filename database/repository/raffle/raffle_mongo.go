package raffleRepo

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

// RaffleRepository defines methods for raffle-draw data access.
type RaffleRepository interface {
	Create(draw *models.RaffleDraw) error
	// ExistsForMonth reports whether a business already has a draw for a month ("YYYY-MM").
	ExistsForMonth(businessID, month string) (bool, error)
	// ListByBusiness retrieves a business's draws, newest first.
	ListByBusiness(businessID string) ([]models.RaffleDraw, error)
}

// MongoRaffleRepo implements RaffleRepository using MongoDB.
type MongoRaffleRepo struct {
	coll *mongo.Collection
}

// NewMongoRaffleRepo creates a new instance of RaffleRepository using MongoDB.
func NewMongoRaffleRepo() RaffleRepository {
	coll := database.Collection("raffle_draws")
	repo := &MongoRaffleRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create raffle indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoRaffleRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		// One draw per business per month.
		{
			Keys:    bson.D{{Key: "business_id", Value: 1}, {Key: "month", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoRaffleRepo) Create(draw *models.RaffleDraw) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, draw); err != nil {
		return fmt.Errorf("failed to insert raffle draw: %w", err)
	}
	return nil
}

func (r *MongoRaffleRepo) ExistsForMonth(businessID, month string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"business_id": businessID, "month": month}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to count raffle draws: %w", err)
	}
	return count > 0, nil
}

func (r *MongoRaffleRepo) ListByBusiness(businessID string) ([]models.RaffleDraw, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "drawn_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"business_id": businessID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list raffle draws: %w", err)
	}
	defer cursor.Close(ctx)

	var draws []models.RaffleDraw
	if err := cursor.All(ctx, &draws); err != nil {
		return nil, fmt.Errorf("failed to decode raffle draws: %w", err)
	}
	return draws, nil
}
