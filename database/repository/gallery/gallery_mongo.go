package galleryRepo

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

// GalleryRepository defines methods for gallery data access.
type GalleryRepository interface {
	Create(image *models.GalleryImage) error
	GetByID(businessID, id string) (*models.GalleryImage, error)
	ListByBusiness(businessID string) ([]models.GalleryImage, error)
	Delete(businessID, id string) error
}

// MongoGalleryRepo implements GalleryRepository using MongoDB.
type MongoGalleryRepo struct {
	coll *mongo.Collection
}

// NewMongoGalleryRepo creates a new instance of GalleryRepository using MongoDB.
func NewMongoGalleryRepo() GalleryRepository {
	coll := database.Collection("gallery_images")
	repo := &MongoGalleryRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create gallery indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoGalleryRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "business_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoGalleryRepo) Create(image *models.GalleryImage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, image); err != nil {
		return fmt.Errorf("failed to insert gallery image: %w", err)
	}
	return nil
}

func (r *MongoGalleryRepo) GetByID(businessID, id string) (*models.GalleryImage, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var image models.GalleryImage
	filter := bson.M{"id": id, "business_id": businessID}
	if err := r.coll.FindOne(ctx, filter).Decode(&image); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch gallery image %s: %w", id, err)
	}
	return &image, nil
}

func (r *MongoGalleryRepo) ListByBusiness(businessID string) ([]models.GalleryImage, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"business_id": businessID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery images: %w", err)
	}
	defer cursor.Close(ctx)

	var images []models.GalleryImage
	if err := cursor.All(ctx, &images); err != nil {
		return nil, fmt.Errorf("failed to decode gallery images: %w", err)
	}
	return images, nil
}

func (r *MongoGalleryRepo) Delete(businessID, id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "business_id": businessID})
	if err != nil {
		return fmt.Errorf("failed to delete gallery image %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("gallery image %s not found", id)
	}
	return nil
}
