package requestRepo

import (
	"fmt"
	"time"

	"randevio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoRequestRepo) CreateResponse(response *models.ServiceRequestResponse) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.responses.InsertOne(ctx, response); err != nil {
		return fmt.Errorf("failed to insert response: %w", err)
	}
	return nil
}

func (r *MongoRequestRepo) ResponsesForRequest(requestID string) ([]models.ServiceRequestResponse, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.responses.Find(ctx, bson.M{"service_request_id": requestID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses for request %s: %w", requestID, err)
	}
	defer cursor.Close(ctx)

	var responses []models.ServiceRequestResponse
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, fmt.Errorf("failed to decode responses: %w", err)
	}
	return responses, nil
}

func (r *MongoRequestRepo) ResponsesForRequests(requestIDs []string) (map[string][]models.ServiceRequestResponse, error) {
	grouped := make(map[string][]models.ServiceRequestResponse, len(requestIDs))
	if len(requestIDs) == 0 {
		return grouped, nil
	}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"service_request_id": bson.M{"$in": requestIDs}}
	cursor, err := r.responses.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	defer cursor.Close(ctx)

	var responses []models.ServiceRequestResponse
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, fmt.Errorf("failed to decode responses: %w", err)
	}
	for _, response := range responses {
		grouped[response.ServiceRequestID] = append(grouped[response.ServiceRequestID], response)
	}
	return grouped, nil
}

func (r *MongoRequestRepo) RespondedRequestIDs(businessID string, status models.ResponseStatus) ([]string, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"business_id": businessID}
	if status != "" {
		filter["status"] = status
	}
	raw, err := r.responses.Distinct(ctx, "service_request_id", filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list responded request ids: %w", err)
	}

	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *MongoRequestRepo) HasResponse(requestID, businessID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"service_request_id": requestID, "business_id": businessID}
	count, err := r.responses.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to count responses: %w", err)
	}
	return count > 0, nil
}

func (r *MongoRequestRepo) MarkResponsesViewed(requestID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"service_request_id": requestID, "customer_viewed": false}
	update := bson.M{"$set": bson.M{"customer_viewed": true, "updated_at": time.Now()}}
	if _, err := r.responses.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to mark responses viewed: %w", err)
	}
	return nil
}
