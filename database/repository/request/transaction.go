package requestRepo

import (
	"context"
	"fmt"
	"time"

	"randevio/database"
	"randevio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AcceptResponse atomically marks the chosen response ACCEPTED, every sibling
// response REJECTED, and the request itself ACCEPTED. All three writes commit
// or none do.
func (r *MongoRequestRepo) AcceptResponse(ctx context.Context, requestID, responseID string) error {
	session, err := database.MongoClient.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		now := time.Now()

		res, err := r.responses.UpdateOne(sc,
			bson.M{"id": responseID, "service_request_id": requestID},
			bson.M{"$set": bson.M{"status": models.ResponseAccepted, "updated_at": now}},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to accept response %s: %w", responseID, err)
		}
		if res.MatchedCount == 0 {
			return nil, fmt.Errorf("response %s not found for request %s", responseID, requestID)
		}

		if _, err := r.responses.UpdateMany(sc,
			bson.M{"service_request_id": requestID, "id": bson.M{"$ne": responseID}},
			bson.M{"$set": bson.M{"status": models.ResponseRejected, "updated_at": now}},
		); err != nil {
			return nil, fmt.Errorf("failed to reject sibling responses: %w", err)
		}

		if _, err := r.requests.UpdateOne(sc,
			bson.M{"id": requestID},
			bson.M{"$set": bson.M{"status": models.RequestAccepted, "updated_at": now}},
		); err != nil {
			return nil, fmt.Errorf("failed to close request %s: %w", requestID, err)
		}

		return nil, nil
	})
	return err
}
