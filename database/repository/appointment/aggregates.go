package appointmentRepo

import (
	"fmt"
	"time"

	"randevio/models"

	"go.mongodb.org/mongo-driver/bson"
)

// DayStats computes the dashboard counters for one day in a single
// aggregation pass: total appointments, revenue over completed ones,
// distinct customers by phone, and completed count.
func (r *MongoAppointmentRepo) DayStats(businessID string, dayStart, dayEnd time.Time) (models.DayStats, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{
			"business_id": businessID,
			"date":        bson.M{"$gte": dayStart, "$lte": dayEnd},
		}},
		{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": 1},
			"completed": bson.M{"$sum": bson.M{
				"$cond": bson.A{
					bson.M{"$eq": bson.A{"$status", models.AppointmentCompleted}},
					1, 0,
				},
			}},
			"revenue": bson.M{"$sum": bson.M{
				"$cond": bson.A{
					bson.M{"$eq": bson.A{"$status", models.AppointmentCompleted}},
					"$price", 0,
				},
			}},
			"customers": bson.M{"$addToSet": "$customer_phone"},
		}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return models.DayStats{}, fmt.Errorf("failed to aggregate day stats: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Total     int      `bson:"total"`
		Completed int      `bson:"completed"`
		Revenue   float64  `bson:"revenue"`
		Customers []string `bson:"customers"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return models.DayStats{}, fmt.Errorf("failed to decode day stats: %w", err)
	}
	if len(rows) == 0 {
		return models.DayStats{}, nil
	}

	row := rows[0]
	stats := models.DayStats{
		Appointments: row.Total,
		Revenue:      row.Revenue,
		Customers:    len(row.Customers),
		Completed:    row.Completed,
	}
	if row.Total > 0 {
		stats.CompletionRate = float64(row.Completed) / float64(row.Total) * 100
	}
	return stats, nil
}

// DistinctCompletedCustomers lists distinct customers (by phone) with a
// COMPLETED appointment in [from, to). The first seen name per phone wins.
func (r *MongoAppointmentRepo) DistinctCompletedCustomers(businessID string, from, to time.Time) ([]models.RaffleEntry, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{
			"business_id": businessID,
			"status":      models.AppointmentCompleted,
			"date":        bson.M{"$gte": from, "$lt": to},
		}},
		{"$group": bson.M{
			"_id":  "$customer_phone",
			"name": bson.M{"$first": "$customer_name"},
		}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate raffle entries: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Phone string `bson:"_id"`
		Name  string `bson:"name"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode raffle entries: %w", err)
	}

	entries := make([]models.RaffleEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.RaffleEntry{Name: row.Name, Phone: row.Phone})
	}
	return entries, nil
}
