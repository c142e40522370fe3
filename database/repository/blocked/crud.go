package blockedRepo

import (
	"fmt"
	"time"

	"lumiere/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new blocked interval document.
func (r *MongoBlockedRepo) Create(b *models.BlockedInterval) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	b.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, b)
	if err != nil {
		return fmt.Errorf("failed to create blocked interval: %w", err)
	}
	return nil
}

// Delete removes a blocked interval document by its ID.
func (r *MongoBlockedRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete blocked interval with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("blocked interval with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a blocked interval by its ID.
func (r *MongoBlockedRepo) GetByID(id string) (*models.BlockedInterval, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var b models.BlockedInterval
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch blocked interval with id %s: %w", id, err)
	}
	return &b, nil
}

// GetByDate retrieves blocked segments on one date, optionally for one employee.
func (r *MongoBlockedRepo) GetByDate(date, employeeID string) ([]models.BlockedInterval, error) {
	filter := bson.M{"date": date}
	if employeeID != "" {
		filter["employeeId"] = employeeID
	}
	return r.find(filter)
}

// GetByEmployee retrieves all blocked segments for one employee.
func (r *MongoBlockedRepo) GetByEmployee(employeeID string) ([]models.BlockedInterval, error) {
	return r.find(bson.M{"employeeId": employeeID})
}

// ExistsExact reports whether an identical segment is already stored.
func (r *MongoBlockedRepo) ExistsExact(employeeID, date, startTime, endTime string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"employeeId": employeeID,
		"date":       date,
		"startTime":  startTime,
		"endTime":    endTime,
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check blocked interval existence: %w", err)
	}
	return count > 0, nil
}

func (r *MongoBlockedRepo) find(filter bson.M) ([]models.BlockedInterval, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve blocked intervals: %w", err)
	}
	defer cursor.Close(ctx)

	var segments []models.BlockedInterval
	for cursor.Next(ctx) {
		var b models.BlockedInterval
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode blocked interval: %w", err)
		}
		segments = append(segments, b)
	}
	return segments, nil
}
