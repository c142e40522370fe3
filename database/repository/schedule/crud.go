package scheduleRepo

import (
	"fmt"
	"time"

	"lumiere/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new weekly availability document.
func (r *MongoScheduleRepo) Create(av *models.WeeklyAvailability) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	av.CreatedAt = now
	av.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, av)
	if err != nil {
		return fmt.Errorf("failed to create weekly availability: %w", err)
	}
	return nil
}

// Update modifies an existing weekly availability document.
func (r *MongoScheduleRepo) Update(av *models.WeeklyAvailability) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	av.UpdatedAt = time.Now()
	filter := bson.M{"id": av.ID}
	update := bson.M{"$set": av}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update weekly availability with id %s: %w", av.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("weekly availability with id %s not found", av.ID)
	}
	return nil
}

// Delete removes a weekly availability document by its ID.
func (r *MongoScheduleRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete weekly availability with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("weekly availability with id %s not found", id)
	}
	return nil
}
