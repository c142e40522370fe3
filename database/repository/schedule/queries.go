package scheduleRepo

import (
	"fmt"
	"time"

	"lumiere/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetByID retrieves a weekly availability window by its ID.
func (r *MongoScheduleRepo) GetByID(id string) (*models.WeeklyAvailability, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var av models.WeeklyAvailability
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&av); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch weekly availability with id %s: %w", id, err)
	}
	return &av, nil
}

// GetByEmployee retrieves all windows declared by one employee.
func (r *MongoScheduleRepo) GetByEmployee(employeeID string) ([]models.WeeklyAvailability, error) {
	return r.find(bson.M{"employeeId": employeeID})
}

// GetByDayOfWeek retrieves windows for a weekday, optionally for one employee.
func (r *MongoScheduleRepo) GetByDayOfWeek(dayOfWeek int, employeeID string) ([]models.WeeklyAvailability, error) {
	filter := bson.M{"dayOfWeek": dayOfWeek}
	if employeeID != "" {
		filter["employeeId"] = employeeID
	}
	return r.find(filter)
}

func (r *MongoScheduleRepo) find(filter bson.M) ([]models.WeeklyAvailability, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve weekly availability: %w", err)
	}
	defer cursor.Close(ctx)

	var windows []models.WeeklyAvailability
	for cursor.Next(ctx) {
		var av models.WeeklyAvailability
		if err := cursor.Decode(&av); err != nil {
			return nil, fmt.Errorf("failed to decode weekly availability: %w", err)
		}
		windows = append(windows, av)
	}
	return windows, nil
}
