package appointmentRepo

import (
	"fmt"
	"time"

	"lumiere/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAcceptedByDate retrieves all accepted appointments on one date.
func (r *MongoAppointmentRepo) GetAcceptedByDate(date string) ([]models.Appointment, error) {
	return r.find(bson.M{"date": date, "status": models.StatusAccepted}, nil)
}

// List retrieves appointments matching the filter, newest first.
func (r *MongoAppointmentRepo) List(filter models.AppointmentFilter) ([]models.Appointment, error) {
	query := bson.M{}
	if filter.Date != "" {
		query["date"] = filter.Date
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.EmployeeID != "" {
		query["$or"] = bson.A{
			bson.M{"requestedEmployeeId": filter.EmployeeID},
			bson.M{"acceptedEmployeeId": filter.EmployeeID},
		}
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.find(query, opts)
}

func (r *MongoAppointmentRepo) find(filter bson.M, opts *options.FindOptions) ([]models.Appointment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	var cursorOpts []*options.FindOptions
	if opts != nil {
		cursorOpts = append(cursorOpts, opts)
	}
	cursor, err := r.coll.Find(ctx, filter, cursorOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	for cursor.Next(ctx) {
		var a models.Appointment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode appointment: %w", err)
		}
		appts = append(appts, a)
	}
	return appts, nil
}
