package appointmentRepo

import (
	"lumiere/models"

	"go.mongodb.org/mongo-driver/bson"
)

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// Create inserts a new appointment record.
	Create(appt *models.Appointment) error
	// GetByID retrieves an appointment by its ID.
	GetByID(id string) (*models.Appointment, error)
	// GetAcceptedByDate retrieves all accepted appointments on one date.
	GetAcceptedByDate(date string) ([]models.Appointment, error)
	// List retrieves appointments matching the filter, newest first.
	List(filter models.AppointmentFilter) ([]models.Appointment, error)
	// UpdateStatusIfCurrent applies a $set update only when the appointment
	// still holds the expected status. It reports whether a document matched,
	// which makes concurrent transitions lose cleanly instead of racing.
	UpdateStatusIfCurrent(id, currentStatus string, set bson.M) (bool, error)
}
