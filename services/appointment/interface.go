package appointment

import (
	"context"

	appointmentRepo "lumiere/database/repository/appointment"
	blockedRepo "lumiere/database/repository/blocked"
	catalogRepo "lumiere/database/repository/catalog"
	"lumiere/models"
	"lumiere/services/notification"
)

// AppointmentService owns the booking lifecycle. Customers create pending
// requests and may cancel them; staff accept, decline, or cancel accepted
// bookings. Every transition publishes a notification event after the write.
type AppointmentService interface {
	// Request records a new pending appointment from the public booking form.
	Request(ctx context.Context, req models.AppointmentRequest) (*models.Appointment, error)
	// Get retrieves one appointment for the staff dashboard.
	Get(ctx context.Context, id string) (*models.Appointment, error)
	// List retrieves appointments matching the filter, newest first.
	List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error)

	// Accept assigns a pending appointment to an employee. An empty employeeID
	// assigns it to the actor.
	Accept(ctx context.Context, actor *models.Employee, id, employeeID string) (*models.Appointment, error)
	// Decline rejects a pending appointment with a mandatory reason.
	Decline(ctx context.Context, actor *models.Employee, id, reason string) (*models.Appointment, error)
	// CancelByCustomer cancels a pending or accepted appointment from the
	// public surface.
	CancelByCustomer(ctx context.Context, id string) (*models.Appointment, error)
	// CancelByStaff cancels an accepted appointment from the dashboard.
	CancelByStaff(ctx context.Context, actor *models.Employee, id string) (*models.Appointment, error)
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	AppointmentRepo appointmentRepo.AppointmentRepository
	BlockedRepo     blockedRepo.BlockedRepository
	CatalogRepo     catalogRepo.CatalogRepository
	Notifier        notification.NotificationService

	// SlotGranularityMin is the booking grid in minutes.
	SlotGranularityMin int
}

func (s *DefaultAppointmentService) slotStep() int {
	min := s.SlotGranularityMin
	if min <= 0 {
		min = 30
	}
	return min * 60
}
