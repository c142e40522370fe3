package availability

import (
	"context"

	appointmentRepo "lumiere/database/repository/appointment"
	blockedRepo "lumiere/database/repository/blocked"
	scheduleRepo "lumiere/database/repository/schedule"
)

// AvailabilityService computes bookable time slots for a calendar date.
type AvailabilityService interface {
	// GetAvailableTimes returns the sorted "HH:MM:SS" slot starts bookable on
	// the given date. An empty employeeID considers every employee.
	GetAvailableTimes(ctx context.Context, date, employeeID string) ([]string, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	ScheduleRepo    scheduleRepo.ScheduleRepository
	BlockedRepo     blockedRepo.BlockedRepository
	AppointmentRepo appointmentRepo.AppointmentRepository

	// SlotGranularityMin is the booking grid in minutes.
	SlotGranularityMin int
}
