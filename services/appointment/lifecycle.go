package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lumiere/models"
	"lumiere/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func (s *DefaultAppointmentService) Accept(ctx context.Context, actor *models.Employee, id, employeeID string) (*models.Appointment, error) {
	appt, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt.Status != models.StatusPending {
		return nil, utils.ConflictError("appointment is no longer pending")
	}
	if employeeID == "" {
		employeeID = actor.ID
	}
	if !actor.CanActFor(employeeID) {
		return nil, utils.ForbiddenError("cannot accept on behalf of another employee")
	}
	if appt.RequestedEmployeeID != "" && employeeID != appt.RequestedEmployeeID && !actor.IsAdmin() {
		return nil, utils.ForbiddenError("appointment was requested with a different employee")
	}
	if err := s.ensureSlotFree(appt, employeeID); err != nil {
		return nil, err
	}

	now := time.Now()
	matched, err := s.AppointmentRepo.UpdateStatusIfCurrent(id, models.StatusPending, bson.M{
		"status":             models.StatusAccepted,
		"acceptedEmployeeId": employeeID,
		"updated_at":         now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to accept appointment: %w", err)
	}
	if !matched {
		// Another staff member handled it first.
		return nil, utils.ConflictError("appointment was already handled")
	}

	appt.Status = models.StatusAccepted
	appt.AcceptedEmployeeID = employeeID
	appt.UpdatedAt = now

	utils.GetLogger().Info("Appointment accepted",
		zap.String("id", appt.ID),
		zap.String("employeeId", employeeID))
	s.Notifier.PublishAppointmentEvent(ctx, s.event(models.EventAppointmentAccepted, appt, ""))
	return appt, nil
}

func (s *DefaultAppointmentService) Decline(ctx context.Context, actor *models.Employee, id, reason string) (*models.Appointment, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, utils.ValidationError("a decline reason is required")
	}
	appt, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt.Status != models.StatusPending {
		return nil, utils.ConflictError("appointment is no longer pending")
	}
	if appt.RequestedEmployeeID != "" && actor.ID != appt.RequestedEmployeeID && !actor.IsAdmin() {
		return nil, utils.ForbiddenError("only the requested employee may decline this appointment")
	}

	now := time.Now()
	matched, err := s.AppointmentRepo.UpdateStatusIfCurrent(id, models.StatusPending, bson.M{
		"status":        models.StatusDeclined,
		"declineReason": reason,
		"updated_at":    now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to decline appointment: %w", err)
	}
	if !matched {
		return nil, utils.ConflictError("appointment was already handled")
	}

	appt.Status = models.StatusDeclined
	appt.DeclineReason = reason
	appt.UpdatedAt = now

	utils.GetLogger().Info("Appointment declined",
		zap.String("id", appt.ID),
		zap.String("employeeId", actor.ID))
	s.Notifier.PublishAppointmentEvent(ctx, s.event(models.EventAppointmentDeclined, appt, reason))
	return appt, nil
}

func (s *DefaultAppointmentService) CancelByCustomer(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt.Status != models.StatusPending && appt.Status != models.StatusAccepted {
		return nil, utils.ConflictError("appointment can no longer be cancelled")
	}
	return s.cancel(ctx, appt)
}

func (s *DefaultAppointmentService) CancelByStaff(ctx context.Context, actor *models.Employee, id string) (*models.Appointment, error) {
	appt, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt.Status != models.StatusAccepted {
		return nil, utils.ConflictError("only accepted appointments can be cancelled by staff")
	}
	if actor.ID != appt.AcceptedEmployeeID && !actor.IsAdmin() {
		return nil, utils.ForbiddenError("only the accepting employee may cancel this appointment")
	}
	return s.cancel(ctx, appt)
}

func (s *DefaultAppointmentService) cancel(ctx context.Context, appt *models.Appointment) (*models.Appointment, error) {
	now := time.Now()
	matched, err := s.AppointmentRepo.UpdateStatusIfCurrent(appt.ID, appt.Status, bson.M{
		"status":     models.StatusCancelled,
		"updated_at": now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to cancel appointment: %w", err)
	}
	if !matched {
		return nil, utils.ConflictError("appointment state changed, try again")
	}

	appt.Status = models.StatusCancelled
	appt.UpdatedAt = now

	utils.GetLogger().Info("Appointment cancelled", zap.String("id", appt.ID))
	s.Notifier.PublishAppointmentEvent(ctx, s.event(models.EventAppointmentCancelled, appt, ""))
	return appt, nil
}

// ensureSlotFree verifies the accepting employee is neither blocked nor
// already booked at the appointment's slot. The availability endpoint is only
// advisory; this is the authoritative check.
func (s *DefaultAppointmentService) ensureSlotFree(appt *models.Appointment, employeeID string) error {
	slot, err := utils.ParseTimeOfDay(appt.Time)
	if err != nil {
		return utils.ValidationError(err.Error())
	}

	blocks, err := s.BlockedRepo.GetByDate(appt.Date, employeeID)
	if err != nil {
		return fmt.Errorf("failed to fetch blocked segments: %w", err)
	}
	for _, b := range blocks {
		start, err := utils.ParseTimeOfDay(b.StartTime)
		if err != nil {
			continue
		}
		end, err := utils.ParseTimeOfDay(b.EndTime)
		if err != nil {
			continue
		}
		if start <= slot && slot < end {
			return utils.ConflictError("employee is blocked at that time")
		}
	}

	accepted, err := s.AppointmentRepo.GetAcceptedByDate(appt.Date)
	if err != nil {
		return fmt.Errorf("failed to fetch accepted appointments: %w", err)
	}
	for _, other := range accepted {
		if other.AcceptedEmployeeID == employeeID && other.Time == appt.Time {
			return utils.ConflictError("employee already has a booking at that time")
		}
	}
	return nil
}
