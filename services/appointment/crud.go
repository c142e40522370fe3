package appointment

import (
	"context"
	"fmt"
	"time"

	"lumiere/models"
	"lumiere/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultAppointmentService) Request(ctx context.Context, req models.AppointmentRequest) (*models.Appointment, error) {
	if req.CustomerName == "" || req.CustomerEmail == "" || req.CustomerPhone == "" {
		return nil, utils.ValidationError("customer name, email and phone are required")
	}
	if _, err := utils.ParseDate(req.Date); err != nil {
		return nil, utils.ValidationError(err.Error())
	}
	slot, err := utils.ParseTimeOfDay(req.Time)
	if err != nil {
		return nil, utils.ValidationError(err.Error())
	}
	step := s.slotStep()
	if !utils.IsAligned(slot, step) {
		return nil, utils.ValidationError(fmt.Sprintf("time must fall on the %d-minute booking grid", step/60))
	}

	svc, err := s.CatalogRepo.GetServiceByID(req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if svc == nil || !svc.Active {
		return nil, utils.ValidationError("unknown or inactive service")
	}

	now := time.Now()
	appt := &models.Appointment{
		ID:                  uuid.New().String(),
		CustomerName:        req.CustomerName,
		CustomerEmail:       req.CustomerEmail,
		CustomerPhone:       req.CustomerPhone,
		ServiceID:           svc.ID,
		ServiceName:         svc.Name,
		Date:                req.Date,
		Time:                utils.FormatTimeOfDay(slot),
		Status:              models.StatusPending,
		RequestedEmployeeID: req.RequestedEmployeeID,
		Note:                req.Note,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := s.AppointmentRepo.Create(appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	utils.GetLogger().Info("Appointment requested",
		zap.String("id", appt.ID),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time),
		zap.String("service", appt.ServiceName))
	s.Notifier.PublishAppointmentEvent(ctx, s.event(models.EventAppointmentRequested, appt, ""))
	return appt, nil
}

func (s *DefaultAppointmentService) Get(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.AppointmentRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment: %w", err)
	}
	if appt == nil {
		return nil, utils.NotFoundError("appointment not found")
	}
	return appt, nil
}

func (s *DefaultAppointmentService) List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	if filter.Date != "" {
		if _, err := utils.ParseDate(filter.Date); err != nil {
			return nil, utils.ValidationError(err.Error())
		}
	}
	appts, err := s.AppointmentRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	if appts == nil {
		appts = []models.Appointment{}
	}
	return appts, nil
}

// event builds the notification payload for a lifecycle transition.
func (s *DefaultAppointmentService) event(eventType string, appt *models.Appointment, reason string) models.AppointmentEvent {
	employeeID := appt.AcceptedEmployeeID
	if employeeID == "" {
		employeeID = appt.RequestedEmployeeID
	}
	return models.AppointmentEvent{
		Type:          eventType,
		AppointmentID: appt.ID,
		CustomerName:  appt.CustomerName,
		CustomerEmail: appt.CustomerEmail,
		CustomerPhone: appt.CustomerPhone,
		EmployeeID:    employeeID,
		ServiceName:   appt.ServiceName,
		Date:          appt.Date,
		Time:          appt.Time,
		Reason:        reason,
	}
}
