package schedule

import (
	"context"
	"fmt"
	"time"

	"lumiere/models"
	"lumiere/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultScheduleService) CreateWindow(ctx context.Context, actor *models.Employee, av *models.WeeklyAvailability) error {
	if err := s.validateWindow(av); err != nil {
		return err
	}
	if !actor.CanActFor(av.EmployeeID) {
		return utils.ForbiddenError("cannot manage another employee's schedule")
	}

	now := time.Now()
	av.ID = uuid.New().String()
	av.CreatedAt = now
	av.UpdatedAt = now
	if err := s.ScheduleRepo.Create(av); err != nil {
		return fmt.Errorf("failed to create availability window: %w", err)
	}

	utils.GetLogger().Info("Weekly availability window created",
		zap.String("id", av.ID),
		zap.String("employeeId", av.EmployeeID),
		zap.Int("dayOfWeek", av.DayOfWeek))
	return nil
}

func (s *DefaultScheduleService) UpdateWindow(ctx context.Context, actor *models.Employee, av *models.WeeklyAvailability) error {
	if av.ID == "" {
		return utils.ValidationError("window id is required")
	}
	existing, err := s.ScheduleRepo.GetByID(av.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch availability window: %w", err)
	}
	if existing == nil {
		return utils.NotFoundError("availability window not found")
	}
	if !actor.CanActFor(existing.EmployeeID) {
		return utils.ForbiddenError("cannot manage another employee's schedule")
	}

	// Windows stay attached to the employee that declared them.
	av.EmployeeID = existing.EmployeeID
	if err := s.validateWindow(av); err != nil {
		return err
	}

	av.CreatedAt = existing.CreatedAt
	av.UpdatedAt = time.Now()
	if err := s.ScheduleRepo.Update(av); err != nil {
		return fmt.Errorf("failed to update availability window: %w", err)
	}
	return nil
}

func (s *DefaultScheduleService) DeleteWindow(ctx context.Context, actor *models.Employee, id string) error {
	existing, err := s.ScheduleRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch availability window: %w", err)
	}
	if existing == nil {
		return utils.NotFoundError("availability window not found")
	}
	if !actor.CanActFor(existing.EmployeeID) {
		return utils.ForbiddenError("cannot manage another employee's schedule")
	}
	if err := s.ScheduleRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete availability window: %w", err)
	}
	return nil
}

func (s *DefaultScheduleService) ListWindows(ctx context.Context, employeeID string) ([]models.WeeklyAvailability, error) {
	if employeeID == "" {
		return nil, utils.ValidationError("employeeId is required")
	}
	windows, err := s.ScheduleRepo.GetByEmployee(employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability windows: %w", err)
	}
	if windows == nil {
		windows = []models.WeeklyAvailability{}
	}
	return windows, nil
}

// validateWindow checks day of week, time format, ordering and grid alignment.
func (s *DefaultScheduleService) validateWindow(av *models.WeeklyAvailability) error {
	if av.EmployeeID == "" {
		return utils.ValidationError("employeeId is required")
	}
	if av.DayOfWeek < 0 || av.DayOfWeek > 6 {
		return utils.ValidationError("dayOfWeek must be between 0 (Sunday) and 6 (Saturday)")
	}
	start, err := utils.ParseTimeOfDay(av.StartTime)
	if err != nil {
		return utils.ValidationError(err.Error())
	}
	end, err := utils.ParseTimeOfDay(av.EndTime)
	if err != nil {
		return utils.ValidationError(err.Error())
	}
	if start >= end {
		return utils.ValidationError("startTime must be before endTime")
	}
	step := s.slotStep()
	if !utils.IsAligned(start, step) || !utils.IsAligned(end, step) {
		return utils.ValidationError(fmt.Sprintf("times must fall on the %d-minute booking grid", step/60))
	}

	av.StartTime = utils.FormatTimeOfDay(start)
	av.EndTime = utils.FormatTimeOfDay(end)
	return nil
}

func (s *DefaultScheduleService) slotStep() int {
	min := s.SlotGranularityMin
	if min <= 0 {
		min = 30
	}
	return min * 60
}
