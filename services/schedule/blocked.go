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

// maxBlockRangeDays bounds a single block request to one year of segments.
const maxBlockRangeDays = 366

func (s *DefaultScheduleService) BlockRange(ctx context.Context, actor *models.Employee, req models.BlockedRangeRequest) ([]models.BlockedInterval, error) {
	segments, err := expandRange(req)
	if err != nil {
		return nil, err
	}
	if !actor.CanActFor(req.EmployeeID) {
		return nil, utils.ForbiddenError("cannot block another employee's time")
	}

	created := make([]models.BlockedInterval, 0, len(segments))
	for _, seg := range segments {
		exists, err := s.BlockedRepo.ExistsExact(seg.EmployeeID, seg.Date, seg.StartTime, seg.EndTime)
		if err != nil {
			return nil, fmt.Errorf("failed to check for existing blocked segment: %w", err)
		}
		if exists {
			// Already blocked identically; re-submitting a range must not
			// duplicate its segments.
			continue
		}
		seg.ID = uuid.New().String()
		seg.CreatedAt = time.Now()
		if err := s.BlockedRepo.Create(&seg); err != nil {
			return nil, fmt.Errorf("failed to create blocked segment: %w", err)
		}
		created = append(created, seg)
	}
	if len(created) == 0 {
		return nil, utils.ConflictError("every segment in the range is already blocked")
	}

	utils.GetLogger().Info("Blocked range created",
		zap.String("employeeId", req.EmployeeID),
		zap.String("startDate", req.StartDate),
		zap.String("endDate", req.EndDate),
		zap.Int("segments", len(created)))
	return created, nil
}

func (s *DefaultScheduleService) UnblockSegment(ctx context.Context, actor *models.Employee, id string) error {
	existing, err := s.BlockedRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch blocked segment: %w", err)
	}
	if existing == nil {
		return utils.NotFoundError("blocked segment not found")
	}
	if !actor.CanActFor(existing.EmployeeID) {
		return utils.ForbiddenError("cannot unblock another employee's time")
	}
	if err := s.BlockedRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete blocked segment: %w", err)
	}
	return nil
}

func (s *DefaultScheduleService) ListBlocked(ctx context.Context, employeeID string) ([]models.BlockedInterval, error) {
	if employeeID == "" {
		return nil, utils.ValidationError("employeeId is required")
	}
	segments, err := s.BlockedRepo.GetByEmployee(employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocked segments: %w", err)
	}
	if segments == nil {
		segments = []models.BlockedInterval{}
	}
	return segments, nil
}

// expandRange turns a date range into one segment per calendar day. A
// single-day range keeps both times. Across multiple days the first day runs
// from the start time to end of day, interior days cover the whole day, and
// the last day runs from start of day to the end time.
func expandRange(req models.BlockedRangeRequest) ([]models.BlockedInterval, error) {
	if req.EmployeeID == "" {
		return nil, utils.ValidationError("employeeId is required")
	}
	startDay, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, utils.ValidationError(err.Error())
	}
	endDay, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, utils.ValidationError(err.Error())
	}
	if endDay.Before(startDay) {
		return nil, utils.ValidationError("endDate must not be before startDate")
	}
	if endDay.Sub(startDay) > maxBlockRangeDays*24*time.Hour {
		return nil, utils.ValidationError("date range is too long")
	}

	start, err := utils.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, utils.ValidationError(err.Error())
	}
	end, err := utils.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return nil, utils.ValidationError(err.Error())
	}
	startTime := utils.FormatTimeOfDay(start)
	endTime := utils.FormatTimeOfDay(end)

	singleDay := startDay.Equal(endDay)
	if singleDay && start >= end {
		return nil, utils.ValidationError("startTime must be before endTime")
	}

	var segments []models.BlockedInterval
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		seg := models.BlockedInterval{
			EmployeeID: req.EmployeeID,
			Date:       day.Format(utils.DateLayout),
			StartTime:  models.StartOfDay,
			EndTime:    models.EndOfDay,
			Reason:     req.Reason,
		}
		if day.Equal(startDay) {
			seg.StartTime = startTime
		}
		if day.Equal(endDay) {
			seg.EndTime = endTime
		}
		segments = append(segments, seg)
	}
	return segments, nil
}
