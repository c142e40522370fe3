package schedule

import (
	"context"

	blockedRepo "lumiere/database/repository/blocked"
	scheduleRepo "lumiere/database/repository/schedule"
	"lumiere/models"
)

// ScheduleService manages recurring weekly availability and ad-hoc blocked
// intervals. Mutations are authorized against the acting employee: staff may
// only touch their own schedule, admins may touch anyone's.
type ScheduleService interface {
	// CreateWindow declares a new weekly availability window.
	CreateWindow(ctx context.Context, actor *models.Employee, av *models.WeeklyAvailability) error
	// UpdateWindow replaces an existing window's day and times.
	UpdateWindow(ctx context.Context, actor *models.Employee, av *models.WeeklyAvailability) error
	// DeleteWindow removes a window by ID.
	DeleteWindow(ctx context.Context, actor *models.Employee, id string) error
	// ListWindows returns all windows declared by one employee.
	ListWindows(ctx context.Context, employeeID string) ([]models.WeeklyAvailability, error)

	// BlockRange expands a date range into per-day blocked segments and stores
	// the ones not already present. It returns the segments actually created.
	BlockRange(ctx context.Context, actor *models.Employee, req models.BlockedRangeRequest) ([]models.BlockedInterval, error)
	// UnblockSegment removes one stored blocked segment.
	UnblockSegment(ctx context.Context, actor *models.Employee, id string) error
	// ListBlocked returns all blocked segments for one employee.
	ListBlocked(ctx context.Context, employeeID string) ([]models.BlockedInterval, error)
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	ScheduleRepo scheduleRepo.ScheduleRepository
	BlockedRepo  blockedRepo.BlockedRepository

	// SlotGranularityMin is the booking grid in minutes; weekly windows must
	// start and end on it.
	SlotGranularityMin int
}
