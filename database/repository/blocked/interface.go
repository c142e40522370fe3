package blockedRepo

import "lumiere/models"

// BlockedRepository defines methods for blocked interval data access.
type BlockedRepository interface {
	// Create inserts a new blocked interval segment.
	Create(b *models.BlockedInterval) error
	// Delete removes a segment by its ID.
	Delete(id string) error
	// GetByID retrieves a segment by its ID.
	GetByID(id string) (*models.BlockedInterval, error)
	// GetByDate retrieves segments on one date. An empty employeeID matches
	// every employee.
	GetByDate(date, employeeID string) ([]models.BlockedInterval, error)
	// GetByEmployee retrieves all segments for one employee.
	GetByEmployee(employeeID string) ([]models.BlockedInterval, error)
	// ExistsExact reports whether an identical segment is already stored.
	ExistsExact(employeeID, date, startTime, endTime string) (bool, error)
}
