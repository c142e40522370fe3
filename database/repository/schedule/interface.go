package scheduleRepo

import "lumiere/models"

// ScheduleRepository defines methods for weekly availability data access.
type ScheduleRepository interface {
	// Create inserts a new weekly availability window.
	Create(av *models.WeeklyAvailability) error
	// Update modifies an existing window.
	Update(av *models.WeeklyAvailability) error
	// Delete removes a window by its ID.
	Delete(id string) error
	// GetByID retrieves a window by its ID.
	GetByID(id string) (*models.WeeklyAvailability, error)
	// GetByEmployee retrieves all windows declared by one employee.
	GetByEmployee(employeeID string) ([]models.WeeklyAvailability, error)
	// GetByDayOfWeek retrieves windows for a weekday. An empty employeeID
	// matches every employee.
	GetByDayOfWeek(dayOfWeek int, employeeID string) ([]models.WeeklyAvailability, error)
}
