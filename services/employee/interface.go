package employee

import (
	"context"

	employeeRepo "lumiere/database/repository/employee"
	"lumiere/models"
)

// EmployeeService manages staff accounts and their sessions. Account
// administration is admin-only; employees manage their own session and
// device token.
type EmployeeService interface {
	// Login verifies credentials and issues a fresh session token.
	Login(ctx context.Context, email, password string) (string, *models.Employee, error)
	// Revoke invalidates the employee's current session token.
	Revoke(ctx context.Context, employeeID string) error
	// UpdateFCMToken stores the employee's push delivery token.
	UpdateFCMToken(ctx context.Context, employeeID, fcmToken string) error
	// UpdateProfile modifies the employee's own name and phone number.
	UpdateProfile(ctx context.Context, actor *models.Employee, name, phoneNumber string) (*models.Employee, error)
	// ChangePassword replaces the employee's password after verifying the
	// current one.
	ChangePassword(ctx context.Context, actor *models.Employee, currentPassword, newPassword string) error

	// Create registers a new staff account.
	Create(ctx context.Context, actor *models.Employee, emp *models.Employee, password string) error
	// Update modifies name, email, phone and role of an account.
	Update(ctx context.Context, actor *models.Employee, emp *models.Employee) error
	// Delete removes a staff account.
	Delete(ctx context.Context, actor *models.Employee, id string) error
	// Get retrieves one staff account.
	Get(ctx context.Context, id string) (*models.Employee, error)
	// List retrieves all staff accounts.
	List(ctx context.Context) ([]models.Employee, error)
}

// DefaultEmployeeService is the production implementation.
type DefaultEmployeeService struct {
	Repo employeeRepo.EmployeeRepository
}
