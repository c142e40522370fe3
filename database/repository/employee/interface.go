package employeeRepo

import (
	"lumiere/models"

	"go.mongodb.org/mongo-driver/bson"
)

// EmployeeRepository defines methods for staff account data access.
type EmployeeRepository interface {
	// GetByID retrieves an employee by its unique ID.
	GetByID(id string) (*models.Employee, error)
	// GetByEmail retrieves an employee by email, including credential fields.
	GetByEmail(email string) (*models.Employee, error)
	// GetByTokenHash retrieves the employee holding the given auth token hash.
	GetByTokenHash(tokenHash string) (*models.Employee, error)
	// GetAll retrieves all employees.
	GetAll() ([]models.Employee, error)
	// Create inserts a new employee record.
	Create(emp *models.Employee) error
	// Update modifies an existing employee record.
	Update(emp *models.Employee) error
	// UpdateSetDocument applies a $set update to an employee document.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Delete removes an employee record by its ID.
	Delete(id string) error
}
