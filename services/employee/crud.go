package employee

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lumiere/models"
	"lumiere/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// minPasswordLength is the smallest accepted staff password.
const minPasswordLength = 8

func (s *DefaultEmployeeService) Create(ctx context.Context, actor *models.Employee, emp *models.Employee, password string) error {
	if !actor.IsAdmin() {
		return utils.ForbiddenError("only admins may manage staff accounts")
	}
	if err := validateAccount(emp); err != nil {
		return err
	}
	if len(password) < minPasswordLength {
		return utils.ValidationError(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	existing, err := s.Repo.GetByEmail(emp.Email)
	if err != nil {
		return fmt.Errorf("failed to check for existing employee: %w", err)
	}
	if existing != nil {
		return utils.ConflictError("an account with that email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	emp.ID = uuid.New().String()
	emp.PasswordHash = string(hash)
	emp.TokenHash = ""
	emp.CreatedAt = now
	emp.UpdatedAt = now
	if err := s.Repo.Create(emp); err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	utils.GetLogger().Info("Staff account created",
		zap.String("id", emp.ID),
		zap.String("role", emp.Role))
	return nil
}

func (s *DefaultEmployeeService) Update(ctx context.Context, actor *models.Employee, emp *models.Employee) error {
	if !actor.IsAdmin() {
		return utils.ForbiddenError("only admins may manage staff accounts")
	}
	if emp.ID == "" {
		return utils.ValidationError("employee id is required")
	}
	existing, err := s.Repo.GetByID(emp.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch employee: %w", err)
	}
	if existing == nil {
		return utils.NotFoundError("employee not found")
	}
	if err := validateAccount(emp); err != nil {
		return err
	}

	// Credentials and sessions are never touched through account updates.
	emp.PasswordHash = existing.PasswordHash
	emp.TokenHash = existing.TokenHash
	emp.FCMToken = existing.FCMToken
	emp.CreatedAt = existing.CreatedAt
	emp.UpdatedAt = time.Now()
	if err := s.Repo.Update(emp); err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

func (s *DefaultEmployeeService) Delete(ctx context.Context, actor *models.Employee, id string) error {
	if !actor.IsAdmin() {
		return utils.ForbiddenError("only admins may manage staff accounts")
	}
	if actor.ID == id {
		return utils.ConflictError("cannot delete your own account")
	}
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch employee: %w", err)
	}
	if existing == nil {
		return utils.NotFoundError("employee not found")
	}
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

func (s *DefaultEmployeeService) Get(ctx context.Context, id string) (*models.Employee, error) {
	emp, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employee: %w", err)
	}
	if emp == nil {
		return nil, utils.NotFoundError("employee not found")
	}
	return emp, nil
}

func (s *DefaultEmployeeService) List(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	if employees == nil {
		employees = []models.Employee{}
	}
	return employees, nil
}

func validateAccount(emp *models.Employee) error {
	if strings.TrimSpace(emp.Name) == "" {
		return utils.ValidationError("name is required")
	}
	if !strings.Contains(emp.Email, "@") {
		return utils.ValidationError("a valid email is required")
	}
	if emp.Role != models.RoleAdmin && emp.Role != models.RoleStaff {
		return utils.ValidationError("role must be admin or staff")
	}
	return nil
}
