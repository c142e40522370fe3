package employee

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lumiere/models"
	"lumiere/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// sessionDuration is how long an issued token stays valid.
const sessionDuration = 24 * time.Hour

func (s *DefaultEmployeeService) Login(ctx context.Context, email, password string) (string, *models.Employee, error) {
	if email == "" || password == "" {
		return "", nil, utils.ValidationError("email and password are required")
	}
	emp, err := s.Repo.GetByEmail(email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to fetch employee: %w", err)
	}
	if emp == nil {
		return "", nil, utils.ForbiddenError("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(password)); err != nil {
		return "", nil, utils.ForbiddenError("invalid email or password")
	}

	token, err := utils.GenerateToken(emp.ID, emp.Email, sessionDuration)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateSetDocument(emp.ID, bson.M{
		"tokenHash":  tokenHash,
		"updated_at": time.Now(),
	}); err != nil {
		return "", nil, fmt.Errorf("failed to store session token: %w", err)
	}
	emp.TokenHash = tokenHash

	utils.GetLogger().Info("Employee logged in",
		zap.String("id", emp.ID),
		zap.String("role", emp.Role))
	return token, emp, nil
}

func (s *DefaultEmployeeService) Revoke(ctx context.Context, employeeID string) error {
	emp, err := s.Repo.GetByID(employeeID)
	if err != nil {
		return fmt.Errorf("failed to fetch employee: %w", err)
	}
	if emp == nil {
		return utils.NotFoundError("employee not found")
	}
	if err := s.Repo.UpdateSetDocument(employeeID, bson.M{
		"tokenHash":  "",
		"updated_at": time.Now(),
	}); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	// Drop the cached session so revocation takes effect immediately.
	if emp.TokenHash != "" {
		if err := utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+emp.TokenHash).Err(); err != nil {
			utils.GetLogger().Warn("Failed to evict cached session", zap.Error(err))
		}
	}
	return nil
}

func (s *DefaultEmployeeService) UpdateProfile(ctx context.Context, actor *models.Employee, name, phoneNumber string) (*models.Employee, error) {
	if strings.TrimSpace(name) == "" {
		return nil, utils.ValidationError("name is required")
	}
	emp, err := s.Repo.GetByID(actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employee: %w", err)
	}
	if emp == nil {
		return nil, utils.NotFoundError("employee not found")
	}
	if err := s.Repo.UpdateSetDocument(actor.ID, bson.M{
		"name":        name,
		"phoneNumber": phoneNumber,
		"updated_at":  time.Now(),
	}); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	emp.Name = name
	emp.PhoneNumber = phoneNumber
	return emp, nil
}

func (s *DefaultEmployeeService) ChangePassword(ctx context.Context, actor *models.Employee, currentPassword, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return utils.ValidationError(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	emp, err := s.Repo.GetByID(actor.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch employee: %w", err)
	}
	if emp == nil {
		return utils.NotFoundError("employee not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(currentPassword)); err != nil {
		return utils.ForbiddenError("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.Repo.UpdateSetDocument(actor.ID, bson.M{
		"passwordHash": string(hash),
		"updated_at":   time.Now(),
	}); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}

	utils.GetLogger().Info("Password changed", zap.String("id", actor.ID))
	return nil
}

func (s *DefaultEmployeeService) UpdateFCMToken(ctx context.Context, employeeID, fcmToken string) error {
	emp, err := s.Repo.GetByID(employeeID)
	if err != nil {
		return fmt.Errorf("failed to fetch employee: %w", err)
	}
	if emp == nil {
		return utils.NotFoundError("employee not found")
	}
	if err := s.Repo.UpdateSetDocument(employeeID, bson.M{
		"fcmToken":   fcmToken,
		"updated_at": time.Now(),
	}); err != nil {
		return fmt.Errorf("failed to store device token: %w", err)
	}
	return nil
}
