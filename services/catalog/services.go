package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lumiere/models"
	"lumiere/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultCatalogService) CreateService(ctx context.Context, actor *models.Employee, svc *models.SalonService) error {
	if actor == nil {
		return utils.ForbiddenError("authentication required")
	}
	if err := validateService(svc); err != nil {
		return err
	}

	now := time.Now()
	svc.ID = uuid.New().String()
	svc.CreatedAt = now
	svc.UpdatedAt = now
	if err := s.Repo.CreateService(svc); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	utils.GetLogger().Info("Salon service created",
		zap.String("id", svc.ID),
		zap.String("name", svc.Name))
	return nil
}

func (s *DefaultCatalogService) UpdateService(ctx context.Context, actor *models.Employee, svc *models.SalonService) error {
	if actor == nil {
		return utils.ForbiddenError("authentication required")
	}
	if svc.ID == "" {
		return utils.ValidationError("service id is required")
	}
	existing, err := s.Repo.GetServiceByID(svc.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch service: %w", err)
	}
	if existing == nil {
		return utils.NotFoundError("service not found")
	}
	if err := validateService(svc); err != nil {
		return err
	}

	svc.CreatedAt = existing.CreatedAt
	svc.UpdatedAt = time.Now()
	if err := s.Repo.UpdateService(svc); err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	return nil
}

func (s *DefaultCatalogService) DeleteService(ctx context.Context, actor *models.Employee, id string) error {
	if actor == nil {
		return utils.ForbiddenError("authentication required")
	}
	existing, err := s.Repo.GetServiceByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch service: %w", err)
	}
	if existing == nil {
		return utils.NotFoundError("service not found")
	}
	if err := s.Repo.DeleteService(id); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

func (s *DefaultCatalogService) ListServices(ctx context.Context, activeOnly bool) ([]models.SalonService, error) {
	services, err := s.Repo.ListServices(activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	if services == nil {
		services = []models.SalonService{}
	}
	return services, nil
}

func (s *DefaultCatalogService) GetService(ctx context.Context, id string) (*models.SalonService, error) {
	svc, err := s.Repo.GetServiceByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if svc == nil {
		return nil, utils.NotFoundError("service not found")
	}
	return svc, nil
}

func validateService(svc *models.SalonService) error {
	if strings.TrimSpace(svc.Name) == "" {
		return utils.ValidationError("service name is required")
	}
	if svc.DurationMin <= 0 {
		return utils.ValidationError("durationMin must be positive")
	}
	if svc.Price < 0 {
		return utils.ValidationError("price must not be negative")
	}
	return nil
}
