package catalog

import (
	"context"

	catalogRepo "lumiere/database/repository/catalog"
	"lumiere/models"
)

// CatalogService manages the public-facing salon service list and news posts.
// Any staff member may curate the catalog; listings are public.
type CatalogService interface {
	// CreateService adds a bookable salon service.
	CreateService(ctx context.Context, actor *models.Employee, svc *models.SalonService) error
	// UpdateService modifies an existing salon service.
	UpdateService(ctx context.Context, actor *models.Employee, svc *models.SalonService) error
	// DeleteService removes a salon service.
	DeleteService(ctx context.Context, actor *models.Employee, id string) error
	// ListServices returns services; activeOnly hides retired ones.
	ListServices(ctx context.Context, activeOnly bool) ([]models.SalonService, error)
	// GetService retrieves one salon service.
	GetService(ctx context.Context, id string) (*models.SalonService, error)

	// CreatePost publishes a news post.
	CreatePost(ctx context.Context, actor *models.Employee, post *models.Post) error
	// UpdatePost modifies an existing post.
	UpdatePost(ctx context.Context, actor *models.Employee, post *models.Post) error
	// DeletePost removes a post.
	DeletePost(ctx context.Context, actor *models.Employee, id string) error
	// ListPosts returns all posts, newest first.
	ListPosts(ctx context.Context) ([]models.Post, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo catalogRepo.CatalogRepository
}
