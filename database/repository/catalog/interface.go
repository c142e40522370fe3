package catalogRepo

import "lumiere/models"

// CatalogRepository defines methods for salon service and post data access.
type CatalogRepository interface {
	// CreateService inserts a new salon service.
	CreateService(svc *models.SalonService) error
	// UpdateService modifies an existing salon service.
	UpdateService(svc *models.SalonService) error
	// DeleteService removes a salon service by its ID.
	DeleteService(id string) error
	// GetServiceByID retrieves a salon service by its ID.
	GetServiceByID(id string) (*models.SalonService, error)
	// ListServices retrieves services, optionally active-only.
	ListServices(activeOnly bool) ([]models.SalonService, error)

	// CreatePost inserts a new post.
	CreatePost(post *models.Post) error
	// UpdatePost modifies an existing post.
	UpdatePost(post *models.Post) error
	// DeletePost removes a post by its ID.
	DeletePost(id string) error
	// GetPostByID retrieves a post by its ID.
	GetPostByID(id string) (*models.Post, error)
	// ListPosts retrieves all posts, newest first.
	ListPosts() ([]models.Post, error)
}
