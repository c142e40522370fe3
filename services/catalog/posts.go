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

func (s *DefaultCatalogService) CreatePost(ctx context.Context, actor *models.Employee, post *models.Post) error {
	if actor == nil {
		return utils.ForbiddenError("authentication required")
	}
	if err := validatePost(post); err != nil {
		return err
	}

	now := time.Now()
	post.ID = uuid.New().String()
	post.AuthorID = actor.ID
	post.CreatedAt = now
	post.UpdatedAt = now
	if err := s.Repo.CreatePost(post); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	utils.GetLogger().Info("Post published",
		zap.String("id", post.ID),
		zap.String("title", post.Title))
	return nil
}

func (s *DefaultCatalogService) UpdatePost(ctx context.Context, actor *models.Employee, post *models.Post) error {
	if actor == nil {
		return utils.ForbiddenError("authentication required")
	}
	if post.ID == "" {
		return utils.ValidationError("post id is required")
	}
	existing, err := s.Repo.GetPostByID(post.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch post: %w", err)
	}
	if existing == nil {
		return utils.NotFoundError("post not found")
	}
	if err := validatePost(post); err != nil {
		return err
	}

	post.AuthorID = existing.AuthorID
	post.CreatedAt = existing.CreatedAt
	post.UpdatedAt = time.Now()
	if err := s.Repo.UpdatePost(post); err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	return nil
}

func (s *DefaultCatalogService) DeletePost(ctx context.Context, actor *models.Employee, id string) error {
	if actor == nil {
		return utils.ForbiddenError("authentication required")
	}
	existing, err := s.Repo.GetPostByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch post: %w", err)
	}
	if existing == nil {
		return utils.NotFoundError("post not found")
	}
	if err := s.Repo.DeletePost(id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

func (s *DefaultCatalogService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := s.Repo.ListPosts()
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

func validatePost(post *models.Post) error {
	if strings.TrimSpace(post.Title) == "" {
		return utils.ValidationError("post title is required")
	}
	if strings.TrimSpace(post.Body) == "" {
		return utils.ValidationError("post body is required")
	}
	return nil
}
