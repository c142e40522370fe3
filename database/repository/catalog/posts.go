package catalogRepo

import (
	"fmt"
	"time"

	"lumiere/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreatePost inserts a new post document.
func (r *MongoCatalogRepo) CreatePost(post *models.Post) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	_, err := r.posts.InsertOne(ctx, post)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// UpdatePost modifies an existing post document.
func (r *MongoCatalogRepo) UpdatePost(post *models.Post) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	post.UpdatedAt = time.Now()
	result, err := r.posts.UpdateOne(ctx, bson.M{"id": post.ID}, bson.M{"$set": post})
	if err != nil {
		return fmt.Errorf("failed to update post with id %s: %w", post.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("post with id %s not found", post.ID)
	}
	return nil
}

// DeletePost removes a post document by its ID.
func (r *MongoCatalogRepo) DeletePost(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.posts.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete post with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("post with id %s not found", id)
	}
	return nil
}

// GetPostByID retrieves a post by its ID.
func (r *MongoCatalogRepo) GetPostByID(id string) (*models.Post, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var post models.Post
	if err := r.posts.FindOne(ctx, bson.M{"id": id}).Decode(&post); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch post with id %s: %w", id, err)
	}
	return &post, nil
}

// ListPosts retrieves all posts, newest first.
func (r *MongoCatalogRepo) ListPosts() ([]models.Post, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.posts.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	for cursor.Next(ctx) {
		var p models.Post
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, nil
}
