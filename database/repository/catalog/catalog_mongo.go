package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"lumiere/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	services *mongo.Collection
	posts    *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &MongoCatalogRepo{
		services: db.Collection("salon_services"),
		posts:    db.Collection("posts"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	idIndex := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.services.Indexes().CreateMany(ctx, idIndex); err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}
	if _, err := r.posts.Indexes().CreateMany(ctx, idIndex); err != nil {
		return fmt.Errorf("failed to create post indexes: %w", err)
	}
	return nil
}
