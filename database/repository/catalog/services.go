package catalogRepo

import (
	"fmt"
	"time"

	"lumiere/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateService inserts a new salon service document.
func (r *MongoCatalogRepo) CreateService(svc *models.SalonService) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	svc.CreatedAt = now
	svc.UpdatedAt = now

	_, err := r.services.InsertOne(ctx, svc)
	if err != nil {
		return fmt.Errorf("failed to create salon service: %w", err)
	}
	return nil
}

// UpdateService modifies an existing salon service document.
func (r *MongoCatalogRepo) UpdateService(svc *models.SalonService) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	svc.UpdatedAt = time.Now()
	result, err := r.services.UpdateOne(ctx, bson.M{"id": svc.ID}, bson.M{"$set": svc})
	if err != nil {
		return fmt.Errorf("failed to update salon service with id %s: %w", svc.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("salon service with id %s not found", svc.ID)
	}
	return nil
}

// DeleteService removes a salon service document by its ID.
func (r *MongoCatalogRepo) DeleteService(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.services.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete salon service with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("salon service with id %s not found", id)
	}
	return nil
}

// GetServiceByID retrieves a salon service by its ID.
func (r *MongoCatalogRepo) GetServiceByID(id string) (*models.SalonService, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var svc models.SalonService
	if err := r.services.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch salon service with id %s: %w", id, err)
	}
	return &svc, nil
}

// ListServices retrieves services, optionally active-only.
func (r *MongoCatalogRepo) ListServices(activeOnly bool) ([]models.SalonService, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	cursor, err := r.services.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve salon services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.SalonService
	for cursor.Next(ctx) {
		var s models.SalonService
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode salon service: %w", err)
		}
		services = append(services, s)
	}
	return services, nil
}
