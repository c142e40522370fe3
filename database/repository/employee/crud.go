package employeeRepo

import (
	"fmt"
	"time"

	"lumiere/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new employee document.
func (r *MongoEmployeeRepo) Create(emp *models.Employee) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	emp.CreatedAt = now
	emp.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, emp)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

// Update modifies an existing employee document.
func (r *MongoEmployeeRepo) Update(emp *models.Employee) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	emp.UpdatedAt = time.Now()
	filter := bson.M{"id": emp.ID}
	update := bson.M{"$set": emp}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update employee with id %s: %w", emp.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("employee with id %s not found", emp.ID)
	}
	return nil
}

// UpdateSetDocument applies a $set update to an employee document.
func (r *MongoEmployeeRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": updateDoc}
	filter := bson.M{"id": id}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update employee with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("employee with id %s not found", id)
	}
	return nil
}

// Delete removes an employee document by its ID.
func (r *MongoEmployeeRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete employee with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("employee with id %s not found", id)
	}
	return nil
}
