package employeeRepo

import (
	"fmt"
	"time"

	"lumiere/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetByID retrieves an employee by its unique ID.
func (r *MongoEmployeeRepo) GetByID(id string) (*models.Employee, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var emp models.Employee
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&emp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch employee with id %s: %w", id, err)
	}
	return &emp, nil
}

// GetByEmail retrieves an employee by its email address.
func (r *MongoEmployeeRepo) GetByEmail(email string) (*models.Employee, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var emp models.Employee
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&emp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch employee with email %s: %w", email, err)
	}
	return &emp, nil
}

// GetByTokenHash retrieves the employee holding the given auth token hash.
func (r *MongoEmployeeRepo) GetByTokenHash(tokenHash string) (*models.Employee, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var emp models.Employee
	if err := r.coll.FindOne(ctx, bson.M{"tokenHash": tokenHash}).Decode(&emp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch employee by token hash: %w", err)
	}
	return &emp, nil
}

// GetAll retrieves all employees.
func (r *MongoEmployeeRepo) GetAll() ([]models.Employee, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve employees: %w", err)
	}
	defer cursor.Close(ctx)

	var employees []models.Employee
	for cursor.Next(ctx) {
		var e models.Employee
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, nil
}
