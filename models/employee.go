// models/employee.go
package models

import "time"

// Employee roles. Authorization decisions are made against the role flag on
// the record, never against a configured email.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Employee represents a salon staff account.
type Employee struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PhoneNumber  string    `bson:"phoneNumber" json:"phoneNumber"`
	Role         string    `bson:"role" json:"role"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// IsAdmin reports whether the employee carries the admin role.
func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}

// CanActFor reports whether the employee may read or write schedule records
// owned by the given employee ID.
func (e *Employee) CanActFor(employeeID string) bool {
	return e.ID == employeeID || e.IsAdmin()
}
