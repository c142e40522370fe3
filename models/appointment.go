package models

import "time"

// Appointment statuses. Pending is the only non-terminal state; cancellation
// is reachable from pending and accepted only.
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusDeclined  = "declined"
	StatusCancelled = "cancelled"
)

// Appointment is a customer booking request for a single slot on the booking
// grid. Only accepted appointments consume a slot from the resolver's
// perspective.
type Appointment struct {
	ID                  string    `bson:"id" json:"id"`
	CustomerName        string    `bson:"customerName" json:"customerName"`
	CustomerEmail       string    `bson:"customerEmail" json:"customerEmail"`
	CustomerPhone       string    `bson:"customerPhone" json:"customerPhone"`
	ServiceID           string    `bson:"serviceId" json:"serviceId"`
	ServiceName         string    `bson:"serviceName" json:"serviceName"`
	Date                string    `bson:"date" json:"date"` // "2006-01-02"
	Time                string    `bson:"time" json:"time"` // "HH:MM:SS", grid-aligned
	Status              string    `bson:"status" json:"status"`
	RequestedEmployeeID string    `bson:"requestedEmployeeId,omitempty" json:"requestedEmployeeId,omitempty"`
	AcceptedEmployeeID  string    `bson:"acceptedEmployeeId,omitempty" json:"acceptedEmployeeId,omitempty"`
	DeclineReason       string    `bson:"declineReason,omitempty" json:"declineReason,omitempty"`
	Note                string    `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt           time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time `bson:"updated_at" json:"updated_at"`
}

// AppointmentRequest is the public booking payload.
type AppointmentRequest struct {
	CustomerName        string `json:"customerName" binding:"required"`
	CustomerEmail       string `json:"customerEmail" binding:"required,email"`
	CustomerPhone       string `json:"customerPhone" binding:"required"`
	ServiceID           string `json:"serviceId" binding:"required"`
	Date                string `json:"date" binding:"required"`
	Time                string `json:"time" binding:"required"`
	RequestedEmployeeID string `json:"requestedEmployeeId"`
	Note                string `json:"note"`
}

// AppointmentFilter narrows dashboard listings.
type AppointmentFilter struct {
	Date       string
	Status     string
	EmployeeID string
}
