package models

// Appointment lifecycle event types published to the notification queue.
const (
	EventAppointmentRequested = "appointment:requested"
	EventAppointmentAccepted  = "appointment:accepted"
	EventAppointmentDeclined  = "appointment:declined"
	EventAppointmentCancelled = "appointment:cancelled"
)

// AppointmentEvent is the payload carried by notification tasks. Delivery is
// fire-and-forget; nothing in the lifecycle depends on it.
type AppointmentEvent struct {
	Type          string `json:"type"`
	AppointmentID string `json:"appointmentId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	EmployeeID    string `json:"employeeId,omitempty"`
	ServiceName   string `json:"serviceName"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Reason        string `json:"reason,omitempty"`
}
