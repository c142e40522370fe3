package tasks

import (
	"encoding/json"
	"fmt"

	"lumiere/models"

	"github.com/hibiken/asynq"
)

// Task type names routed by the background worker.
const (
	TypeEmailNotification = "notify:email"
	TypeSMSNotification   = "notify:sms"
	TypePushNotification  = "notify:push"
)

// NewEmailNotificationTask packages an appointment event for email delivery.
func NewEmailNotificationTask(ev models.AppointmentEvent) (*asynq.Task, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal email notification payload: %w", err)
	}
	return asynq.NewTask(TypeEmailNotification, payload), nil
}

// NewSMSNotificationTask packages an appointment event for SMS delivery.
func NewSMSNotificationTask(ev models.AppointmentEvent) (*asynq.Task, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sms notification payload: %w", err)
	}
	return asynq.NewTask(TypeSMSNotification, payload), nil
}

// NewPushNotificationTask packages an appointment event for staff push
// delivery. It only makes sense when the event names an employee.
func NewPushNotificationTask(ev models.AppointmentEvent) (*asynq.Task, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal push notification payload: %w", err)
	}
	return asynq.NewTask(TypePushNotification, payload), nil
}
