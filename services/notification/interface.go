package notification

import (
	"context"

	"lumiere/models"

	"github.com/hibiken/asynq"
)

// NotificationService fans appointment lifecycle events out to the delivery
// queue. Publishing is strictly fire-and-forget; callers never learn about
// delivery problems and must not depend on them.
type NotificationService interface {
	PublishAppointmentEvent(ctx context.Context, ev models.AppointmentEvent)
}

// DefaultNotificationService enqueues delivery tasks on Redis via asynq.
type DefaultNotificationService struct {
	Client *asynq.Client
}

// NewNotificationService returns a queue-backed publisher.
func NewNotificationService(client *asynq.Client) *DefaultNotificationService {
	return &DefaultNotificationService{Client: client}
}
