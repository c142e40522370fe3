package notification

import (
	"context"

	"lumiere/models"
	"lumiere/services/tasks"
	"lumiere/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// PublishAppointmentEvent enqueues email and SMS delivery for the customer
// and, when the event names an employee, a push notification for staff.
// Enqueue failures are logged and swallowed.
func (s *DefaultNotificationService) PublishAppointmentEvent(ctx context.Context, ev models.AppointmentEvent) {
	logger := utils.GetLogger()

	email, err := tasks.NewEmailNotificationTask(ev)
	if err != nil {
		logger.Error("Failed to build email notification task", zap.Error(err))
	} else {
		s.enqueue(ctx, email, ev)
	}

	sms, err := tasks.NewSMSNotificationTask(ev)
	if err != nil {
		logger.Error("Failed to build sms notification task", zap.Error(err))
	} else {
		s.enqueue(ctx, sms, ev)
	}

	if ev.EmployeeID != "" {
		push, err := tasks.NewPushNotificationTask(ev)
		if err != nil {
			logger.Error("Failed to build push notification task", zap.Error(err))
		} else {
			s.enqueue(ctx, push, ev)
		}
	}
}

func (s *DefaultNotificationService) enqueue(ctx context.Context, task *asynq.Task, ev models.AppointmentEvent) {
	info, err := s.Client.EnqueueContext(ctx, task, asynq.MaxRetry(5))
	if err != nil {
		utils.GetLogger().Error("Failed to enqueue notification task",
			zap.String("type", task.Type()),
			zap.String("event", ev.Type),
			zap.String("appointmentId", ev.AppointmentID),
			zap.Error(err))
		return
	}
	utils.GetLogger().Debug("Notification task enqueued",
		zap.String("type", task.Type()),
		zap.String("queue", info.Queue),
		zap.String("taskId", info.ID))
}
