package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"

	"lumiere/config"
	employeeRepo "lumiere/database/repository/employee"
	"lumiere/models"
	"lumiere/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/go-resty/resty/v2"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func handleEmailTask(ctx context.Context, task *asynq.Task) error {
	var ev models.AppointmentEvent
	if err := json.Unmarshal(task.Payload(), &ev); err != nil {
		utils.GetLogger().Error("Invalid email task payload", zap.Error(err))
		return err
	}
	if config.AppConfig.SMTPHost == "" {
		utils.GetLogger().Debug("SMTP not configured, skipping email",
			zap.String("appointmentId", ev.AppointmentID))
		return nil
	}

	subject, body := renderCustomerMessage(ev)
	msg := []byte("From: " + config.AppConfig.SMTPFrom + "\r\n" +
		"To: " + ev.CustomerEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body + "\r\n")

	addr := config.AppConfig.SMTPHost + ":" + config.AppConfig.SMTPPort
	var auth smtp.Auth
	if config.AppConfig.SMTPUser != "" {
		auth = smtp.PlainAuth("", config.AppConfig.SMTPUser, config.AppConfig.SMTPPass, config.AppConfig.SMTPHost)
	}
	if err := smtp.SendMail(addr, auth, config.AppConfig.SMTPFrom, []string{ev.CustomerEmail}, msg); err != nil {
		utils.GetLogger().Error("Failed to send email",
			zap.String("appointmentId", ev.AppointmentID),
			zap.Error(err))
		return err
	}
	return nil
}

func handleSMSTask(ctx context.Context, task *asynq.Task) error {
	var ev models.AppointmentEvent
	if err := json.Unmarshal(task.Payload(), &ev); err != nil {
		utils.GetLogger().Error("Invalid sms task payload", zap.Error(err))
		return err
	}
	if config.AppConfig.SMSGatewayURL == "" {
		utils.GetLogger().Debug("SMS gateway not configured, skipping sms",
			zap.String("appointmentId", ev.AppointmentID))
		return nil
	}

	_, body := renderCustomerMessage(ev)
	resp, err := resty.New().R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+config.AppConfig.SMSGatewayKey).
		SetBody(map[string]string{
			"to":      ev.CustomerPhone,
			"message": body,
		}).
		Post(config.AppConfig.SMSGatewayURL)
	if err != nil {
		utils.GetLogger().Error("Failed to reach sms gateway",
			zap.String("appointmentId", ev.AppointmentID),
			zap.Error(err))
		return err
	}
	if resp.IsError() {
		err := fmt.Errorf("sms gateway returned %s", resp.Status())
		utils.GetLogger().Error("SMS gateway rejected message",
			zap.String("appointmentId", ev.AppointmentID),
			zap.Int("status", resp.StatusCode()))
		return err
	}
	return nil
}

func handlePushTask(employees employeeRepo.EmployeeRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var ev models.AppointmentEvent
		if err := json.Unmarshal(task.Payload(), &ev); err != nil {
			utils.GetLogger().Error("Invalid push task payload", zap.Error(err))
			return err
		}
		if utils.FCMClient == nil {
			utils.GetLogger().Debug("FCM not configured, skipping push",
				zap.String("appointmentId", ev.AppointmentID))
			return nil
		}

		emp, err := employees.GetByID(ev.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to fetch employee for push: %w", err)
		}
		if emp == nil || emp.FCMToken == "" {
			// Nothing to deliver to; not an error worth retrying.
			return nil
		}

		title, body := renderStaffMessage(ev)
		_, err = utils.FCMClient.Send(ctx, &messaging.Message{
			Token: emp.FCMToken,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: map[string]string{
				"appointmentId": ev.AppointmentID,
				"type":          ev.Type,
			},
		})
		if err != nil {
			utils.GetLogger().Error("Failed to send push notification",
				zap.String("appointmentId", ev.AppointmentID),
				zap.String("employeeId", ev.EmployeeID),
				zap.Error(err))
			return err
		}
		return nil
	}
}

// renderCustomerMessage builds the customer-facing subject and body for a
// lifecycle event.
func renderCustomerMessage(ev models.AppointmentEvent) (subject, body string) {
	salon := config.AppConfig.SalonName
	when := fmt.Sprintf("%s at %s", ev.Date, ev.Time)

	switch ev.Type {
	case models.EventAppointmentRequested:
		subject = fmt.Sprintf("%s: we received your booking request", salon)
		body = fmt.Sprintf("Hi %s, we received your request for %s on %s. We'll confirm it shortly.",
			ev.CustomerName, ev.ServiceName, when)
	case models.EventAppointmentAccepted:
		subject = fmt.Sprintf("%s: your appointment is confirmed", salon)
		body = fmt.Sprintf("Hi %s, your %s on %s is confirmed. See you then!",
			ev.CustomerName, ev.ServiceName, when)
	case models.EventAppointmentDeclined:
		subject = fmt.Sprintf("%s: we couldn't confirm your appointment", salon)
		body = fmt.Sprintf("Hi %s, unfortunately we can't take your %s on %s. Reason: %s. Please pick another time.",
			ev.CustomerName, ev.ServiceName, when, ev.Reason)
	case models.EventAppointmentCancelled:
		subject = fmt.Sprintf("%s: your appointment was cancelled", salon)
		body = fmt.Sprintf("Hi %s, your %s on %s has been cancelled.",
			ev.CustomerName, ev.ServiceName, when)
	default:
		subject = fmt.Sprintf("%s: appointment update", salon)
		body = fmt.Sprintf("Hi %s, there is an update for your %s on %s.",
			ev.CustomerName, ev.ServiceName, when)
	}
	return subject, body
}

// renderStaffMessage builds the staff push notification for a lifecycle event.
func renderStaffMessage(ev models.AppointmentEvent) (title, body string) {
	when := fmt.Sprintf("%s at %s", ev.Date, ev.Time)

	switch ev.Type {
	case models.EventAppointmentRequested:
		title = "New booking request"
	case models.EventAppointmentAccepted:
		title = "Appointment confirmed"
	case models.EventAppointmentCancelled:
		title = "Appointment cancelled"
	default:
		title = "Appointment update"
	}
	body = fmt.Sprintf("%s for %s, %s", ev.ServiceName, ev.CustomerName, when)
	return title, body
}
