package cron

import (
	"context"
	"time"

	"lumiere/config"
	employeeRepo "lumiere/database/repository/employee"
	"lumiere/services/tasks"
	"lumiere/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitNotificationWorker runs the asynq delivery worker in the background. It
// drains the email, SMS and push queues fed by the notification publisher.
func InitNotificationWorker(employees employeeRepo.EmployeeRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeEmailNotification, handleEmailTask)
	mux.HandleFunc(tasks.TypeSMSNotification, handleSMSTask)
	mux.HandleFunc(tasks.TypePushNotification, handlePushTask(employees))

	go monitorRedisConnection()

	go func() {
		logger := utils.GetLogger()
		logger.Info("Starting notification worker")
		const maxAttempts = 5

		for attempt := 1; attempt <= maxAttempts; attempt++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("Notification worker failed to start",
					zap.Int("attempt", attempt),
					zap.Int("maxAttempts", maxAttempts),
					zap.Error(err))
				if attempt == maxAttempts {
					logger.Fatal("Notification worker exhausted startup retries")
				}
				time.Sleep(time.Duration(attempt*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			utils.GetLogger().Warn("Redis queue connection lost", zap.Error(err))
		}
		time.Sleep(10 * time.Second)
	}
}
