package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lumiere/config"
	"lumiere/cron"
	"lumiere/database"
	appointmentRepoPkg "lumiere/database/repository/appointment"
	blockedRepoPkg "lumiere/database/repository/blocked"
	catalogRepoPkg "lumiere/database/repository/catalog"
	employeeRepoPkg "lumiere/database/repository/employee"
	scheduleRepoPkg "lumiere/database/repository/schedule"
	"lumiere/handlers"
	"lumiere/routes"
	"lumiere/services/appointment"
	"lumiere/services/availability"
	"lumiere/services/catalog"
	"lumiere/services/employee"
	"lumiere/services/notification"
	"lumiere/services/schedule"
	"lumiere/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Push delivery is optional; without Firebase credentials the worker
	// simply skips push tasks.
	if _, err := os.Stat(config.AppConfig.FirebaseCredentialsFile); err == nil {
		utils.FirebaseInit()
	} else {
		logger.Sugar().Warn("main: firebase credentials not found, push notifications disabled")
	}

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	employeeRepo := employeeRepoPkg.NewMongoEmployeeRepo()
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	blockedRepo := blockedRepoPkg.NewMongoBlockedRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()

	// notification queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()
	notificationService := notification.NewNotificationService(asynqClient)
	cron.InitNotificationWorker(employeeRepo)

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		ScheduleRepo:       scheduleRepo,
		BlockedRepo:        blockedRepo,
		AppointmentRepo:    appointmentRepo,
		SlotGranularityMin: config.AppConfig.SlotGranularityMin,
	}
	scheduleService := &schedule.DefaultScheduleService{
		ScheduleRepo:       scheduleRepo,
		BlockedRepo:        blockedRepo,
		SlotGranularityMin: config.AppConfig.SlotGranularityMin,
	}
	appointmentService := &appointment.DefaultAppointmentService{
		AppointmentRepo:    appointmentRepo,
		BlockedRepo:        blockedRepo,
		CatalogRepo:        catalogRepo,
		Notifier:           notificationService,
		SlotGranularityMin: config.AppConfig.SlotGranularityMin,
	}
	employeeService := &employee.DefaultEmployeeService{Repo: employeeRepo}
	catalogService := &catalog.DefaultCatalogService{Repo: catalogRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		EmployeeRepo: employeeRepo,

		GetAvailableTimesHandler: handlers.GetAvailableTimesHandler(availabilityService),

		RequestAppointmentHandler: handlers.RequestAppointmentHandler(appointmentService),
		CancelAppointmentHandler:  handlers.CancelAppointmentHandler(appointmentService),

		ListAppointmentsHandler:       handlers.ListAppointmentsHandler(appointmentService),
		GetAppointmentHandler:         handlers.GetAppointmentHandler(appointmentService),
		AcceptAppointmentHandler:      handlers.AcceptAppointmentHandler(appointmentService),
		DeclineAppointmentHandler:     handlers.DeclineAppointmentHandler(appointmentService),
		StaffCancelAppointmentHandler: handlers.StaffCancelAppointmentHandler(appointmentService),

		CreateWindowHandler: handlers.CreateWindowHandler(scheduleService),
		UpdateWindowHandler: handlers.UpdateWindowHandler(scheduleService),
		DeleteWindowHandler: handlers.DeleteWindowHandler(scheduleService),
		ListWindowsHandler:  handlers.ListWindowsHandler(scheduleService),
		BlockRangeHandler:   handlers.BlockRangeHandler(scheduleService),
		UnblockHandler:      handlers.UnblockHandler(scheduleService),
		ListBlockedHandler:  handlers.ListBlockedHandler(scheduleService),

		LoginHandler:             handlers.LoginHandler(employeeService),
		RevokeHandler:            handlers.RevokeHandler(employeeService),
		UpdateDeviceTokenHandler: handlers.UpdateDeviceTokenHandler(employeeService),
		UpdateProfileHandler:     handlers.UpdateProfileHandler(employeeService),
		ChangePasswordHandler:    handlers.ChangePasswordHandler(employeeService),
		CreateEmployeeHandler:    handlers.CreateEmployeeHandler(employeeService),
		UpdateEmployeeHandler:    handlers.UpdateEmployeeHandler(employeeService),
		DeleteEmployeeHandler:    handlers.DeleteEmployeeHandler(employeeService),
		GetEmployeeHandler:       handlers.GetEmployeeHandler(employeeService),
		ListEmployeesHandler:     handlers.ListEmployeesHandler(employeeService),

		ListServicesHandler:  handlers.ListServicesHandler(catalogService),
		CreateServiceHandler: handlers.CreateServiceHandler(catalogService),
		UpdateServiceHandler: handlers.UpdateServiceHandler(catalogService),
		DeleteServiceHandler: handlers.DeleteServiceHandler(catalogService),
		ListPostsHandler:     handlers.ListPostsHandler(catalogService),
		CreatePostHandler:    handlers.CreatePostHandler(catalogService),
		UpdatePostHandler:    handlers.UpdatePostHandler(catalogService),
		DeletePostHandler:    handlers.DeletePostHandler(catalogService),

		UploadImageHandler: handlers.UploadImageHandler(cloudinaryStorageService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Periodic dependency health snapshot, exposed on /health/details.
	utils.StartHealthMonitor([]*redis.Client{utils.GetAuthCacheClient()}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
