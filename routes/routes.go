package routes

import (
	"net/http"
	"time"

	"lumiere/handlers"
	"lumiere/middleware"
	"lumiere/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the customer-facing endpoints. No
// authentication; availability, catalog and booking requests are open.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/availability/available-times/:date", hb.GetAvailableTimesHandler)
		api.GET("/services", hb.ListServicesHandler)
		api.GET("/posts", hb.ListPostsHandler)
		api.POST("/appointments", hb.RequestAppointmentHandler)
		api.DELETE("/appointments/:id", hb.CancelAppointmentHandler)
	}
}

// RegisterStaffRoutes registers the authenticated dashboard endpoints.
func RegisterStaffRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	staff := r.Group("/api/staff")
	{
		staff.POST("/login", hb.LoginHandler)

		staff.Use(middleware.JWTAuthEmployeeMiddleware(hb.EmployeeRepo))
		staff.DELETE("/revoke", hb.RevokeHandler)
		staff.PUT("/device-token", hb.UpdateDeviceTokenHandler)
		staff.PUT("/profile", hb.UpdateProfileHandler)
		staff.PUT("/password", hb.ChangePasswordHandler)

		// Appointments
		staff.GET("/appointments", hb.ListAppointmentsHandler)
		staff.GET("/appointments/:id", hb.GetAppointmentHandler)
		staff.PUT("/appointments/:id/accept", hb.AcceptAppointmentHandler)
		staff.PUT("/appointments/:id/decline", hb.DeclineAppointmentHandler)
		staff.PUT("/appointments/:id/cancel", hb.StaffCancelAppointmentHandler)

		// Weekly availability
		staff.GET("/schedule", hb.ListWindowsHandler)
		staff.POST("/schedule", hb.CreateWindowHandler)
		staff.PUT("/schedule/:id", hb.UpdateWindowHandler)
		staff.DELETE("/schedule/:id", hb.DeleteWindowHandler)

		// Blocked intervals
		staff.GET("/blocked", hb.ListBlockedHandler)
		staff.POST("/blocked", hb.BlockRangeHandler)
		staff.DELETE("/blocked/:id", hb.UnblockHandler)

		// Service catalog
		staff.POST("/services", hb.CreateServiceHandler)
		staff.PUT("/services/:id", hb.UpdateServiceHandler)
		staff.DELETE("/services/:id", hb.DeleteServiceHandler)

		// Posts
		staff.POST("/posts", hb.CreatePostHandler)
		staff.PUT("/posts/:id", hb.UpdatePostHandler)
		staff.DELETE("/posts/:id", hb.DeletePostHandler)

		// Media uploads
		staff.POST("/uploads", hb.UploadImageHandler)
	}
}

// RegisterAdminRoutes registers staff account administration.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin")
	{
		admin.Use(middleware.JWTAuthEmployeeMiddleware(hb.EmployeeRepo))
		admin.Use(middleware.RequireAdmin())

		// Staff accounts
		admin.GET("/employees", hb.ListEmployeesHandler)
		admin.GET("/employees/:id", hb.GetEmployeeHandler)
		admin.POST("/employees", hb.CreateEmployeeHandler)
		admin.PUT("/employees/:id", hb.UpdateEmployeeHandler)
		admin.DELETE("/employees/:id", hb.DeleteEmployeeHandler)
	}
}

// RegisterHealthRoute registers the health-check endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Lumière"})
	})
	r.GET("/health/details", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterPublicRoutes(r, hb)
	RegisterStaffRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
