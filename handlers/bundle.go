package handlers

import (
	employeeRepoPkg "lumiere/database/repository/employee"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	EmployeeRepo employeeRepoPkg.EmployeeRepository

	// Availability endpoints
	GetAvailableTimesHandler gin.HandlerFunc

	// Public appointment endpoints
	RequestAppointmentHandler gin.HandlerFunc
	CancelAppointmentHandler  gin.HandlerFunc

	// Staff appointment endpoints
	ListAppointmentsHandler       gin.HandlerFunc
	GetAppointmentHandler         gin.HandlerFunc
	AcceptAppointmentHandler      gin.HandlerFunc
	DeclineAppointmentHandler     gin.HandlerFunc
	StaffCancelAppointmentHandler gin.HandlerFunc

	// Schedule endpoints
	CreateWindowHandler gin.HandlerFunc
	UpdateWindowHandler gin.HandlerFunc
	DeleteWindowHandler gin.HandlerFunc
	ListWindowsHandler  gin.HandlerFunc
	BlockRangeHandler   gin.HandlerFunc
	UnblockHandler      gin.HandlerFunc
	ListBlockedHandler  gin.HandlerFunc

	// Staff account endpoints
	LoginHandler             gin.HandlerFunc
	RevokeHandler            gin.HandlerFunc
	UpdateDeviceTokenHandler gin.HandlerFunc
	UpdateProfileHandler     gin.HandlerFunc
	ChangePasswordHandler    gin.HandlerFunc
	CreateEmployeeHandler    gin.HandlerFunc
	UpdateEmployeeHandler    gin.HandlerFunc
	DeleteEmployeeHandler    gin.HandlerFunc
	GetEmployeeHandler       gin.HandlerFunc
	ListEmployeesHandler     gin.HandlerFunc

	// Catalog endpoints
	ListServicesHandler  gin.HandlerFunc
	CreateServiceHandler gin.HandlerFunc
	UpdateServiceHandler gin.HandlerFunc
	DeleteServiceHandler gin.HandlerFunc
	ListPostsHandler     gin.HandlerFunc
	CreatePostHandler    gin.HandlerFunc
	UpdatePostHandler    gin.HandlerFunc
	DeletePostHandler    gin.HandlerFunc

	// Media endpoints
	UploadImageHandler gin.HandlerFunc
}
