package handlers

import (
	"net/http"

	"lumiere/middleware"
	"lumiere/models"
	"lumiere/services/appointment"
	"lumiere/utils"

	"github.com/gin-gonic/gin"
)

// RequestAppointmentHandler records a booking request from the public site.
func RequestAppointmentHandler(svc appointment.AppointmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AppointmentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		appt, err := svc.Request(c.Request.Context(), req)
		if err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, appt)
	}
}

// CancelAppointmentHandler cancels a booking from the public site.
func CancelAppointmentHandler(svc appointment.AppointmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		appt, err := svc.CancelByCustomer(c.Request.Context(), c.Param("id"))
		if err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, appt)
	}
}

// ListAppointmentsHandler lists appointments for the staff dashboard,
// filtered by optional date, status and employeeId query parameters.
func ListAppointmentsHandler(svc appointment.AppointmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := models.AppointmentFilter{
			Date:       c.Query("date"),
			Status:     c.Query("status"),
			EmployeeID: c.Query("employeeId"),
		}
		appts, err := svc.List(c.Request.Context(), filter)
		if err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, appts)
	}
}

// GetAppointmentHandler returns one appointment for the staff dashboard.
func GetAppointmentHandler(svc appointment.AppointmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		appt, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, appt)
	}
}

// AcceptAppointmentHandler assigns a pending appointment to an employee.
func AcceptAppointmentHandler(svc appointment.AppointmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.EmployeeFromContext(c)
		if actor == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		var body struct {
			EmployeeID string `json:"employeeId"`
		}
		// Body is optional; an empty one assigns the appointment to the actor.
		_ = c.ShouldBindJSON(&body)

		appt, err := svc.Accept(c.Request.Context(), actor, c.Param("id"), body.EmployeeID)
		if err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, appt)
	}
}

// DeclineAppointmentHandler rejects a pending appointment with a reason.
func DeclineAppointmentHandler(svc appointment.AppointmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.EmployeeFromContext(c)
		if actor == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		var body struct {
			Reason string `json:"reason"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		appt, err := svc.Decline(c.Request.Context(), actor, c.Param("id"), body.Reason)
		if err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, appt)
	}
}

// StaffCancelAppointmentHandler cancels an accepted appointment from the
// dashboard.
func StaffCancelAppointmentHandler(svc appointment.AppointmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.EmployeeFromContext(c)
		if actor == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		appt, err := svc.CancelByStaff(c.Request.Context(), actor, c.Param("id"))
		if err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, appt)
	}
}
