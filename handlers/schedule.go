package handlers

import (
	"net/http"

	"lumiere/middleware"
	"lumiere/models"
	"lumiere/services/schedule"
	"lumiere/utils"

	"github.com/gin-gonic/gin"
)

// CreateWindowHandler declares a weekly availability window. Staff without an
// explicit employeeId in the body declare for themselves.
func CreateWindowHandler(svc schedule.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.EmployeeFromContext(c)
		if actor == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		var av models.WeeklyAvailability
		if err := c.ShouldBindJSON(&av); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		if av.EmployeeID == "" {
			av.EmployeeID = actor.ID
		}
		if err := svc.CreateWindow(c.Request.Context(), actor, &av); err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, av)
	}
}

// UpdateWindowHandler replaces an existing window's day and times.
func UpdateWindowHandler(svc schedule.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.EmployeeFromContext(c)
		if actor == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		var av models.WeeklyAvailability
		if err := c.ShouldBindJSON(&av); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		av.ID = c.Param("id")
		if err := svc.UpdateWindow(c.Request.Context(), actor, &av); err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, av)
	}
}

// DeleteWindowHandler removes a weekly availability window.
func DeleteWindowHandler(svc schedule.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.EmployeeFromContext(c)
		if actor == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if err := svc.DeleteWindow(c.Request.Context(), actor, c.Param("id")); err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}

// ListWindowsHandler lists an employee's weekly windows. Without an
// employeeId query parameter it lists the actor's own.
func ListWindowsHandler(svc schedule.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.EmployeeFromContext(c)
		if actor == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		employeeID := c.Query("employeeId")
		if employeeID == "" {
			employeeID = actor.ID
		}
		windows, err := svc.ListWindows(c.Request.Context(), employeeID)
		if err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, windows)
	}
}

// BlockRangeHandler blocks a date range, expanding it into per-day segments.
func BlockRangeHandler(svc schedule.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.EmployeeFromContext(c)
		if actor == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		var req models.BlockedRangeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		if req.EmployeeID == "" {
			req.EmployeeID = actor.ID
		}
		created, err := svc.BlockRange(c.Request.Context(), actor, req)
		if err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// UnblockHandler removes one blocked segment.
func UnblockHandler(svc schedule.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.EmployeeFromContext(c)
		if actor == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if err := svc.UnblockSegment(c.Request.Context(), actor, c.Param("id")); err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}

// ListBlockedHandler lists an employee's blocked segments.
func ListBlockedHandler(svc schedule.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.EmployeeFromContext(c)
		if actor == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		employeeID := c.Query("employeeId")
		if employeeID == "" {
			employeeID = actor.ID
		}
		segments, err := svc.ListBlocked(c.Request.Context(), employeeID)
		if err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, segments)
	}
}
