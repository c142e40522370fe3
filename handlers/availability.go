package handlers

import (
	"net/http"

	"lumiere/services/availability"
	"lumiere/utils"

	"github.com/gin-gonic/gin"
)

// GetAvailableTimesHandler returns the bookable slot starts for one date.
// An optional employeeId query parameter narrows the result to one employee.
func GetAvailableTimesHandler(svc availability.AvailabilityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Param("date")
		employeeID := c.Query("employeeId")

		times, err := svc.GetAvailableTimes(c.Request.Context(), date, employeeID)
		if err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"date":  date,
			"times": times,
		})
	}
}
