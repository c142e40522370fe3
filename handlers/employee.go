package handlers

import (
	"net/http"

	"lumiere/middleware"
	"lumiere/models"
	"lumiere/services/employee"
	"lumiere/utils"

	"github.com/gin-gonic/gin"
)

// LoginHandler authenticates a staff member and issues a session token.
func LoginHandler(svc employee.EmployeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		token, emp, err := svc.Login(c.Request.Context(), body.Email, body.Password)
		if err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"token":    token,
			"employee": emp,
		})
	}
}

// RevokeHandler invalidates the actor's current session token.
func RevokeHandler(svc employee.EmployeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.EmployeeFromContext(c)
		if actor == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if err := svc.Revoke(c.Request.Context(), actor.ID); err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"revoked": true})
	}
}

// UpdateDeviceTokenHandler stores the actor's push delivery token.
func UpdateDeviceTokenHandler(svc employee.EmployeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.EmployeeFromContext(c)
		if actor == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		var body struct {
			FCMToken string `json:"fcmToken" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		if err := svc.UpdateFCMToken(c.Request.Context(), actor.ID, body.FCMToken); err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"updated": true})
	}
}

// UpdateProfileHandler modifies the actor's own name and phone number.
func UpdateProfileHandler(svc employee.EmployeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.EmployeeFromContext(c)
		if actor == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		var body struct {
			Name        string `json:"name" binding:"required"`
			PhoneNumber string `json:"phoneNumber"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		emp, err := svc.UpdateProfile(c.Request.Context(), actor, body.Name, body.PhoneNumber)
		if err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, emp)
	}
}

// ChangePasswordHandler replaces the actor's password.
func ChangePasswordHandler(svc employee.EmployeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.EmployeeFromContext(c)
		if actor == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		var body struct {
			CurrentPassword string `json:"currentPassword" binding:"required"`
			NewPassword     string `json:"newPassword" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		if err := svc.ChangePassword(c.Request.Context(), actor, body.CurrentPassword, body.NewPassword); err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"updated": true})
	}
}

// CreateEmployeeHandler registers a new staff account (admin only).
func CreateEmployeeHandler(svc employee.EmployeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.EmployeeFromContext(c)
		if actor == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		var body struct {
			Name        string `json:"name" binding:"required"`
			Email       string `json:"email" binding:"required,email"`
			PhoneNumber string `json:"phoneNumber"`
			Role        string `json:"role" binding:"required"`
			Password    string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		emp := &models.Employee{
			Name:        body.Name,
			Email:       body.Email,
			PhoneNumber: body.PhoneNumber,
			Role:        body.Role,
		}
		if err := svc.Create(c.Request.Context(), actor, emp, body.Password); err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, emp)
	}
}

// UpdateEmployeeHandler modifies a staff account (admin only).
func UpdateEmployeeHandler(svc employee.EmployeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.EmployeeFromContext(c)
		if actor == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		var emp models.Employee
		if err := c.ShouldBindJSON(&emp); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		emp.ID = c.Param("id")
		if err := svc.Update(c.Request.Context(), actor, &emp); err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, emp)
	}
}

// DeleteEmployeeHandler removes a staff account (admin only).
func DeleteEmployeeHandler(svc employee.EmployeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.EmployeeFromContext(c)
		if actor == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if err := svc.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}

// GetEmployeeHandler returns one staff account.
func GetEmployeeHandler(svc employee.EmployeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		emp, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, emp)
	}
}

// ListEmployeesHandler lists all staff accounts.
func ListEmployeesHandler(svc employee.EmployeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		employees, err := svc.List(c.Request.Context())
		if err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, employees)
	}
}
