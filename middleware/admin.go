package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin gates a route group behind the admin role. It must run after
// JWTAuthEmployeeMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		emp := EmployeeFromContext(c)
		if emp == nil {
			abortUnauthorized(c)
			return
		}
		if !emp.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Admin access required",
			})
			return
		}
		c.Next()
	}
}
