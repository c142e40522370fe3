package middleware

import (
	"context"
	"net/http"
	"strings"

	employeeRepo "lumiere/database/repository/employee"
	"lumiere/models"
	"lumiere/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// employeeContextKey is where the authenticated employee is stored on the
// gin context.
const employeeContextKey = "employee"

// JWTAuthEmployeeMiddleware authenticates staff requests. The bearer token
// must parse, and its hash must match the session hash stored on the account;
// logging out clears that hash and invalidates every outstanding token.
func JWTAuthEmployeeMiddleware(employees employeeRepo.EmployeeRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c)
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			abortUnauthorized(c)
			return
		}
		if _, err := utils.ValidateToken(tokenString); err != nil {
			abortUnauthorized(c)
			return
		}
		tokenHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + tokenHash

		// Fast path: session cached in Redis.
		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			employeeID, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil && employeeID != "" {
				emp, err := employees.GetByID(employeeID)
				if err == nil && emp != nil && emp.TokenHash == tokenHash {
					_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
					c.Set(employeeContextKey, emp)
					c.Next()
					return
				}
			} else if err != redis.Nil {
				utils.GetLogger().Warn("Auth cache lookup failed, falling back to DB", zap.Error(err))
			}
		}

		emp, err := employees.GetByTokenHash(tokenHash)
		if err != nil || emp == nil {
			abortUnauthorized(c)
			return
		}
		if authCache != nil {
			_ = authCache.Set(ctx, cacheKey, emp.ID, utils.AuthCacheTTL).Err()
		}

		c.Set(employeeContextKey, emp)
		c.Next()
	}
}

// EmployeeFromContext returns the authenticated employee set by the auth
// middleware, or nil when the request is unauthenticated.
func EmployeeFromContext(c *gin.Context) *models.Employee {
	val, exists := c.Get(employeeContextKey)
	if !exists {
		return nil
	}
	emp, ok := val.(*models.Employee)
	if !ok {
		return nil
	}
	return emp
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "Insufficient authorization",
	})
}
