package handlers

import (
	"net/http"

	"lumiere/middleware"
	"lumiere/models"
	"lumiere/services/catalog"
	"lumiere/utils"

	"github.com/gin-gonic/gin"
)

// ListServicesHandler lists salon services. The public surface only sees
// active ones; staff may pass all=true to include retired services.
func ListServicesHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		activeOnly := c.Query("all") != "true"
		services, err := svc.ListServices(c.Request.Context(), activeOnly)
		if err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, services)
	}
}

// CreateServiceHandler adds a bookable salon service.
func CreateServiceHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.EmployeeFromContext(c)
		if actor == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		var item models.SalonService
		if err := c.ShouldBindJSON(&item); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		if err := svc.CreateService(c.Request.Context(), actor, &item); err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// UpdateServiceHandler modifies a salon service.
func UpdateServiceHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.EmployeeFromContext(c)
		if actor == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		var item models.SalonService
		if err := c.ShouldBindJSON(&item); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		item.ID = c.Param("id")
		if err := svc.UpdateService(c.Request.Context(), actor, &item); err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DeleteServiceHandler removes a salon service.
func DeleteServiceHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.EmployeeFromContext(c)
		if actor == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if err := svc.DeleteService(c.Request.Context(), actor, c.Param("id")); err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}

// ListPostsHandler lists news posts, newest first.
func ListPostsHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := svc.ListPosts(c.Request.Context())
		if err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, posts)
	}
}

// CreatePostHandler publishes a news post.
func CreatePostHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.EmployeeFromContext(c)
		if actor == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		var post models.Post
		if err := c.ShouldBindJSON(&post); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		if err := svc.CreatePost(c.Request.Context(), actor, &post); err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, post)
	}
}

// UpdatePostHandler modifies a news post.
func UpdatePostHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.EmployeeFromContext(c)
		if actor == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		var post models.Post
		if err := c.ShouldBindJSON(&post); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		post.ID = c.Param("id")
		if err := svc.UpdatePost(c.Request.Context(), actor, &post); err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// DeletePostHandler removes a news post.
func DeletePostHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.EmployeeFromContext(c)
		if actor == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if err := svc.DeletePost(c.Request.Context(), actor, c.Param("id")); err != nil {
			utils.JSONServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}
