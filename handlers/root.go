package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoot registers the liveness and greeting endpoints.
func RegisterRoot(r gin.IRoutes) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Artist Portfolio API is running"})
	})
	r.GET("/api/hello", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})
}
