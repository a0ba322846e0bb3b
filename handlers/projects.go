package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artfolio/portfolio-api/internal/portfolio"
)

// RegisterProjects registers GET /projects, serving the static catalogue.
func RegisterProjects(r gin.IRoutes) {
	r.GET("/projects", func(c *gin.Context) {
		c.JSON(http.StatusOK, portfolio.Projects())
	})
}
