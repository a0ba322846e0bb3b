package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artfolio/portfolio-api/internal/diagnostics"
)

// RegisterDiagnostics registers GET /test. db may be nil. The route always
// answers 200; the database state is carried in the body.
func RegisterDiagnostics(r gin.IRoutes, db diagnostics.Inspector, env diagnostics.Env) {
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, diagnostics.Run(c.Request.Context(), db, env))
	})
}
