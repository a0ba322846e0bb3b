package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the portfolio API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg gin.IRoutes) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerHTML))
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Artist Portfolio API — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "Artist Portfolio API", "version": "v1.0.0" },
  "components": {
    "schemas": {
      "Project": {
        "type": "object",
        "required": ["title", "description", "image", "tags", "link"],
        "properties": {
          "title": {"type": "string"},
          "description": {"type": "string"},
          "image": {"type": "string", "format": "uri"},
          "tags": {"type": "array", "items": {"type": "string"}},
          "link": {"type": "string", "nullable": true}
        }
      },
      "ContactMessage": {
        "type": "object",
        "required": ["name", "email", "message"],
        "properties": {
          "name": {"type": "string", "maxLength": 120},
          "email": {"type": "string", "format": "email"},
          "message": {"type": "string", "maxLength": 5000},
          "subject": {"type": "string", "maxLength": 200},
          "phone": {"type": "string", "maxLength": 40}
        }
      },
      "ValidationError": {
        "type": "object",
        "properties": {
          "detail": {"type": "array", "items": {"type": "object", "properties": {
            "loc": {"type": "array", "items": {"type": "string"}},
            "msg": {"type": "string"},
            "type": {"type": "string"}
          }}}
        }
      }
    }
  },
  "paths": {
    "/": { "get": { "summary": "Liveness message", "responses": { "200": { "description": "API is running" } } } },
    "/api/hello": { "get": { "summary": "Greeting", "responses": { "200": { "description": "greeting message" } } } },
    "/test": { "get": { "summary": "Database diagnostics", "responses": { "200": { "description": "diagnostic report; never fails" } } } },
    "/projects": {
      "get": {
        "summary": "List portfolio projects",
        "responses": { "200": { "description": "projects in fixed order", "content": { "application/json": { "schema": {"type": "array", "items": {"$ref": "#/components/schemas/Project"}} } } } }
      }
    },
    "/contact": {
      "post": {
        "summary": "Submit the contact form",
        "requestBody": { "required": true, "content": { "application/json": { "schema": {"$ref": "#/components/schemas/ContactMessage"} } } },
        "responses": {
          "200": { "description": "stored; returns status and id" },
          "422": { "description": "validation failed", "content": { "application/json": { "schema": {"$ref": "#/components/schemas/ValidationError"} } } },
          "500": { "description": "persistence failed" }
        }
      }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "text exposition" } } } }
  }
}`
