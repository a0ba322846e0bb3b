package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/artfolio/portfolio-api/internal/contact"
	"github.com/artfolio/portfolio-api/internal/contact/service"
	"github.com/artfolio/portfolio-api/pkg/metrics"
	"github.com/artfolio/portfolio-api/pkg/validation"
)

// RegisterContactRoutes registers POST /contact. Extra middleware (the
// optional rate limiter) runs before the handler.
func RegisterContactRoutes(r gin.IRoutes, svc service.Service, mw ...gin.HandlerFunc) {
	validation.Setup()
	chain := make([]gin.HandlerFunc, 0, len(mw)+1)
	chain = append(chain, mw...)
	chain = append(chain, submit(svc))
	r.POST("/contact", chain...)
}

// submit binds and validates the body, then hands it to the service.
// Validation failures are 422 with per-field detail; store failures are 500
// with the error text.
func submit(svc service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var msg contact.ContactMessage
		if err := bindContact(c, &msg); err != nil {
			metrics.ContactSubmissions.WithLabelValues(metrics.ResultValidationError).Inc()
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": validation.Describe(err)})
			return
		}
		id, err := svc.Submit(c.Request.Context(), &msg)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "id": id})
	}
}

// bindContact decodes exactly one JSON document from the body and runs the
// binding rules on it. gin's JSON binding stops after the first value, so
// trailing bytes are checked here.
func bindContact(c *gin.Context, msg *contact.ContactMessage) error {
	body, err := c.GetRawData()
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(msg); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w at offset %d", validation.ErrTrailingData, dec.InputOffset())
	}
	return binding.Validator.ValidateStruct(msg)
}
