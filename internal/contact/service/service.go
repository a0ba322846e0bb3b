package service

import (
	"context"

	"github.com/artfolio/portfolio-api/internal/contact"
	"github.com/artfolio/portfolio-api/internal/contact/repository"
	"github.com/artfolio/portfolio-api/pkg/logger"
	"github.com/artfolio/portfolio-api/pkg/metrics"
)

// Service defines the contact operations used by the handler layer.
type Service interface {
	Submit(ctx context.Context, msg *contact.ContactMessage) (string, error)
}

// New returns a Service writing to store.
func New(store repository.DocumentStore) Service {
	return &contactService{store: store}
}

type contactService struct {
	store repository.DocumentStore
}

// Submit persists msg into the contact collection and returns the generated id.
// Store errors are returned unchanged.
func (s *contactService) Submit(ctx context.Context, msg *contact.ContactMessage) (string, error) {
	id, err := s.store.CreateDocument(ctx, contact.CollectionName, msg)
	if err != nil {
		metrics.ContactSubmissions.WithLabelValues(metrics.ResultStoreError).Inc()
		logger.Warnf("contact: insert into %s failed: %v", contact.CollectionName, err)
		return "", err
	}
	metrics.ContactSubmissions.WithLabelValues(metrics.ResultOK).Inc()
	logger.InfoFields("contact: message stored", logger.Fields{"collection": contact.CollectionName, "id": id})
	return id, nil
}
