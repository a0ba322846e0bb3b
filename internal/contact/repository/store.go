package repository

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrEmptyCollection = errors.New("collection name is empty")
	ErrUnavailable     = errors.New("database unavailable")
)

// DocumentStore inserts a record into a named collection and returns the
// store-generated identifier.
type DocumentStore interface {
	CreateDocument(ctx context.Context, collection string, record any) (string, error)
}

// UnavailableStore stands in for the document store when no database handle
// could be obtained at startup. Every write fails with the startup reason.
type UnavailableStore struct {
	Reason error
}

func NewUnavailableStore(reason error) *UnavailableStore {
	return &UnavailableStore{Reason: reason}
}

func (u *UnavailableStore) CreateDocument(ctx context.Context, collection string, record any) (string, error) {
	if collection == "" {
		return "", ErrEmptyCollection
	}
	if u.Reason == nil {
		return "", ErrUnavailable
	}
	return "", fmt.Errorf("%w: %w", ErrUnavailable, u.Reason)
}
