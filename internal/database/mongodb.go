package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/artfolio/portfolio-api/internal/config"
)

// ErrNotConfigured is returned by Open when DATABASE_URL or DATABASE_NAME is missing.
var ErrNotConfigured = errors.New("database not configured")

// DB is the process-wide handle to the document store. It is created once
// at startup and only read afterwards.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// ConnectMongo opens a connection and returns the client. Caller should call client.Disconnect(ctx).
func ConnectMongo(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	clientOpts := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// Open connects to the configured database. It returns ErrNotConfigured
// when the connection values are absent.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}
	client, err := ConnectMongo(ctx, cfg.URL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &DB{client: client, db: client.Database(cfg.Name)}, nil
}

// Name returns the database name.
func (d *DB) Name() string {
	return d.db.Name()
}

// Collection returns a handle to the named collection.
func (d *DB) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

func (d *DB) ListCollectionNames(ctx context.Context) ([]string, error) {
	return d.db.ListCollectionNames(ctx, bson.D{})
}

// Close disconnects the underlying client.
func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
