package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionProvider is satisfied by *database.DB.
type CollectionProvider interface {
	Collection(name string) *mongo.Collection
}

// MongoStore implements DocumentStore on top of a MongoDB database.
// Each record is stored with created_at/updated_at timestamps and the
// driver-generated _id.
type MongoStore struct {
	db CollectionProvider
}

func NewMongoStore(db CollectionProvider) *MongoStore {
	return &MongoStore{db: db}
}

func (m *MongoStore) CreateDocument(ctx context.Context, collection string, record any) (string, error) {
	if collection == "" {
		return "", ErrEmptyCollection
	}
	doc, err := toDocument(record, time.Now().UTC())
	if err != nil {
		return "", err
	}
	res, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	return idString(res.InsertedID), nil
}

// toDocument flattens record into an ordered bson document and stamps it.
func toDocument(record any, now time.Time) (bson.D, error) {
	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	doc = append(doc,
		bson.E{Key: "created_at", Value: now},
		bson.E{Key: "updated_at", Value: now},
	)
	return doc, nil
}

func idString(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
