package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Defaults for MongoOptions.
const (
	DefaultMongoURI        = "mongodb://localhost:27017"
	DefaultMongoDatabase   = "radii"
	DefaultMongoCollection = "state"
)

// MongoOptions configures a MongoStore.
type MongoOptions struct {
	URI        string
	Database   string
	Collection string
}

// MongoStore keeps each state blob in its own document, keyed by _id.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// stateDocument stores the blob as a string so it stays readable in the
// mongo shell.
type stateDocument struct {
	Key       string    `bson:"_id"`
	Data      string    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, opts MongoOptions) (*MongoStore, error) {
	if opts.URI == "" {
		opts.URI = DefaultMongoURI
	}
	if opts.Database == "" {
		opts.Database = DefaultMongoDatabase
	}
	if opts.Collection == "" {
		opts.Collection = DefaultMongoCollection
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	err = retry(ctx, pingAttempts, pingDelay, func() error {
		return retryable(client.Ping(ctx, nil))
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(opts.Database).Collection(opts.Collection),
	}, nil
}

func (s *MongoStore) Load(ctx context.Context, key string) ([]byte, error) {
	var doc stateDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	return []byte(doc.Data), nil
}

func (s *MongoStore) Save(ctx context.Context, key string, data []byte) error {
	doc := stateDocument{Key: key, Data: string(data), UpdatedAt: time.Now().UTC()}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo replace: %w", err)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("mongo delete: %w", err)
	}
	return nil
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
