// Package mongostore implements the whole-document store on MongoDB: one Mongo
// document per logical collection, keyed by collection name, with the body
// kept as the same JSON blob the file driver writes. Swapping to this driver
// changes durability characteristics, not manager behaviour.
package mongostore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultTimeout = 10 * time.Second
	collectionName = "documents"
)

// Config captures the minimal settings required to establish a connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a client, verifies connectivity with a ping, and returns
// a Store over the target database.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *Store, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, &Store{coll: client.Database(cfg.Database).Collection(collectionName)}, nil
}

type document struct {
	ID   string `bson:"_id"`
	Body []byte `bson:"body"`
}

// Store persists each logical collection as a single Mongo document.
type Store struct {
	coll *mongo.Collection
}

func (s *Store) Load(ctx context.Context, collection string, out any) (bool, error) {
	var doc document
	err := s.coll.FindOne(ctx, bson.M{"_id": collection}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("mongo store: find %s: %w", collection, err)
	}
	if err := json.Unmarshal(doc.Body, out); err != nil {
		return false, fmt.Errorf("mongo store: decode %s: %w", collection, err)
	}
	return true, nil
}

func (s *Store) Save(ctx context.Context, collection string, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("mongo store: encode %s: %w", collection, err)
	}

	_, err = s.coll.ReplaceOne(ctx,
		bson.M{"_id": collection},
		document{ID: collection, Body: body},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("mongo store: replace %s: %w", collection, err)
	}
	return nil
}
