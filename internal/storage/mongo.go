package storage

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCollection is the collection name used by the Mongo backend.
const MongoCollection = "kv_store"

type kvDocument struct {
	Key       string    `bson:"_id"`
	Value     []byte    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Mongo keeps one document per key, using the key as _id.
type Mongo struct {
	coll *mongo.Collection
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{coll: db.Collection(MongoCollection)}
}

func (s *Mongo) Get(ctx context.Context, key string) ([]byte, error) {
	var doc kvDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.Value, nil
}

func (s *Mongo) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": key},
		kvDocument{Key: key, Value: value, UpdatedAt: time.Now().UTC()},
		options.Replace().SetUpsert(true),
	)
	return err
}

func (s *Mongo) Delete(ctx context.Context, key string) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": key})
	return err
}
