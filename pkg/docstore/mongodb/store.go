// Package mongodb implements docstore.Store over a MongoDB database.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"assetbook/pkg/docstore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const idField = "_id"

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials uri and pings the primary before returning.
func Connect(ctx context.Context, uri string, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return New(client, database), nil
}

func New(client *mongo.Client, database string) *Store {
	return &Store{client: client, db: client.Database(database)}
}

// Insert upserts against a fresh ObjectID so that $currentDate can assign the server
// timestamps in the same round trip that creates the document.
func (s *Store) Insert(ctx context.Context, collection string, fields docstore.Fields, serverTime ...string) (*docstore.Document, error) {
	onInsert := bson.M{}
	for k, v := range fields {
		onInsert[k] = v
	}
	for _, name := range serverTime {
		delete(onInsert, name)
	}

	update := bson.M{}
	if len(onInsert) > 0 {
		update["$setOnInsert"] = onInsert
	}
	if len(serverTime) > 0 {
		stamps := bson.M{}
		for _, name := range serverTime {
			stamps[name] = true
		}
		update["$currentDate"] = stamps
	}
	if len(update) == 0 {
		update["$setOnInsert"] = bson.M{}
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var raw bson.M
	err := s.db.Collection(collection).
		FindOneAndUpdate(ctx, bson.M{idField: primitive.NewObjectID()}, update, opts).
		Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", collection, err)
	}

	return toDocument(raw), nil
}

func (s *Store) Find(ctx context.Context, collection string, filters ...docstore.Filter) ([]*docstore.Document, error) {
	query := bson.M{}
	for _, f := range filters {
		query[f.Field] = f.Value
	}

	cursor, err := s.db.Collection(collection).Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	docs := make([]*docstore.Document, 0)
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", collection, err)
		}
		docs = append(docs, toDocument(raw))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", collection, err)
	}

	return docs, nil
}

func (s *Store) EnsureIndex(ctx context.Context, collection string, field string) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetName(field + "_1"),
	}
	if _, err := s.db.Collection(collection).Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("create index %s.%s: %w", collection, field, err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func toDocument(raw bson.M) *docstore.Document {
	doc := &docstore.Document{Fields: make(docstore.Fields, len(raw))}
	for k, v := range raw {
		if k == idField {
			doc.ID = formatID(v)
			continue
		}
		doc.Fields[k] = normalize(v)
	}
	return doc
}

func formatID(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(id)
	}
}

func normalize(v any) any {
	switch val := v.(type) {
	case primitive.DateTime:
		return val.Time().UTC()
	case primitive.Timestamp:
		return time.Unix(int64(val.T), 0).UTC()
	case int32:
		return int64(val)
	default:
		return val
	}
}
