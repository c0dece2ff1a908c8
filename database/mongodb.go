package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const MONGO_TIMEOUT = 20 * time.Second

// GetDB picks the database name for the deployment environment.
func GetDB(environment string) (string, error) {
	switch environment {
	case "production":
		return "production", nil
	case "homolog":
		return "homolog", nil
	case "development":
		return "development", nil
	}
	return "", fmt.Errorf("[MongoDB] nome de banco inválido para ENV %q", environment)
}

func mongoKey(key string) string {
	if key == FIELD_ID {
		return "_id"
	}
	return key
}

func mongoDoc(fields []Field) bson.D {
	doc := bson.D{}
	for _, f := range fields {
		doc = append(doc, bson.E{Key: mongoKey(f.Key), Value: f.Value})
	}
	return doc
}

func mongoSort(order *Order) bson.D {
	if order == nil {
		return nil
	}
	direction := 1
	if order.Descending {
		direction = -1
	}
	return bson.D{{Key: mongoKey(order.Field), Value: direction}}
}

func mongoErr(op, collection string, err error) error {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, op, collection, err)
	}
	return fmt.Errorf("%s %s: %w", op, collection, err)
}

// MongoTable keeps one entity type in one collection.
type MongoTable[T any] struct {
	collection *mongo.Collection
}

func NewMongoTable[T any](db *mongo.Database, name string) *MongoTable[T] {
	return &MongoTable[T]{collection: db.Collection(name)}
}

func (t *MongoTable[T]) Select(ctx context.Context, q Query) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, MONGO_TIMEOUT)
	defer cancel()

	opts := options.Find()
	if sort := mongoSort(q.Order); sort != nil {
		opts.SetSort(sort)
	}

	cursor, err := t.collection.Find(ctx, mongoDoc(q.Filter), opts)
	if err != nil {
		return nil, mongoErr("find", t.collection.Name(), err)
	}
	defer cursor.Close(ctx)

	rows := []T{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, mongoErr("decode", t.collection.Name(), err)
	}
	return rows, nil
}

func (t *MongoTable[T]) Insert(ctx context.Context, record *T) error {
	ctx, cancel := context.WithTimeout(ctx, MONGO_TIMEOUT)
	defer cancel()

	if _, err := t.collection.InsertOne(ctx, record); err != nil {
		return mongoErr("insert", t.collection.Name(), err)
	}
	return nil
}

func (t *MongoTable[T]) Update(ctx context.Context, match []Field, patch []Field) (int64, error) {
	if len(match) == 0 {
		return 0, ErrEmptyMatch
	}
	if len(patch) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, MONGO_TIMEOUT)
	defer cancel()

	update := bson.D{{Key: "$set", Value: mongoDoc(patch)}}
	result, err := t.collection.UpdateOne(ctx, mongoDoc(match), update)
	if err != nil {
		return 0, mongoErr("update", t.collection.Name(), err)
	}
	return result.MatchedCount, nil
}

func (t *MongoTable[T]) Delete(ctx context.Context, match []Field) (int64, error) {
	if len(match) == 0 {
		return 0, ErrEmptyMatch
	}

	ctx, cancel := context.WithTimeout(ctx, MONGO_TIMEOUT)
	defer cancel()

	result, err := t.collection.DeleteOne(ctx, mongoDoc(match))
	if err != nil {
		return 0, mongoErr("delete", t.collection.Name(), err)
	}
	return result.DeletedCount, nil
}
