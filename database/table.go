package database

import (
	"context"
	"errors"
)

var (
	// ErrUnavailable marks failures reaching the store (network, timeout).
	ErrUnavailable = errors.New("store unavailable")
	// ErrUnknownField is returned when a filter, order or patch names a
	// field the table does not have.
	ErrUnknownField = errors.New("unknown field")
	// ErrEmptyMatch guards updates and deletes without a match key.
	ErrEmptyMatch = errors.New("update and delete require a match key")
)

// FIELD_ID is the logical record key. Document backends store it as _id.
const FIELD_ID = "id"

// Field is one key/value pair of a filter, match key or patch.
type Field struct {
	Key   string
	Value any
}

func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// ByID is the usual match key for single-record mutations.
func ByID(id string) []Field {
	return []Field{F(FIELD_ID, id)}
}

type Order struct {
	Field      string
	Descending bool
}

// Query selects rows whose fields equal every Filter entry, optionally sorted.
type Query struct {
	Filter []Field
	Order  *Order
}

// Table is the query/mutation contract every screen uses against the store.
type Table[T any] interface {
	Select(ctx context.Context, q Query) ([]T, error)
	Insert(ctx context.Context, record *T) error
	Update(ctx context.Context, match []Field, patch []Field) (int64, error)
	Delete(ctx context.Context, match []Field) (int64, error)
}

// SelectOne returns the first row matching filter; ok is false when none does.
func SelectOne[T any](ctx context.Context, t Table[T], filter ...Field) (T, bool, error) {
	var zero T
	rows, err := t.Select(ctx, Query{Filter: filter})
	if err != nil {
		return zero, false, err
	}
	if len(rows) == 0 {
		return zero, false, nil
	}
	return rows[0], true, nil
}
