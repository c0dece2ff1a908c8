package database

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryTable keeps documents in process, encoded with the same bson tags
// the Mongo backend uses. It backs STORE=memory and the handler tests.
type MemoryTable[T any] struct {
	mu   sync.RWMutex
	docs []bson.M
}

func NewMemoryTable[T any]() *MemoryTable[T] {
	return &MemoryTable[T]{}
}

func toDoc(v any) (bson.M, error) {
	data, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	doc := bson.M{}
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// normalize gives a Go value the representation it would have after a trip
// through bson, so filters compare like the Mongo backend.
func normalize(v any) (any, error) {
	doc, err := toDoc(bson.M{"v": v})
	if err != nil {
		return nil, err
	}
	return doc["v"], nil
}

func matches(doc bson.M, filter []Field) (bool, error) {
	for _, f := range filter {
		want, err := normalize(f.Value)
		if err != nil {
			return false, err
		}
		if !reflect.DeepEqual(doc[mongoKey(f.Key)], want) {
			return false, nil
		}
	}
	return true, nil
}

func compareValues(a, b any) int {
	switch av := a.(type) {
	case nil:
		if b == nil {
			return 0
		}
		return -1
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
	case bson.DateTime:
		if bv, ok := b.(bson.DateTime); ok {
			return compareOrdered(int64(av), int64(bv))
		}
	case int32:
		if bv, ok := b.(int32); ok {
			return compareOrdered(av, bv)
		}
	case int64:
		if bv, ok := b.(int64); ok {
			return compareOrdered(av, bv)
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return compareOrdered(av, bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			return compareOrdered(boolRank(av), boolRank(bv))
		}
	}
	if b == nil {
		return 1
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func compareOrdered[N int64 | int32 | float64 | int](a, b N) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Select holds the read lock until every selected document is decoded, since
// Update writes into the stored maps in place.
func (t *MemoryTable[T]) Select(ctx context.Context, q Query) ([]T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	selected := []bson.M{}
	for _, doc := range t.docs {
		ok, err := matches(doc, q.Filter)
		if err != nil {
			return nil, err
		}
		if ok {
			selected = append(selected, doc)
		}
	}

	if q.Order != nil {
		key := mongoKey(q.Order.Field)
		sort.SliceStable(selected, func(i, j int) bool {
			c := compareValues(selected[i][key], selected[j][key])
			if q.Order.Descending {
				return c > 0
			}
			return c < 0
		})
	}

	out := make([]T, 0, len(selected))
	for _, doc := range selected {
		data, err := bson.Marshal(doc)
		if err != nil {
			return nil, err
		}
		var record T
		if err := bson.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("decode memory document: %w", err)
		}
		out = append(out, record)
	}
	return out, nil
}

func (t *MemoryTable[T]) Insert(ctx context.Context, record *T) error {
	doc, err := toDoc(record)
	if err != nil {
		return fmt.Errorf("encode memory document: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if id, ok := doc["_id"]; ok {
		for _, existing := range t.docs {
			if reflect.DeepEqual(existing["_id"], id) {
				return fmt.Errorf("insert: duplicate id %v", id)
			}
		}
	}
	t.docs = append(t.docs, doc)
	return nil
}

func (t *MemoryTable[T]) Update(ctx context.Context, match []Field, patch []Field) (int64, error) {
	if len(match) == 0 {
		return 0, ErrEmptyMatch
	}

	values := make([]any, len(patch))
	for i, f := range patch {
		v, err := normalize(f.Value)
		if err != nil {
			return 0, err
		}
		values[i] = v
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	var matched int64
	for _, doc := range t.docs {
		ok, err := matches(doc, match)
		if err != nil {
			return 0, err
		}
		if !ok {
			continue
		}
		matched++
		for i, f := range patch {
			doc[mongoKey(f.Key)] = values[i]
		}
		// UpdateOne semantics, like the Mongo backend.
		break
	}
	return matched, nil
}

func (t *MemoryTable[T]) Delete(ctx context.Context, match []Field) (int64, error) {
	if len(match) == 0 {
		return 0, ErrEmptyMatch
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for i, doc := range t.docs {
		ok, err := matches(doc, match)
		if err != nil {
			return 0, err
		}
		if ok {
			t.docs = append(t.docs[:i], t.docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
