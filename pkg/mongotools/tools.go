package mongotools

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikmy/meowcal/pkg/errors"
)

// Field matches field == *value. A nil value yields an empty document, so
// optional filters can be passed through unconditionally.
func Field[T any](field string, value *T) bson.M {
	if value == nil {
		return bson.M{}
	}
	return bson.M{field: *value}
}

// And merges field documents, skipping empty ones.
func And(fieldKVs ...bson.M) bson.M {
	merged := make(bson.M, len(fieldKVs))
	for _, kv := range fieldKVs {
		for k, v := range kv {
			merged[k] = v
		}
	}
	return merged
}

func SetAll(fieldKVs ...bson.M) bson.M {
	return bson.M{"$set": And(fieldKVs...)}
}

func FilterFunc[T any](ctx context.Context, c *mongo.Cursor, filterFunc func(T) bool) ([]T, error) {
	defer c.Close(ctx)

	var filtered []T
	for c.Next(ctx) {
		var item T
		err := c.Decode(&item)
		if err != nil {
			return nil, errors.WrapFail(err, "decode item")
		}

		if filterFunc == nil || filterFunc(item) {
			filtered = append(filtered, item)
		}
	}

	return filtered, c.Err()
}
