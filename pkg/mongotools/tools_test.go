package mongotools

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestField(t *testing.T) {
	year := 2025
	require.Equal(t, bson.M{"date.year": 2025}, Field("date.year", &year))
	require.Equal(t, bson.M{}, Field[int]("date.year", nil))
}

func TestAnd(t *testing.T) {
	user, wid := int64(7), "w1"

	got := And(
		Field("user", &user),
		Field("widget", &wid),
		Field[int]("date.year", nil),
	)
	require.Equal(t, bson.M{"user": int64(7), "widget": "w1"}, got)

	require.Equal(t, bson.M{"$set": bson.M{"user": int64(7)}}, SetAll(Field("user", &user)))
}
