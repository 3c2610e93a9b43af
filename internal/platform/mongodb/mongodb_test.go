package mongodb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"focusflow/internal/platform/mongodb"
)

func TestEnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("blocklist values are unique per user", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse())

		require.NoError(mt, mongodb.EnsureIndexes(context.Background(), mt.DB))

		events := mt.GetAllStartedEvents()
		require.Len(mt, events, 3)
		first := events[0].Command
		assert.Equal(mt, mongodb.BlocklistsCollection, first.Lookup("createIndexes").StringValue())
		index := first.Lookup("indexes", "0").Document()
		assert.True(mt, index.Lookup("unique").Boolean())
		keys, err := index.Lookup("key").Document().Elements()
		require.NoError(mt, err)
		require.Len(mt, keys, 2)
		assert.Equal(mt, "userId", keys[0].Key())
		assert.Equal(mt, "value", keys[1].Key())
		assert.Equal(mt, mongodb.SessionsCollection, events[1].Command.Lookup("createIndexes").StringValue())
		assert.Equal(mt, mongodb.AccountsCollection, events[2].Command.Lookup("createIndexes").StringValue())
	})

	mt.Run("index failures are reported", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 86, Message: "conflict", Name: "IndexKeySpecsConflict"}))

		err := mongodb.EnsureIndexes(context.Background(), mt.DB)
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "create blocklist index")
	})
}

func TestObjectIDsRoundTrip(t *testing.T) {
	t.Parallel()
	id := mongodb.ObjectIDs{}.New()
	oid, err := primitive.ObjectIDFromHex(id)
	require.NoError(t, err)
	assert.Equal(t, id, oid.Hex())
	assert.NotEqual(t, id, mongodb.ObjectIDs{}.New())
}
