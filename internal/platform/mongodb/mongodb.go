package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	SessionsCollection   = "sessions"
	BlocklistsCollection = "blocklists"
	AccountsCollection   = "accounts"

	connectTimeout = 10 * time.Second
)

// Connect dials the server, verifies it with a ping and ensures indexes.
// The returned func disconnects the client.
func Connect(ctx context.Context, uri, database string) (*mongo.Database, func(context.Context) error, error) {
	dialCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(dialCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}
	db := client.Database(database)
	if err := EnsureIndexes(dialCtx, db); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, err
	}
	return db, client.Disconnect, nil
}

func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection(BlocklistsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "value", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("create blocklist index: %w", err)
	}
	if _, err := db.Collection(SessionsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "status", Value: 1}, {Key: "startTime", Value: -1}},
	}); err != nil {
		return fmt.Errorf("create session index: %w", err)
	}
	if _, err := db.Collection(AccountsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "tokenHash", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("create account index: %w", err)
	}
	return nil
}

// ObjectIDs generates record ids that the mongo stores can convert back to
// primitive.ObjectID.
type ObjectIDs struct{}

func (ObjectIDs) New() string {
	return primitive.NewObjectID().Hex()
}
