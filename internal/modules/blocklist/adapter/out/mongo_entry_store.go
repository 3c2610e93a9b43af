package out

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"focusflow/internal/modules/blocklist/domain"
	blocklistout "focusflow/internal/modules/blocklist/port/out"
	apperrors "focusflow/internal/platform/errors"
	"focusflow/internal/platform/mongodb"
)

type entryDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	UserID    string             `bson:"userId"`
	Type      string             `bson:"type"`
	Value     string             `bson:"value"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type MongoEntryStore struct {
	coll *mongo.Collection
}

func NewMongoEntryStore(db *mongo.Database) blocklistout.EntryStore {
	return &MongoEntryStore{coll: db.Collection(mongodb.BlocklistsCollection)}
}

func (s *MongoEntryStore) ListByUser(ctx context.Context, userID string) ([]domain.Entry, error) {
	return s.find(ctx, bson.M{"userId": userID})
}

func (s *MongoEntryStore) FindByValues(ctx context.Context, userID string, values []string) ([]domain.Entry, error) {
	if len(values) == 0 {
		return []domain.Entry{}, nil
	}
	return s.find(ctx, bson.M{"userId": userID, "value": bson.M{"$in": values}})
}

func (s *MongoEntryStore) InsertMany(ctx context.Context, entries []domain.Entry) error {
	docs := make([]any, 0, len(entries))
	for _, e := range entries {
		oid, err := primitive.ObjectIDFromHex(e.ID)
		if err != nil {
			return fmt.Errorf("%w: entry id is not an object id: %w", apperrors.ErrStore, err)
		}
		docs = append(docs, entryDocument{ID: oid, UserID: e.UserID, Type: string(e.Type), Value: e.Value, CreatedAt: e.CreatedAt})
	}
	if _, err := s.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("%w: insert blocklist entries: %w", apperrors.ErrStore, err)
	}
	return nil
}

func (s *MongoEntryStore) Delete(ctx context.Context, userID, entryID string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(entryID)
	if err != nil {
		return false, nil
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid, "userId": userID})
	if err != nil {
		return false, fmt.Errorf("%w: delete blocklist entry: %w", apperrors.ErrStore, err)
	}
	return res.DeletedCount > 0, nil
}

func (s *MongoEntryStore) find(ctx context.Context, filter bson.M) ([]domain.Entry, error) {
	cursor, err := s.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%w: query blocklist: %w", apperrors.ErrStore, err)
	}
	docs := []entryDocument{}
	if err := cursor.All(ctx, &docs); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []domain.Entry{}, nil
		}
		return nil, fmt.Errorf("%w: decode blocklist: %w", apperrors.ErrStore, err)
	}
	out := make([]domain.Entry, 0, len(docs))
	for _, d := range docs {
		out = append(out, domain.Entry{
			ID:        d.ID.Hex(),
			UserID:    d.UserID,
			Type:      domain.EntryType(d.Type),
			Value:     d.Value,
			CreatedAt: d.CreatedAt.UTC(),
		})
	}
	return out, nil
}
