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

	"focusflow/internal/modules/account/domain"
	accountout "focusflow/internal/modules/account/port/out"
	apperrors "focusflow/internal/platform/errors"
	"focusflow/internal/platform/mongodb"
)

type accountDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	TokenHash string             `bson:"tokenHash"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type MongoAccountStore struct {
	coll *mongo.Collection
}

func NewMongoAccountStore(db *mongo.Database) accountout.AccountStore {
	return &MongoAccountStore{coll: db.Collection(mongodb.AccountsCollection)}
}

func (s *MongoAccountStore) Create(ctx context.Context, account domain.Account) error {
	oid, err := primitive.ObjectIDFromHex(account.ID)
	if err != nil {
		return fmt.Errorf("%w: account id is not an object id: %w", apperrors.ErrStore, err)
	}
	doc := accountDocument{ID: oid, Name: account.Name, TokenHash: account.TokenHash, CreatedAt: account.CreatedAt}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("%w: insert account: %w", apperrors.ErrStore, err)
	}
	return nil
}

func (s *MongoAccountStore) FindByTokenHash(ctx context.Context, hash string) (domain.Account, bool, error) {
	doc := accountDocument{}
	err := s.coll.FindOne(ctx, bson.M{"tokenHash": hash}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Account{}, false, nil
	}
	if err != nil {
		return domain.Account{}, false, fmt.Errorf("%w: find account: %w", apperrors.ErrStore, err)
	}
	return doc.toDomain(), true, nil
}

func (s *MongoAccountStore) List(ctx context.Context) ([]domain.Account, error) {
	cursor, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%w: list accounts: %w", apperrors.ErrStore, err)
	}
	docs := []accountDocument{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: decode accounts: %w", apperrors.ErrStore, err)
	}
	out := make([]domain.Account, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (d accountDocument) toDomain() domain.Account {
	return domain.Account{ID: d.ID.Hex(), Name: d.Name, TokenHash: d.TokenHash, CreatedAt: d.CreatedAt.UTC()}
}
