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

	"focusflow/internal/modules/session/domain"
	sessionout "focusflow/internal/modules/session/port/out"
	apperrors "focusflow/internal/platform/errors"
	"focusflow/internal/platform/mongodb"
)

type sessionDocument struct {
	ID            primitive.ObjectID `bson:"_id"`
	UserID        string             `bson:"userId"`
	StartTime     time.Time          `bson:"startTime"`
	EndTime       *time.Time         `bson:"endTime,omitempty"`
	WorkDuration  int                `bson:"workDuration"`
	BreakDuration int                `bson:"breakDuration"`
	Title         string             `bson:"title,omitempty"`
	Status        string             `bson:"status"`
	Interruptions int                `bson:"interruptions"`
	AbortReason   string             `bson:"abortReason,omitempty"`
}

type MongoSessionStore struct {
	coll *mongo.Collection
}

func NewMongoSessionStore(db *mongo.Database) sessionout.SessionStore {
	return &MongoSessionStore{coll: db.Collection(mongodb.SessionsCollection)}
}

func (s *MongoSessionStore) Create(ctx context.Context, session domain.Session) error {
	oid, err := primitive.ObjectIDFromHex(session.ID)
	if err != nil {
		return fmt.Errorf("%w: session id is not an object id: %w", apperrors.ErrStore, err)
	}
	doc := sessionDocument{
		ID:            oid,
		UserID:        session.UserID,
		StartTime:     session.StartTime,
		EndTime:       session.EndTime,
		WorkDuration:  session.WorkDuration,
		BreakDuration: session.BreakDuration,
		Title:         session.Title,
		Status:        string(session.Status),
		Interruptions: session.Interruptions,
		AbortReason:   session.AbortReason,
	}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("%w: insert session: %w", apperrors.ErrStore, err)
	}
	return nil
}

func (s *MongoSessionStore) Complete(ctx context.Context, userID, sessionID string, endTime time.Time) (domain.Session, error) {
	return s.updateOne(ctx, userID, sessionID, bson.M{"$set": bson.M{
		"endTime": endTime,
		"status":  string(domain.StatusCompleted),
	}})
}

func (s *MongoSessionStore) Abort(ctx context.Context, userID, sessionID string, endTime time.Time, reason string) (domain.Session, error) {
	return s.updateOne(ctx, userID, sessionID, bson.M{"$set": bson.M{
		"endTime":     endTime,
		"status":      string(domain.StatusAborted),
		"abortReason": reason,
	}})
}

func (s *MongoSessionStore) IncrementInterruptions(ctx context.Context, userID, sessionID string) (domain.Session, error) {
	return s.updateOne(ctx, userID, sessionID, bson.M{"$inc": bson.M{"interruptions": 1}})
}

func (s *MongoSessionStore) FindRunning(ctx context.Context, userID string) (domain.Session, bool, error) {
	doc := sessionDocument{}
	err := s.coll.FindOne(ctx,
		bson.M{"userId": userID, "status": string(domain.StatusRunning)},
		options.FindOne().SetSort(bson.D{{Key: "startTime", Value: -1}}),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, fmt.Errorf("%w: find running session: %w", apperrors.ErrStore, err)
	}
	return doc.toDomain(), true, nil
}

func (s *MongoSessionStore) ListByUser(ctx context.Context, userID string) ([]domain.Session, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"userId": userID}, options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%w: list sessions: %w", apperrors.ErrStore, err)
	}
	docs := []sessionDocument{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: decode sessions: %w", apperrors.ErrStore, err)
	}
	out := make([]domain.Session, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toDomain())
	}
	return out, nil
}

func (s *MongoSessionStore) updateOne(ctx context.Context, userID, sessionID string, update bson.M) (domain.Session, error) {
	oid, err := primitive.ObjectIDFromHex(sessionID)
	if err != nil {
		return domain.Session{}, errSessionNotFound
	}
	doc := sessionDocument{}
	err = s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "userId": userID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Session{}, errSessionNotFound
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: update session: %w", apperrors.ErrStore, err)
	}
	return doc.toDomain(), nil
}

func (d sessionDocument) toDomain() domain.Session {
	var end *time.Time
	if d.EndTime != nil {
		t := d.EndTime.UTC()
		end = &t
	}
	return domain.Session{
		ID:            d.ID.Hex(),
		UserID:        d.UserID,
		StartTime:     d.StartTime.UTC(),
		EndTime:       end,
		WorkDuration:  d.WorkDuration,
		BreakDuration: d.BreakDuration,
		Title:         d.Title,
		Status:        domain.Status(d.Status),
		Interruptions: d.Interruptions,
		AbortReason:   d.AbortReason,
	}
}
