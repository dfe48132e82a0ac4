package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dailypulse/newspaper-service/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names in the newspaper database
const (
	UsersCollection      = "users"
	ArticlesCollection   = "articles"
	PublishersCollection = "publishers"
)

var (
	// ErrInvalidID is returned when a path id is not a valid ObjectID.
	ErrInvalidID = errors.New("invalid object id")
	// ErrDuplicateEmail is returned when the users.email unique index rejects an insert.
	ErrDuplicateEmail = errors.New("user already exists")
)

// Repository provides database operations
type Repository struct {
	db         *mongo.Database
	users      *mongo.Collection
	articles   *mongo.Collection
	publishers *mongo.Collection
}

// NewRepository initializes a new repository
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		db:         db,
		users:      db.Collection(UsersCollection),
		articles:   db.Collection(ArticlesCollection),
		publishers: db.Collection(PublishersCollection),
	}
}

// EnsureIndexes creates the unique index on users.email
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create users.email index: %w", err)
	}
	return nil
}

// Ping checks connectivity to the primary
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, readpref.Primary())
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

// findAll runs a query and decodes every document. It never returns a nil slice.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := make([]T, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// findOne decodes the first match, or returns nil when nothing matches.
func findOne[T any](ctx context.Context, coll *mongo.Collection, filter any) (*T, error) {
	var doc T
	err := coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// upsertSet applies $set with upsert enabled. An unknown id creates a partial document.
func upsertSet(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, set bson.D) (*models.UpdateResult, error) {
	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.D{{Key: "$set", Value: set}}, options.Update().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID) (*models.DeleteResult, error) {
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
