package repository

import (
	"context"
	"fmt"

	"github.com/dailypulse/newspaper-service/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ListUsers returns every user document
func (r *Repository) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := findAll[models.User](ctx, r.users, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// FindUserByEmail retrieves a user by email. It returns nil, nil when no user matches.
func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := findOne[models.User](ctx, r.users, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// CreateUser inserts a new user document
func (r *Repository) CreateUser(ctx context.Context, user *models.User) (*models.InsertResult, error) {
	res, err := r.users.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

// UpdateUserRole sets the role of the user with the given id, creating the document if absent
func (r *Repository) UpdateUserRole(ctx context.Context, id, role string) (*models.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	res, err := upsertSet(ctx, r.users, oid, bson.D{{Key: "role", Value: role}})
	if err != nil {
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}
	return res, nil
}

// DeleteUser removes the user with the given id
func (r *Repository) DeleteUser(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	res, err := deleteByID(ctx, r.users, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	return res, nil
}
