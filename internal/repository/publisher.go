package repository

import (
	"context"
	"fmt"

	"github.com/dailypulse/newspaper-service/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// ListPublishers returns every publisher
func (r *Repository) ListPublishers(ctx context.Context) ([]models.Publisher, error) {
	publishers, err := findAll[models.Publisher](ctx, r.publishers, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list publishers: %w", err)
	}
	return publishers, nil
}

// FindPublisherByName retrieves a publisher by name. It returns nil, nil when none matches.
func (r *Repository) FindPublisherByName(ctx context.Context, name string) (*models.Publisher, error) {
	publisher, err := findOne[models.Publisher](ctx, r.publishers, bson.M{"publisher": name})
	if err != nil {
		return nil, fmt.Errorf("failed to find publisher: %w", err)
	}
	return publisher, nil
}
