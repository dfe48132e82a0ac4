package service

import (
	"context"

	"github.com/dailypulse/newspaper-service/internal/models"
)

// ListPublishers returns all publishers
func (s *Service) ListPublishers(ctx context.Context) ([]models.Publisher, error) {
	return s.store.ListPublishers(ctx)
}

// GetPublisher returns the publisher with the given name, or nil
func (s *Service) GetPublisher(ctx context.Context, name string) (*models.Publisher, error) {
	return s.store.FindPublisherByName(ctx, name)
}
