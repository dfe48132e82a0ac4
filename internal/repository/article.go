package repository

import (
	"context"
	"fmt"

	"github.com/dailypulse/newspaper-service/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListArticles returns every article regardless of status
func (r *Repository) ListArticles(ctx context.Context) ([]models.Article, error) {
	articles, err := findAll[models.Article](ctx, r.articles, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return articles, nil
}

// FindArticleByID retrieves an article by id. It returns nil, nil when no article matches.
func (r *Repository) FindArticleByID(ctx context.Context, id string) (*models.Article, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	article, err := findOne[models.Article](ctx, r.articles, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("failed to find article: %w", err)
	}
	return article, nil
}

// ListArticlesByStatus returns articles with the given status
func (r *Repository) ListArticlesByStatus(ctx context.Context, status string) ([]models.Article, error) {
	articles, err := findAll[models.Article](ctx, r.articles, bson.M{"status": status})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s articles: %w", status, err)
	}
	return articles, nil
}

// ListArticlesByViews returns image+title of articles with the given status, most viewed first
func (r *Repository) ListArticlesByViews(ctx context.Context, status string) ([]models.ArticleSummary, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "views", Value: -1}}).
		SetProjection(bson.D{{Key: "image", Value: 1}, {Key: "title", Value: 1}})

	articles, err := findAll[models.ArticleSummary](ctx, r.articles, bson.M{"status": status}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles by views: %w", err)
	}
	return articles, nil
}

// ListPremiumArticles returns premium articles with the given status
func (r *Repository) ListPremiumArticles(ctx context.Context, status string) ([]models.Article, error) {
	articles, err := findAll[models.Article](ctx, r.articles, bson.M{"isPremium": true, "status": status})
	if err != nil {
		return nil, fmt.Errorf("failed to list premium articles: %w", err)
	}
	return articles, nil
}

// ListArticlesByAuthor returns every article written by the given email
func (r *Repository) ListArticlesByAuthor(ctx context.Context, email string) ([]models.Article, error) {
	articles, err := findAll[models.Article](ctx, r.articles, bson.M{"authorEmail": email})
	if err != nil {
		return nil, fmt.Errorf("failed to list articles by author: %w", err)
	}
	return articles, nil
}

// CreateArticle inserts a new article document
func (r *Repository) CreateArticle(ctx context.Context, article *models.Article) (*models.InsertResult, error) {
	res, err := r.articles.InsertOne(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

// DeleteArticle removes the article with the given id
func (r *Repository) DeleteArticle(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	res, err := deleteByID(ctx, r.articles, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to delete article: %w", err)
	}
	return res, nil
}

// UpdateArticleStatus overwrites the status field, creating the document if absent
func (r *Repository) UpdateArticleStatus(ctx context.Context, id, status string) (*models.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	res, err := upsertSet(ctx, r.articles, oid, bson.D{{Key: "status", Value: status}})
	if err != nil {
		return nil, fmt.Errorf("failed to update article status: %w", err)
	}
	return res, nil
}

// UpdateArticleContent overwrites the editable fields, creating the document if absent
func (r *Repository) UpdateArticleContent(ctx context.Context, id string, content models.ArticleContent) (*models.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	set := bson.D{
		{Key: "title", Value: content.Title},
		{Key: "image", Value: content.Image},
		{Key: "publisher", Value: content.Publisher},
		{Key: "publisherImage", Value: content.PublisherImage},
		{Key: "tag", Value: content.Tag},
		{Key: "description", Value: content.Description},
	}
	res, err := upsertSet(ctx, r.articles, oid, set)
	if err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}
	return res, nil
}
