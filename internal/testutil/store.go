// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"testing"

	"github.com/dailypulse/newspaper-service/internal/models"
	"github.com/dailypulse/newspaper-service/internal/repository"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-memory stand-in for the MongoDB repository. It keeps
// insertion order and reproduces the upsert behavior of the update routes.
type MemoryStore struct {
	mu         sync.Mutex
	users      []*models.User
	articles   []*models.Article
	publishers []*models.Publisher

	// Err, when set, is returned by every operation.
	Err error
	// UserLookups counts FindUserByEmail calls.
	UserLookups int
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SeedUser adds a user and returns its id.
func (m *MemoryStore) SeedUser(email, role string) primitive.ObjectID {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := &models.User{ID: primitive.NewObjectID(), Email: email, Role: role}
	m.users = append(m.users, u)
	return u.ID
}

// SeedArticle adds an article, assigning an id when missing.
func (m *MemoryStore) SeedArticle(a models.Article) primitive.ObjectID {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	m.articles = append(m.articles, &a)
	return a.ID
}

// SeedPublisher adds a publisher.
func (m *MemoryStore) SeedPublisher(name, logo string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.publishers = append(m.publishers, &models.Publisher{ID: primitive.NewObjectID(), Name: name, Logo: logo})
}

// Users returns a snapshot of stored users.
func (m *MemoryStore) Users() []models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out
}

// Article returns a copy of the stored article with id, if any.
func (m *MemoryStore) Article(id primitive.ObjectID) (models.Article, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.articles {
		if a.ID == id {
			return *a, true
		}
	}
	return models.Article{}, false
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", repository.ErrInvalidID, id)
	}
	return oid, nil
}

func (m *MemoryStore) ListUsers(ctx context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *MemoryStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UserLookups++
	if m.Err != nil {
		return nil, m.Err
	}
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) CreateUser(ctx context.Context, user *models.User) (*models.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return nil, repository.ErrDuplicateEmail
		}
	}
	cp := *user
	cp.ID = primitive.NewObjectID()
	m.users = append(m.users, &cp)
	return &models.InsertResult{Acknowledged: true, InsertedID: cp.ID}, nil
}

func (m *MemoryStore) UpdateUserRole(ctx context.Context, id, role string) (*models.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for _, u := range m.users {
		if u.ID == oid {
			modified := int64(0)
			if u.Role != role {
				u.Role = role
				modified = 1
			}
			return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	m.users = append(m.users, &models.User{ID: oid, Role: role})
	return &models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: oid}, nil
}

func (m *MemoryStore) DeleteUser(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for i, u := range m.users {
		if u.ID == oid {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return &models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &models.DeleteResult{Acknowledged: true}, nil
}

func (m *MemoryStore) filterArticles(keep func(*models.Article) bool) ([]models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := []models.Article{}
	for _, a := range m.articles {
		if keep(a) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *MemoryStore) ListArticles(ctx context.Context) ([]models.Article, error) {
	return m.filterArticles(func(*models.Article) bool { return true })
}

func (m *MemoryStore) FindArticleByID(ctx context.Context, id string) (*models.Article, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for _, a := range m.articles {
		if a.ID == oid {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) ListArticlesByStatus(ctx context.Context, status string) ([]models.Article, error) {
	return m.filterArticles(func(a *models.Article) bool { return a.Status == status })
}

func (m *MemoryStore) ListArticlesByViews(ctx context.Context, status string) ([]models.ArticleSummary, error) {
	articles, err := m.ListArticlesByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(articles, func(i, j int) bool { return articles[i].Views > articles[j].Views })
	out := make([]models.ArticleSummary, 0, len(articles))
	for _, a := range articles {
		out = append(out, models.ArticleSummary{ID: a.ID, Title: a.Title, Image: a.Image})
	}
	return out, nil
}

func (m *MemoryStore) ListPremiumArticles(ctx context.Context, status string) ([]models.Article, error) {
	return m.filterArticles(func(a *models.Article) bool { return a.IsPremium && a.Status == status })
}

func (m *MemoryStore) ListArticlesByAuthor(ctx context.Context, email string) ([]models.Article, error) {
	return m.filterArticles(func(a *models.Article) bool { return a.AuthorEmail == email })
}

func (m *MemoryStore) CreateArticle(ctx context.Context, article *models.Article) (*models.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	cp := *article
	cp.ID = primitive.NewObjectID()
	m.articles = append(m.articles, &cp)
	return &models.InsertResult{Acknowledged: true, InsertedID: cp.ID}, nil
}

func (m *MemoryStore) DeleteArticle(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for i, a := range m.articles {
		if a.ID == oid {
			m.articles = append(m.articles[:i], m.articles[i+1:]...)
			return &models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &models.DeleteResult{Acknowledged: true}, nil
}

func (m *MemoryStore) upsertArticle(id string, set func(*models.Article)) (*models.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for _, a := range m.articles {
		if a.ID == oid {
			set(a)
			return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	a := &models.Article{ID: oid}
	set(a)
	m.articles = append(m.articles, a)
	return &models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: oid}, nil
}

func (m *MemoryStore) UpdateArticleStatus(ctx context.Context, id, status string) (*models.UpdateResult, error) {
	return m.upsertArticle(id, func(a *models.Article) { a.Status = status })
}

func (m *MemoryStore) UpdateArticleContent(ctx context.Context, id string, c models.ArticleContent) (*models.UpdateResult, error) {
	return m.upsertArticle(id, func(a *models.Article) {
		a.Title = c.Title
		a.Image = c.Image
		a.Publisher = c.Publisher
		a.PublisherImage = c.PublisherImage
		a.Tag = c.Tag
		a.Description = c.Description
	})
}

func (m *MemoryStore) ListPublishers(ctx context.Context) ([]models.Publisher, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := []models.Publisher{}
	for _, p := range m.publishers {
		out = append(out, *p)
	}
	return out, nil
}

func (m *MemoryStore) FindPublisherByName(ctx context.Context, name string) (*models.Publisher, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for _, p := range m.publishers {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// Logger returns a logrus logger that discards output.
func Logger(t *testing.T) *logrus.Logger {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
