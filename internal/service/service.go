package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dailypulse/newspaper-service/internal/models"
	"github.com/dailypulse/newspaper-service/internal/repository"
	"github.com/sirupsen/logrus"
)

// DuplicateUserMessage is returned in place of an insert result when the email is taken.
const DuplicateUserMessage = "user already exists"

// Store is the persistence surface the service needs. *repository.Repository implements it.
type Store interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.InsertResult, error)
	UpdateUserRole(ctx context.Context, id, role string) (*models.UpdateResult, error)
	DeleteUser(ctx context.Context, id string) (*models.DeleteResult, error)

	ListArticles(ctx context.Context) ([]models.Article, error)
	FindArticleByID(ctx context.Context, id string) (*models.Article, error)
	ListArticlesByStatus(ctx context.Context, status string) ([]models.Article, error)
	ListArticlesByViews(ctx context.Context, status string) ([]models.ArticleSummary, error)
	ListPremiumArticles(ctx context.Context, status string) ([]models.Article, error)
	ListArticlesByAuthor(ctx context.Context, email string) ([]models.Article, error)
	CreateArticle(ctx context.Context, article *models.Article) (*models.InsertResult, error)
	DeleteArticle(ctx context.Context, id string) (*models.DeleteResult, error)
	UpdateArticleStatus(ctx context.Context, id, status string) (*models.UpdateResult, error)
	UpdateArticleContent(ctx context.Context, id string, content models.ArticleContent) (*models.UpdateResult, error)

	ListPublishers(ctx context.Context) ([]models.Publisher, error)
	FindPublisherByName(ctx context.Context, name string) (*models.Publisher, error)
}

// Notifier is told when an article is approved
type Notifier interface {
	ArticleApproved(article *models.Article) error
}

// notifyTimeout bounds the store lookup behind an approval notice.
const notifyTimeout = 30 * time.Second

// Service handles business logic
type Service struct {
	store    Store
	notifier Notifier
	log      *logrus.Logger

	notifications sync.WaitGroup
}

// NewService initializes a new service. notifier may be nil.
func NewService(store Store, notifier Notifier, log *logrus.Logger) *Service {
	return &Service{store: store, notifier: notifier, log: log}
}

// Wait blocks until approval notices already started have finished.
func (s *Service) Wait() {
	s.notifications.Wait()
}

// ListUsers returns all users
func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.store.ListUsers(ctx)
}

// UpdateUserRole sets a user's role
func (s *Service) UpdateUserRole(ctx context.Context, id, role string) (*models.UpdateResult, error) {
	res, err := s.store.UpdateUserRole(ctx, id, role)
	if err != nil {
		return nil, err
	}
	s.log.Infof("User %s role set to %q", id, role)
	return res, nil
}

// DeleteUser removes a user
func (s *Service) DeleteUser(ctx context.Context, id string) (*models.DeleteResult, error) {
	res, err := s.store.DeleteUser(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Infof("User %s deleted (%d)", id, res.DeletedCount)
	return res, nil
}

// FindUser returns the user with the given email, or nil
func (s *Service) FindUser(ctx context.Context, email string) (*models.User, error) {
	return s.store.FindUserByEmail(ctx, email)
}

// IsAdmin reports whether the user with the given email has the admin role.
// An unknown email is not an admin.
func (s *Service) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

// RegisterUser inserts user unless the email is already registered, in which case
// it returns the duplicate sentinel and writes nothing.
func (s *Service) RegisterUser(ctx context.Context, user *models.User) (*models.InsertResult, error) {
	existing, err := s.store.FindUserByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &models.InsertResult{Message: DuplicateUserMessage}, nil
	}

	res, err := s.store.CreateUser(ctx, user)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		// lost a race with a concurrent registration
		return &models.InsertResult{Message: DuplicateUserMessage}, nil
	}
	if err != nil {
		return nil, err
	}
	s.log.Infof("User registered: %s", user.Email)
	return res, nil
}
