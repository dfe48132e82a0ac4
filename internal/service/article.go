package service

import (
	"context"

	"github.com/dailypulse/newspaper-service/internal/models"
)

// ListArticles returns every article
func (s *Service) ListArticles(ctx context.Context) ([]models.Article, error) {
	return s.store.ListArticles(ctx)
}

// GetArticle returns the article with the given id, or nil
func (s *Service) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	return s.store.FindArticleByID(ctx, id)
}

// ApprovedArticles returns the published articles
func (s *Service) ApprovedArticles(ctx context.Context) ([]models.Article, error) {
	return s.store.ListArticlesByStatus(ctx, models.StatusApproved)
}

// MostViewedArticles returns image and title of approved articles, most viewed first
func (s *Service) MostViewedArticles(ctx context.Context) ([]models.ArticleSummary, error) {
	return s.store.ListArticlesByViews(ctx, models.StatusApproved)
}

// PremiumArticles returns approved premium articles
func (s *Service) PremiumArticles(ctx context.Context) ([]models.Article, error) {
	return s.store.ListPremiumArticles(ctx, models.StatusApproved)
}

// ArticlesByAuthor returns all articles of one author, whatever their status
func (s *Service) ArticlesByAuthor(ctx context.Context, email string) ([]models.Article, error) {
	return s.store.ListArticlesByAuthor(ctx, email)
}

// CreateArticle stores a submitted article as given
func (s *Service) CreateArticle(ctx context.Context, article *models.Article) (*models.InsertResult, error) {
	res, err := s.store.CreateArticle(ctx, article)
	if err != nil {
		return nil, err
	}
	s.log.Infof("Article created by %s: %q", article.AuthorEmail, article.Title)
	return res, nil
}

// DeleteArticle removes an article
func (s *Service) DeleteArticle(ctx context.Context, id string) (*models.DeleteResult, error) {
	res, err := s.store.DeleteArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Infof("Article %s deleted (%d)", id, res.DeletedCount)
	return res, nil
}

// UpdateArticleStatus overwrites an article's status. When the new status is
// approved and a notifier is configured, the author is told in the background;
// a notification failure is logged and does not fail the update.
func (s *Service) UpdateArticleStatus(ctx context.Context, id, status string) (*models.UpdateResult, error) {
	res, err := s.store.UpdateArticleStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	s.log.Infof("Article %s status set to %q", id, status)

	if status == models.StatusApproved && s.notifier != nil {
		s.notifications.Add(1)
		go func() {
			defer s.notifications.Done()
			nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
			defer cancel()
			s.notifyApproved(nctx, id)
		}()
	}
	return res, nil
}

func (s *Service) notifyApproved(ctx context.Context, id string) {
	article, err := s.store.FindArticleByID(ctx, id)
	if err != nil {
		s.log.Errorf("Failed to load article %s for notification: %v", id, err)
		return
	}
	if article == nil || article.AuthorEmail == "" {
		s.log.Debugf("Article %s has no author email, skipping notification", id)
		return
	}
	if err := s.notifier.ArticleApproved(article); err != nil {
		s.log.Warnf("Approval notification for article %s failed: %v", id, err)
	}
}

// UpdateArticleContent overwrites the editable fields of an article
func (s *Service) UpdateArticleContent(ctx context.Context, id string, content models.ArticleContent) (*models.UpdateResult, error) {
	res, err := s.store.UpdateArticleContent(ctx, id, content)
	if err != nil {
		return nil, err
	}
	s.log.Infof("Article %s content updated", id)
	return res, nil
}
