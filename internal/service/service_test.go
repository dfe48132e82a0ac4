package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dailypulse/newspaper-service/internal/models"
	"github.com/dailypulse/newspaper-service/internal/testutil"
)

type recordingNotifier struct {
	approved []string
	err      error
}

func (n *recordingNotifier) ArticleApproved(article *models.Article) error {
	n.approved = append(n.approved, article.AuthorEmail)
	return n.err
}

func TestRegisterUser_Idempotent(t *testing.T) {
	store := testutil.NewMemoryStore()
	svc := NewService(store, nil, testutil.Logger(t))
	ctx := context.Background()

	first, err := svc.RegisterUser(ctx, &models.User{Email: "a@x.com", Name: "A"})
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if first.InsertedID == nil || first.Message != "" {
		t.Fatalf("unexpected first result: %+v", first)
	}

	second, err := svc.RegisterUser(ctx, &models.User{Email: "a@x.com", Name: "Again"})
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if second.InsertedID != nil || second.Message != DuplicateUserMessage {
		t.Fatalf("expected duplicate sentinel, got %+v", second)
	}
	if n := len(store.Users()); n != 1 {
		t.Fatalf("stored %d users, want 1", n)
	}
}

func TestIsAdmin(t *testing.T) {
	store := testutil.NewMemoryStore()
	store.SeedUser("boss@x.com", models.RoleAdmin)
	store.SeedUser("reader@x.com", "user")
	svc := NewService(store, nil, testutil.Logger(t))
	ctx := context.Background()

	cases := map[string]bool{"boss@x.com": true, "reader@x.com": false, "ghost@x.com": false}
	for email, want := range cases {
		got, err := svc.IsAdmin(ctx, email)
		if err != nil {
			t.Fatalf("IsAdmin(%s): %v", email, err)
		}
		if got != want {
			t.Fatalf("IsAdmin(%s) = %v, want %v", email, got, want)
		}
	}
}

func TestUpdateArticleStatus_NotifiesOnApproval(t *testing.T) {
	store := testutil.NewMemoryStore()
	id := store.SeedArticle(models.Article{Title: "T", AuthorEmail: "writer@x.com", Status: models.StatusPending})
	n := &recordingNotifier{}
	svc := NewService(store, n, testutil.Logger(t))
	ctx := context.Background()

	if _, err := svc.UpdateArticleStatus(ctx, id.Hex(), "declined"); err != nil {
		t.Fatalf("UpdateArticleStatus: %v", err)
	}
	if len(n.approved) != 0 {
		t.Fatalf("declined article should not notify")
	}

	if _, err := svc.UpdateArticleStatus(ctx, id.Hex(), models.StatusApproved); err != nil {
		t.Fatalf("UpdateArticleStatus: %v", err)
	}
	svc.Wait()
	if len(n.approved) != 1 || n.approved[0] != "writer@x.com" {
		t.Fatalf("expected one notification to writer, got %v", n.approved)
	}
}

func TestUpdateArticleStatus_NotifierFailureIgnored(t *testing.T) {
	store := testutil.NewMemoryStore()
	id := store.SeedArticle(models.Article{AuthorEmail: "writer@x.com"})
	svc := NewService(store, &recordingNotifier{err: errors.New("smtp down")}, testutil.Logger(t))

	res, err := svc.UpdateArticleStatus(context.Background(), id.Hex(), models.StatusApproved)
	if err != nil {
		t.Fatalf("notification failure must not fail the update: %v", err)
	}
	if res.MatchedCount != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
	svc.Wait()
}

type blockingNotifier struct {
	release chan struct{}
	sent    chan string
}

func (n *blockingNotifier) ArticleApproved(article *models.Article) error {
	<-n.release
	n.sent <- article.AuthorEmail
	return nil
}

func TestUpdateArticleStatus_DoesNotWaitForNotifier(t *testing.T) {
	store := testutil.NewMemoryStore()
	id := store.SeedArticle(models.Article{AuthorEmail: "writer@x.com"})
	n := &blockingNotifier{release: make(chan struct{}), sent: make(chan string, 1)}
	svc := NewService(store, n, testutil.Logger(t))

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	start := time.Now()
	_, err := svc.UpdateArticleStatus(ctx, id.Hex(), models.StatusApproved)
	elapsed := time.Since(start)
	cancel()
	if err != nil {
		t.Fatalf("UpdateArticleStatus: %v", err)
	}
	if elapsed > 250*time.Millisecond {
		t.Fatalf("status update waited %v on the notifier", elapsed)
	}

	// the request context is gone; the notice is still sent
	close(n.release)
	svc.Wait()
	select {
	case to := <-n.sent:
		if to != "writer@x.com" {
			t.Fatalf("notified %q", to)
		}
	default:
		t.Fatalf("notification was not sent")
	}
}

func TestUpdateArticleStatus_StoreError(t *testing.T) {
	store := testutil.NewMemoryStore()
	store.Err = errors.New("connection refused")
	svc := NewService(store, nil, testutil.Logger(t))
	if _, err := svc.UpdateArticleStatus(context.Background(), "65a000000000000000000000", "approved"); err == nil {
		t.Fatalf("expected store error")
	}
}

func TestPremiumArticles_OnlyApproved(t *testing.T) {
	store := testutil.NewMemoryStore()
	store.SeedArticle(models.Article{Title: "paid", IsPremium: true, Status: models.StatusApproved})
	store.SeedArticle(models.Article{Title: "paid-pending", IsPremium: true, Status: models.StatusPending})
	store.SeedArticle(models.Article{Title: "free", Status: models.StatusApproved})
	svc := NewService(store, nil, testutil.Logger(t))

	got, err := svc.PremiumArticles(context.Background())
	if err != nil {
		t.Fatalf("PremiumArticles: %v", err)
	}
	if len(got) != 1 || got[0].Title != "paid" {
		t.Fatalf("unexpected premium articles: %+v", got)
	}
}
