package email

import (
	"fmt"
	"net/smtp"

	"github.com/dailypulse/newspaper-service/internal/config"
	"github.com/dailypulse/newspaper-service/internal/models"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
	send   func(e *email.Email, addr string, auth smtp.Auth) error
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
		send: func(e *email.Email, addr string, auth smtp.Auth) error {
			return e.Send(addr, auth)
		},
	}
}

// ArticleApproved tells the author that their article is now published
func (s *Sender) ArticleApproved(article *models.Article) error {
	e := s.approvalEmail(article)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	if err := s.send(e, addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", article.AuthorEmail, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", article.AuthorEmail, e.Subject)
	return nil
}

func (s *Sender) approvalEmail(article *models.Article) *email.Email {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{article.AuthorEmail}
	e.Subject = "Your article has been approved"

	name := article.AuthorName
	if name == "" {
		name = article.AuthorEmail
	}
	body := fmt.Sprintf("Dear %s,\n\n", name)
	body += fmt.Sprintf(
		"Your article \"%s\" has been approved and is now visible to readers.\n"+
			"Read it at %s/article/%s\n",
		article.Title, s.cfg.SiteURL, article.ID.Hex(),
	)
	body += fmt.Sprintf("\nBest regards,\n%s", s.cfg.SiteTitle)
	e.Text = []byte(body)
	return e
}
