package notification

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// SendGridSender sends emails via the SendGrid API.
type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	logger    *zap.Logger
}

// SendGridConfig holds configuration for SendGrid.
type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// NewSendGridSender creates a new SendGrid email sender.
func NewSendGridSender(cfg SendGridConfig, logger *zap.Logger) *SendGridSender {
	return &SendGridSender{
		client:    sendgrid.NewSendClient(cfg.APIKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		logger:    logger,
	}
}

// Send sends an email via SendGrid.
func (s *SendGridSender) Send(ctx context.Context, msg EmailMessage) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)

	var message *mail.SGMailV3
	if msg.HTML != "" {
		message = mail.NewSingleEmail(from, msg.Subject, to, msg.Body, msg.HTML)
	} else {
		message = mail.NewSingleEmail(from, msg.Subject, to, msg.Body, msg.Body)
	}

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		s.logger.Error("sendgrid send failed", zap.Error(err), zap.String("to", msg.To))
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if response.StatusCode >= 400 {
		s.logger.Error("sendgrid returned error status",
			zap.Int("status", response.StatusCode), zap.String("to", msg.To))
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}

	s.logger.Info("email sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}

// StubEmailSender logs instead of sending, for tests and local development.
type StubEmailSender struct {
	Logger *zap.Logger
	Sent   []EmailMessage
}

// Send records the email without sending it.
func (s *StubEmailSender) Send(ctx context.Context, msg EmailMessage) error {
	s.Sent = append(s.Sent, msg)
	if s.Logger != nil {
		s.Logger.Info("stub email sender: would send email",
			zap.String("to", msg.To), zap.String("subject", msg.Subject))
	}
	return nil
}
