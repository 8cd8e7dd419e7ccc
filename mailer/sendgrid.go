package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// SendGridMailer sends email through the SendGrid v3 API
type SendGridMailer struct {
	client *sendgrid.Client
}

// NewSendGridMailer returns a mailer for the SendGrid production API
func NewSendGridMailer(apiKey string) *SendGridMailer {
	return &SendGridMailer{client: sendgrid.NewSendClient(apiKey)}
}

// NewSendGridMailerWithHost returns a mailer that talks to host instead of api.sendgrid.com
func NewSendGridMailerWithHost(apiKey, host string) *SendGridMailer {
	request := sendgrid.GetRequest(apiKey, "/v3/mail/send", host)
	request.Method = "POST"
	return &SendGridMailer{client: &sendgrid.Client{Request: request}}
}

// Send sends e, treating any status >= 400 as a failure
func (s *SendGridMailer) Send(ctx context.Context, e Email) error {
	from := mail.NewEmail(e.FromName, e.FromAddress)
	to := mail.NewEmail(e.ToName, e.ToAddress)
	message := mail.NewSingleEmail(from, e.Subject, to, e.PlainText, e.HTML)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return &MailError{To: e.ToAddress, Err: err}
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body, "to", e.ToAddress)
		return &MailError{To: e.ToAddress, Err: fmt.Errorf("sendgrid error: status %d", response.StatusCode)}
	}
	return nil
}
