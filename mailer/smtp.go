package mailer

import (
	"context"
	"fmt"
	"strconv"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// SMTPMailer sends email through an authenticated SMTP account, e.g. Gmail with an
// app password.
type SMTPMailer struct {
	Host     string
	Port     string
	Username string
	Password string
}

// NewSMTPMailer returns a mailer for host:port authenticating as username
func NewSMTPMailer(host, port, username, password string) *SMTPMailer {
	return &SMTPMailer{Host: host, Port: port, Username: username, Password: password}
}

// Send delivers e. The context deadline, if any, bounds the whole SMTP session.
func (s *SMTPMailer) Send(ctx context.Context, e Email) error {
	msg, err := buildMessage(e, time.Now())
	if err != nil {
		return &MailError{To: e.ToAddress, Err: err}
	}

	client, err := s.client()
	if err != nil {
		return &MailError{To: e.ToAddress, Err: err}
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return &MailError{To: e.ToAddress, Err: err}
	}
	return nil
}

// client upgrades with STARTTLS when the server offers it and authenticates
// with PLAIN when a username is configured
func (s *SMTPMailer) client() (*gomail.Client, error) {
	port, err := strconv.Atoi(s.Port)
	if err != nil {
		return nil, fmt.Errorf("invalid smtp port %q: %w", s.Port, err)
	}

	opts := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if s.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.Username),
			gomail.WithPassword(s.Password),
		)
	}
	return gomail.NewClient(s.Host, opts...)
}

// buildMessage renders e as a MIME message, multipart/alternative when HTML is set
func buildMessage(e Email, now time.Time) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(e.FromName, e.FromAddress); err != nil {
		return nil, fmt.Errorf("from address: %w", err)
	}
	if err := msg.AddToFormat(e.ToName, e.ToAddress); err != nil {
		return nil, fmt.Errorf("to address: %w", err)
	}
	msg.Subject(e.Subject)
	msg.SetDateWithValue(now)

	msg.SetBodyString(gomail.TypeTextPlain, e.PlainText)
	if e.HTML != "" {
		msg.AddAlternativeString(gomail.TypeTextHTML, e.HTML)
	}
	return msg, nil
}
