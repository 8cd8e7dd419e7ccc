// Package mailer sends the contact form emails through SendGrid or an
// authenticated SMTP account.
package mailer

import (
	"context"
	"fmt"
)

// Email is one outbound message. HTML is optional.
type Email struct {
	FromName    string
	FromAddress string
	ToName      string
	ToAddress   string
	Subject     string
	PlainText   string
	HTML        string
}

// Mailer sends a single email
type Mailer interface {
	Send(ctx context.Context, e Email) error
}

// MailError is returned when a send fails
type MailError struct {
	To  string
	Err error
}

func (e *MailError) Error() string {
	return fmt.Sprintf("failed to send email to %s: %v", e.To, e.Err)
}

func (e *MailError) Unwrap() error {
	return e.Err
}
