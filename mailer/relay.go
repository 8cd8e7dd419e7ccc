package mailer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/linesmerrill/cohort-site/config"
	templates "github.com/linesmerrill/cohort-site/templates/html"
)

// Relay turns a contact form submission into the operator notification and the
// auto-reply to the sender
type Relay struct {
	Mailer    Mailer
	From      string
	Operator  string
	SiteName  string
	Signature string
}

// New picks SendGrid when an API key is configured, otherwise the SMTP account
func New(conf *config.Config) *Relay {
	var m Mailer
	if conf.SendGridAPIKey != "" {
		m = NewSendGridMailer(conf.SendGridAPIKey)
		zap.S().Infow("mail relay using sendgrid", "from", conf.EmailUser)
	} else {
		m = NewSMTPMailer(conf.SMTPHost, conf.SMTPPort, conf.EmailUser, conf.EmailPassword)
		zap.S().Infow("mail relay using smtp", "host", conf.SMTPHost, "port", conf.SMTPPort, "from", conf.EmailUser)
	}
	return &Relay{
		Mailer:    m,
		From:      conf.EmailUser,
		Operator:  conf.OperatorEmail,
		SiteName:  conf.SiteName,
		Signature: conf.Signature,
	}
}

// SendContact sends the operator notification and then the auto-reply. Both must
// succeed; there is no retry.
func (r *Relay) SendContact(ctx context.Context, name, email, message string) error {
	toOperator := r.operatorEmail(name, email, message)
	if err := r.Mailer.Send(ctx, toOperator); err != nil {
		return wrapMailError(toOperator.ToAddress, err)
	}

	toSender := r.autoReply(name, email)
	if err := r.Mailer.Send(ctx, toSender); err != nil {
		return wrapMailError(toSender.ToAddress, err)
	}

	zap.S().Infow("contact form relayed", "from", email)
	return nil
}

func (r *Relay) operatorEmail(name, email, message string) Email {
	subject := fmt.Sprintf("New message from %s", name)
	text := fmt.Sprintf("From: %s <%s>\n\n%s", name, email, message)
	return Email{
		FromName:    "Website Contact",
		FromAddress: r.From,
		ToAddress:   r.Operator,
		Subject:     subject,
		PlainText:   text,
		HTML:        templates.RenderGenericEmail(r.SiteName, subject, text),
	}
}

func (r *Relay) autoReply(name, email string) Email {
	subject := "Thanks for reaching out"
	text := fmt.Sprintf("Hi %s,\n\nThanks for your message! I'll get back to you as soon as I can.\n\n%s", name, r.Signature)
	return Email{
		FromName:    r.SiteName,
		FromAddress: r.From,
		ToName:      name,
		ToAddress:   email,
		Subject:     subject,
		PlainText:   text,
		HTML:        templates.RenderGenericEmail(r.SiteName, subject, text),
	}
}

func wrapMailError(to string, err error) error {
	if _, ok := err.(*MailError); ok {
		return err
	}
	return &MailError{To: to, Err: err}
}
