// Package mailer delivers rendered campaign emails through an organization's SMTP
// server or the platform Resend account.
package mailer

//go:generate mockgen -source=mailer.go -destination=../mocks/mailer_mocks.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"phishing-simulator-backend/internal/database/models"
	"phishing-simulator-backend/internal/logger"

	"github.com/resendlabs/resend-go"
	"github.com/wneessen/go-mail"
)

// ErrNoSender is returned when neither an SMTP configuration nor a fallback is available
var ErrNoSender = errors.New("no email sender available")

// Message is a fully rendered email
type Message struct {
	FromName  string
	FromEmail string
	To        string
	ReplyTo   string
	Subject   string
	HTML      string
	Text      string
}

// Sender delivers a message and returns the provider message id
type Sender interface {
	Send(ctx context.Context, msg *Message) (string, error)
}

// Resolver picks the sender for a delivery; cfg is nil when the organization has no usable SMTP configuration
type Resolver interface {
	SenderFor(cfg *models.SMTPConfiguration) (Sender, error)
}

// SMTPSender sends through one SMTP configuration using go-mail
type SMTPSender struct {
	config *models.SMTPConfiguration
}

// NewSMTPSender creates a sender for the given configuration
func NewSMTPSender(config *models.SMTPConfiguration) *SMTPSender {
	return &SMTPSender{config: config}
}

func (s *SMTPSender) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(s.config.Port),
		mail.WithTimeout(30 * time.Second),
	}
	if s.config.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.config.Username),
			mail.WithPassword(s.config.Password),
		)
	}
	switch {
	case s.config.UseSSL:
		opts = append(opts, mail.WithSSL())
	case s.config.UseTLS:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	default:
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}
	return opts
}

// Send implements Sender
func (s *SMTPSender) Send(ctx context.Context, msg *Message) (string, error) {
	m := mail.NewMsg()
	from := msg.FromEmail
	if from == "" {
		from = s.config.FromEmail
	}
	if err := m.FromFormat(msg.FromName, from); err != nil {
		return "", fmt.Errorf("invalid from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return "", fmt.Errorf("invalid recipient: %w", err)
	}
	replyTo := msg.ReplyTo
	if replyTo == "" {
		replyTo = s.config.ReplyToEmail
	}
	if replyTo != "" {
		if err := m.ReplyTo(replyTo); err != nil {
			return "", fmt.Errorf("invalid reply-to address: %w", err)
		}
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)
	if msg.Text != "" {
		m.AddAlternativeString(mail.TypeTextPlain, msg.Text)
	}
	m.SetMessageID()

	client, err := mail.NewClient(s.config.Host, s.clientOptions()...)
	if err != nil {
		return "", fmt.Errorf("failed to create SMTP client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return "", fmt.Errorf("failed to send email via %s: %w", s.config.Host, err)
	}

	return m.GetMessageID(), nil
}

// ResendSender sends through the Resend API
type ResendSender struct {
	client      *resend.Client
	defaultFrom string
}

// NewResendSender creates a Resend-backed sender
func NewResendSender(apiKey, defaultFrom string) (*ResendSender, error) {
	client := resend.NewClient(apiKey)
	if client == nil {
		return nil, fmt.Errorf("failed to create Resend client")
	}
	return &ResendSender{client: client, defaultFrom: defaultFrom}, nil
}

// Send implements Sender
func (s *ResendSender) Send(ctx context.Context, msg *Message) (string, error) {
	from := msg.FromEmail
	if from == "" {
		from = s.defaultFrom
	}
	if msg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", msg.FromName, from)
	}

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
	}

	res, err := s.client.Emails.Send(params)
	if err != nil {
		logger.WithContext(ctx).WithField("email_to", msg.To).WithError(err).Error("Resend delivery failed")
		return "", fmt.Errorf("failed to send email: %w", err)
	}
	return res.Id, nil
}

// Router resolves SMTP configurations to SMTP senders and falls back to Resend
type Router struct {
	fallback Sender
}

// NewRouter creates a resolver; fallback may be nil
func NewRouter(fallback Sender) *Router {
	return &Router{fallback: fallback}
}

// SenderFor implements Resolver
func (r *Router) SenderFor(cfg *models.SMTPConfiguration) (Sender, error) {
	if cfg != nil {
		return NewSMTPSender(cfg), nil
	}
	if r.fallback != nil {
		return r.fallback, nil
	}
	return nil, ErrNoSender
}
