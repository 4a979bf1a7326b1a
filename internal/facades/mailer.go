package facades

import (
	"context"
	"fmt"
	"time"

	"github.com/JP-maker/gamegauge-api/internal/logger"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridClient is the subset of *sendgrid.Client used by the mailer.
type SendGridClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridMailer delivers account emails through SendGrid.
type SendGridMailer struct {
	client   SendGridClient
	fromName string
	fromAddr string
	resetTTL time.Duration
}

// MailerOption configures a SendGridMailer.
type MailerOption func(*SendGridMailer)

// WithResetLinkTTL states how long reset links stay valid in the reset email.
func WithResetLinkTTL(ttl time.Duration) MailerOption {
	return func(m *SendGridMailer) {
		m.resetTTL = ttl
	}
}

// NewSendGridMailer creates a mailer backed by a SendGrid client for apiKey.
func NewSendGridMailer(apiKey, fromAddr, fromName string, opts ...MailerOption) *SendGridMailer {
	return NewSendGridMailerWithClient(sendgrid.NewSendClient(apiKey), fromAddr, fromName, opts...)
}

func NewSendGridMailerWithClient(client SendGridClient, fromAddr, fromName string, opts ...MailerOption) *SendGridMailer {
	m := &SendGridMailer{client: client, fromAddr: fromAddr, fromName: fromName}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SendResetLink emails a password reset link to the given address.
func (m *SendGridMailer) SendResetLink(ctx context.Context, to, link string) error {
	plain := fmt.Sprintf("Click the link to reset your password: %s", link)
	if m.resetTTL > 0 {
		plain = fmt.Sprintf("Click the link to reset your password (valid for %s): %s", humanDuration(m.resetTTL), link)
	}
	html := fmt.Sprintf(`
        <html>
        <body>
            <h2>Password reset</h2>
            <p>A password reset was requested for your GameGauge account.</p>
            <p><a href="%s">Choose a new password</a></p>
            <p>If you didn't ask for this, you can safely ignore this email.</p>
        </body>
        </html>
    `, link)
	return m.send(ctx, to, "Reset your GameGauge password", plain, html)
}

// SendVerificationLink emails an address verification link.
func (m *SendGridMailer) SendVerificationLink(ctx context.Context, to, link string) error {
	plain := fmt.Sprintf("Click the link to verify your email: %s", link)
	html := fmt.Sprintf(`
        <html>
        <body>
            <h2>Email Verification</h2>
            <p>Thank you for registering! Please verify your email by clicking the link below:</p>
            <p><a href="%s">Verify Email</a></p>
            <p>If you didn't create this account, you can safely ignore this email.</p>
        </body>
        </html>
    `, link)
	return m.send(ctx, to, "Verify your GameGauge email", plain, html)
}

func (m *SendGridMailer) send(ctx context.Context, to, subject, plain, html string) error {
	from := mail.NewEmail(m.fromName, m.fromAddr)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), plain, html)

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to send email via SendGrid", "to", to, "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		logger.FromContext(ctx).Errorw("sendgrid rejected email", "to", to, "status", response.StatusCode)
		return fmt.Errorf("sendgrid error: %d - %s", response.StatusCode, response.Body)
	}

	return nil
}

// humanDuration renders whole hours or minutes, e.g. "30 minutes", "1 hour".
func humanDuration(d time.Duration) string {
	n, unit := int(d.Round(time.Minute)/time.Minute), "minute"
	if d >= time.Hour && d%time.Hour == 0 {
		n, unit = int(d/time.Hour), "hour"
	}
	if n != 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s", n, unit)
}
