package services

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Notifier delivers the "new application" emails and the daily digest to the
// agency inbox. Delivery is best effort: callers log failures and move on,
// a submission never fails because an email did.
type Notifier interface {
	Notify(subject, plainText string) error
}

type SendGridNotifier struct {
	apiKey   string
	from     string
	fromName string
	to       string
}

func NewSendGridNotifier(apiKey, from, fromName, to string) *SendGridNotifier {
	return &SendGridNotifier{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
		to:       to,
	}
}

func (s *SendGridNotifier) Notify(subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.from)
	recipient := mail.NewEmail("", s.to)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	resp, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// NoopNotifier is used when no SendGrid key is configured (local dev, CI).
type NoopNotifier struct{}

func (NoopNotifier) Notify(subject, plainText string) error { return nil }
