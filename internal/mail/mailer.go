// Package mail dispatches transactional email (login codes, invoices,
// temporary passwords) through Resend, with a log-only fallback for
// local development.
package mail

import (
	"context"
	"log"

	"github.com/resend/resend-go/v3"
)

// Message is one outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer sends a message. Failures are returned, never swallowed: the
// login flow treats a failed OTP dispatch as a failed attempt.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// ResendMailer sends through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

// NewResendMailer builds a mailer with the given API key and From
// header (e.g. `"Twiller" <no-reply@example.com>`).
func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(apiKey), from: from}
}

func (m *ResendMailer) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		log.Printf("[mail] resend send to %s failed: %v", msg.To, err)
		return err
	}
	log.Printf("[mail] sent %q to %s (id %s)", msg.Subject, msg.To, sent.Id)
	return nil
}

// LogMailer writes messages to the log instead of sending them. Used
// when RESEND_API_KEY is not configured.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, msg Message) error {
	log.Printf("---------------------------------------------------")
	log.Printf("MOCK EMAIL TO: %s", msg.To)
	log.Printf("SUBJECT: %s", msg.Subject)
	log.Printf("BODY: %s", msg.HTML)
	log.Printf("---------------------------------------------------")
	return nil
}
