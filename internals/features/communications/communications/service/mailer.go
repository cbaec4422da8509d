package service

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"yugamki_backend/internals/configs"
)

// Mailer sends a blast to a recipient list. Implementations must treat
// the list as already deduplicated.
type Mailer interface {
	SendBulk(subject, body string, recipients []string) error
}

// SendgridMailer delivers through the SendGrid v3 API using one
// personalization per recipient so addresses stay hidden from each
// other.
type SendgridMailer struct {
	apiKey string
	from   *mail.Email
}

func NewSendgridMailer() *SendgridMailer {
	return &SendgridMailer{
		apiKey: configs.SendgridAPIKey,
		from:   mail.NewEmail(configs.EmailFromName, configs.EmailFrom),
	}
}

func (m *SendgridMailer) SendBulk(subject, body string, recipients []string) error {
	msg := mail.NewV3Mail()
	msg.SetFrom(m.from)
	msg.Subject = subject
	msg.AddContent(mail.NewContent("text/plain", body))

	for _, addr := range recipients {
		p := mail.NewPersonalization()
		p.AddTos(mail.NewEmail("", addr))
		msg.AddPersonalizations(p)
	}

	resp, err := sendgrid.NewSendClient(m.apiKey).Send(msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

// ConsoleMailer logs instead of sending. Used when no API key is
// configured so local development does not need SendGrid credentials.
type ConsoleMailer struct{}

func (ConsoleMailer) SendBulk(subject, body string, recipients []string) error {
	log.Printf("[INFO] email blast %q to %d recipients (console mailer)", subject, len(recipients))
	return nil
}

// DefaultMailer picks the real client when a key is configured.
func DefaultMailer() Mailer {
	if configs.SendgridAPIKey == "" {
		return ConsoleMailer{}
	}
	return NewSendgridMailer()
}
