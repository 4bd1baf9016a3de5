package mail

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"

	"github.com/hestialabs/leadgate/internal/infra/integration/resend"
)

// ResendChannel delivers through the Resend transactional API.
type ResendChannel struct {
	Client *resend.Client
	From   string
}

func (c *ResendChannel) Name() string { return "resend" }

func (c *ResendChannel) Configured() bool {
	return c != nil && c.Client.Configured() && c.From != ""
}

func (c *ResendChannel) Send(msg Message) error {
	_, err := c.Client.SendEmail(resend.SendEmailInput{
		From:    c.From,
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	return err
}

// SMTPChannel is the relay fallback used when no provider API key is set.
type SMTPChannel struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func (c *SMTPChannel) Name() string { return "smtp" }

func (c *SMTPChannel) Configured() bool {
	return c != nil && c.Host != "" && c.From != ""
}

func (c *SMTPChannel) Send(msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", c.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	d := gomail.NewDialer(c.Host, c.Port, c.User, c.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("SMTP send failed: %w", err)
	}

	return nil
}

// LogChannel is always configured; it records the message instead of
// delivering it, so the dispatcher never runs out of channels.
type LogChannel struct{}

func (c *LogChannel) Name() string { return "log" }

func (c *LogChannel) Configured() bool { return true }

func (c *LogChannel) Send(msg Message) error {
	log.Printf("[MAIL] (log fallback) to=%s subject=%q", msg.To, msg.Subject)
	return nil
}
