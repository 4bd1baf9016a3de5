package mail

import (
	"fmt"
	"log"
	"strings"

	"github.com/hestialabs/leadgate/internal/entity"
	"github.com/hestialabs/leadgate/internal/infra/http/middleware"
)

// Dispatcher fans every notification out through the first configured
// channel (Resend -> SMTP -> log). Delivery is not part of the intake
// correctness contract: callers treat a returned error as a warning.
type Dispatcher struct {
	Channels    []Channel
	NotifyEmail string // internal recipient for lead/signup alerts
}

func NewDispatcher(notifyEmail string, channels ...Channel) *Dispatcher {
	return &Dispatcher{
		Channels:    channels,
		NotifyEmail: notifyEmail,
	}
}

func (d *Dispatcher) send(msg Message) error {
	for _, ch := range d.Channels {
		if !ch.Configured() {
			continue
		}
		if err := ch.Send(msg); err != nil {
			middleware.RecordNotificationError(ch.Name())
			return fmt.Errorf("channel %s: %w", ch.Name(), err)
		}
		return nil
	}
	// Unreachable when a LogChannel is registered last.
	return fmt.Errorf("no notification channel configured")
}

func (d *Dispatcher) SendLeadAlert(lead *entity.Lead, score entity.LeadScore) error {
	if d.NotifyEmail == "" {
		log.Printf("[MAIL] no notify address set, skipping lead alert for %s", lead.Email)
		return nil
	}

	var reasons strings.Builder
	for _, r := range score.Reasoning {
		reasons.WriteString("<li>" + r + "</li>")
	}

	html := fmt.Sprintf(
		`<h2>New %s lead (score %d)</h2>
<p><b>Name:</b> %s<br><b>Email:</b> %s<br><b>Phone:</b> %s<br><b>Intent:</b> %s</p>
<p><b>Message:</b> %s</p>
<ul>%s</ul>`,
		score.Priority, score.Score,
		lead.Name, lead.Email, lead.Phone, lead.Intent, lead.Message,
		reasons.String(),
	)

	return d.send(Message{
		To:      d.NotifyEmail,
		Subject: fmt.Sprintf("[%s] New lead: %s", score.Priority, lead.Name),
		HTML:    html,
	})
}

func (d *Dispatcher) SendAutoReply(toEmail, name string) error {
	html := fmt.Sprintf(
		`<p>Hi %s,</p>
<p>Thanks for reaching out. A member of our team will get back to you within one business day.</p>
<p>— The Hestia team</p>`,
		name,
	)

	return d.send(Message{
		To:      toEmail,
		Subject: "We got your message",
		HTML:    html,
	})
}

func (d *Dispatcher) SendSignupAlert(s *entity.Signup) error {
	if d.NotifyEmail == "" {
		log.Printf("[MAIL] no notify address set, skipping signup alert for %s", s.Email)
		return nil
	}

	html := fmt.Sprintf(
		`<h2>New beta signup</h2>
<p><b>Name:</b> %s %s<br><b>Email:</b> %s<br><b>Phone:</b> %s<br>
<b>Brokerage:</b> %s<br><b>CRM:</b> %s<br><b>Lead volume:</b> %s<br>
<b>Metro:</b> %s<br><b>Referral:</b> %s</p>`,
		s.FirstName, s.LastName, s.Email, s.Phone,
		s.Brokerage, s.CRM, s.LeadVolume, s.Metro, s.ReferralSource,
	)

	return d.send(Message{
		To:      d.NotifyEmail,
		Subject: fmt.Sprintf("New beta signup: %s %s (%s)", s.FirstName, s.LastName, s.Metro),
		HTML:    html,
	})
}

func (d *Dispatcher) SendWelcome(toEmail, firstName string) error {
	html := fmt.Sprintf(
		`<p>Hi %s,</p>
<p>Your spot in the beta is reserved. We review applications within a few days
and will email you as soon as your workspace is ready.</p>
<p>— The Hestia team</p>`,
		firstName,
	)

	return d.send(Message{
		To:      toEmail,
		Subject: "Your beta application is in",
		HTML:    html,
	})
}
