package mail

import (
	"fmt"
	"log"

	"github.com/hestialabs/leadgate/internal/infra/integration/twilio"
)

// SMSSender alerts the configured phone number about hot leads. Same
// best-effort contract as the email dispatcher.
type SMSSender struct {
	client     *twilio.Client
	alertPhone string
}

func NewSMSSender(client *twilio.Client, alertPhone string) *SMSSender {
	return &SMSSender{
		client:     client,
		alertPhone: alertPhone,
	}
}

func (s *SMSSender) SendHotLeadAlert(name, phone, intent string, score int) error {
	if !s.client.Configured() || s.alertPhone == "" {
		log.Printf("[SMS] not configured, skipping hot lead alert for %s", name)
		return nil
	}

	body := fmt.Sprintf("Hot lead: %s (score %d)", name, score)
	if intent != "" {
		body += fmt.Sprintf(", intent %s", intent)
	}
	if phone != "" {
		body += fmt.Sprintf(", phone %s", phone)
	}

	return s.client.SendSMS(twilio.SendSMSInput{
		To:   s.alertPhone,
		Body: body,
	})
}
