package mail

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hestialabs/leadgate/internal/entity"
)

type fakeChannel struct {
	name       string
	configured bool
	err        error
	sent       []Message
}

func (c *fakeChannel) Name() string     { return c.name }
func (c *fakeChannel) Configured() bool { return c.configured }
func (c *fakeChannel) Send(msg Message) error {
	c.sent = append(c.sent, msg)
	return c.err
}

func TestDispatcherUsesFirstConfiguredChannel(t *testing.T) {
	primary := &fakeChannel{name: "resend", configured: false}
	fallback := &fakeChannel{name: "smtp", configured: true}
	last := &fakeChannel{name: "log", configured: true}

	d := NewDispatcher("ops@hestialabs.io", primary, fallback, last)

	err := d.SendAutoReply("lead@example.com", "Sam")

	assert.NoError(t, err)
	assert.Empty(t, primary.sent, "unconfigured channel must be skipped")
	assert.Len(t, fallback.sent, 1)
	assert.Empty(t, last.sent, "dispatch stops at the first configured channel")
	assert.Equal(t, "lead@example.com", fallback.sent[0].To)
}

func TestDispatcherDoesNotFailOverOnSendError(t *testing.T) {
	failing := &fakeChannel{name: "resend", configured: true, err: errors.New("api down")}
	last := &fakeChannel{name: "log", configured: true}

	d := NewDispatcher("ops@hestialabs.io", failing, last)

	err := d.SendAutoReply("lead@example.com", "Sam")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "resend")
	assert.Empty(t, last.sent)
}

func TestDispatcherSkipsInternalAlertsWithoutRecipient(t *testing.T) {
	ch := &fakeChannel{name: "log", configured: true}
	d := NewDispatcher("", ch)

	lead := &entity.Lead{Email: "lead@example.com", Name: "Sam"}
	assert.NoError(t, d.SendLeadAlert(lead, entity.LeadScore{Priority: entity.PriorityWarm}))
	assert.NoError(t, d.SendSignupAlert(&entity.Signup{Email: "lead@example.com"}))
	assert.Empty(t, ch.sent)

	// the lead-facing auto-reply still goes out
	assert.NoError(t, d.SendAutoReply("lead@example.com", "Sam"))
	assert.Len(t, ch.sent, 1)
}

func TestDispatcherLeadAlertContent(t *testing.T) {
	ch := &fakeChannel{name: "log", configured: true}
	d := NewDispatcher("ops@hestialabs.io", ch)

	lead := &entity.Lead{
		Email:   "lead@example.com",
		Name:    "Sam Ortiz",
		Message: "ready to buy asap",
		Intent:  "demo",
	}
	score := entity.LeadScore{
		Score:    85,
		Priority: entity.PriorityHot,
		Reasoning: []string{
			"requested a demo (+40)",
			`urgency signal "asap" (+25)`,
		},
	}

	assert.NoError(t, d.SendLeadAlert(lead, score))
	assert.Len(t, ch.sent, 1)

	msg := ch.sent[0]
	assert.Equal(t, "ops@hestialabs.io", msg.To)
	assert.Contains(t, msg.Subject, "Hot")
	assert.Contains(t, msg.HTML, "Sam Ortiz")
	assert.Contains(t, msg.HTML, "requested a demo")
}

func TestLogChannelAlwaysConfigured(t *testing.T) {
	ch := &LogChannel{}
	assert.True(t, ch.Configured())
	assert.NoError(t, ch.Send(Message{To: "x@example.com", Subject: "s"}))
}
