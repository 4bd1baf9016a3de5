package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hestialabs/leadgate/internal/entity"
)

func TestQualifyLeadHotScenario(t *testing.T) {
	input := QualifyLeadInput{
		Intent:  "demo",
		Phone:   "5551234567",
		Message: "We are ready to buy this week",
	}

	score := QualifyLead(input)

	// demo 40 + phone 20 + urgency 25 + timing 15
	assert.Equal(t, 100, score.Score)
	assert.Equal(t, entity.PriorityHot, score.Priority)
	assert.Len(t, score.Reasoning, 4)
}

func TestQualifyLeadColdScenario(t *testing.T) {
	score := QualifyLead(QualifyLeadInput{Message: "just looking"})

	assert.Equal(t, 0, score.Score)
	assert.Equal(t, entity.PriorityCold, score.Priority)
	assert.Empty(t, score.Reasoning)
}

func TestQualifyLeadWarmScenario(t *testing.T) {
	score := QualifyLead(QualifyLeadInput{Intent: "pricing"})

	assert.Equal(t, 30, score.Score)
	assert.Equal(t, entity.PriorityWarm, score.Priority)
}

func TestQualifyLeadRuleBreakdown(t *testing.T) {
	tests := []struct {
		name    string
		input   QualifyLeadInput
		score   int
	}{
		{"question intent", QualifyLeadInput{Intent: "question"}, 10},
		{"unknown intent ignored", QualifyLeadInput{Intent: "other"}, 0},
		{"phone only", QualifyLeadInput{Phone: "555 123 4567"}, 20},
		{"whitespace phone ignored", QualifyLeadInput{Phone: "   "}, 0},
		{"urgency keyword", QualifyLeadInput{Message: "this is URGENT"}, 25},
		{"business keyword", QualifyLeadInput{Message: "for my company"}, 15},
		{"timing keyword", QualifyLeadInput{Message: "call me tomorrow"}, 15},
		{"long message", QualifyLeadInput{Message: strings.Repeat("x", 101)}, 10},
		{"urgency counted once", QualifyLeadInput{Message: "urgent urgent asap"}, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.score, QualifyLead(tt.input).Score)
		})
	}
}

func TestQualifyLeadIsDeterministic(t *testing.T) {
	input := QualifyLeadInput{
		Intent:  "pricing",
		Phone:   "5550001111",
		Message: "Our team needs this asap, ideally today",
	}

	first := QualifyLead(input)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, QualifyLead(input))
	}
}

func TestQualifyLeadReasoningOrder(t *testing.T) {
	score := QualifyLead(QualifyLeadInput{
		Intent:  "demo",
		Phone:   "5551234567",
		Message: "our company is ready to buy today",
	})

	// 40+20+25+15+15 = 115
	assert.Equal(t, 115, score.Score)
	require := []string{"demo", "phone", "urgency", "business", "timing"}
	assert.Len(t, score.Reasoning, len(require))
	for i, fragment := range require {
		assert.Contains(t, strings.ToLower(score.Reasoning[i]), fragment)
	}
}
