package usecase

import (
	"fmt"
	"strings"

	"github.com/hestialabs/leadgate/internal/entity"
)

type QualifyLeadInput struct {
	Message string
	Intent  string
	Phone   string
}

var (
	urgencyKeywords = []string{
		"urgent", "asap", "immediately", "soon", "quickly",
		"ready to buy", "looking to purchase",
	}
	businessKeywords = []string{
		"business", "company", "team", "organization", "enterprise",
	}
	timingKeywords = []string{
		"today", "tomorrow", "this week", "next week",
	}
)

// QualifyLead scores a submission into a priority tier. Pure and
// deterministic: same input, same output. Rules are additive and each is
// evaluated exactly once; the reasoning list records one entry per rule
// that fired, in evaluation order.
func QualifyLead(in QualifyLeadInput) entity.LeadScore {
	score := 0
	var reasoning []string

	switch in.Intent {
	case "demo":
		score += 40
		reasoning = append(reasoning, "requested a demo (+40)")
	case "pricing":
		score += 30
		reasoning = append(reasoning, "asked about pricing (+30)")
	case "question":
		score += 10
		reasoning = append(reasoning, "general question (+10)")
	}

	if strings.TrimSpace(in.Phone) != "" {
		score += 20
		reasoning = append(reasoning, "provided a phone number (+20)")
	}

	message := strings.ToLower(in.Message)

	if kw := firstMatch(message, urgencyKeywords); kw != "" {
		score += 25
		reasoning = append(reasoning, fmt.Sprintf("urgency signal %q (+25)", kw))
	}

	if kw := firstMatch(message, businessKeywords); kw != "" {
		score += 15
		reasoning = append(reasoning, fmt.Sprintf("business signal %q (+15)", kw))
	}

	if kw := firstMatch(message, timingKeywords); kw != "" {
		score += 15
		reasoning = append(reasoning, fmt.Sprintf("timing signal %q (+15)", kw))
	}

	if len(in.Message) > 100 {
		score += 10
		reasoning = append(reasoning, "detailed message (+10)")
	}

	priority := entity.PriorityCold
	if score >= 60 {
		priority = entity.PriorityHot
	} else if score >= 30 {
		priority = entity.PriorityWarm
	}

	return entity.LeadScore{
		Score:     score,
		Priority:  priority,
		Reasoning: reasoning,
	}
}

func firstMatch(message string, keywords []string) string {
	for _, kw := range keywords {
		if strings.Contains(message, kw) {
			return kw
		}
	}
	return ""
}
