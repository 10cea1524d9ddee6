package usecase

import "strings"

// AssistantUseCase is the rule-based "AI" chat. Replies are canned strings
// keyed on keywords in the message; there is no inference anywhere.
type AssistantUseCase struct{}

func NewAssistantUseCase() *AssistantUseCase {
	return &AssistantUseCase{}
}

func (uc *AssistantUseCase) Reply(message string) string {
	input := strings.ToLower(message)

	switch {
	case strings.Contains(input, "email") || strings.Contains(input, "follow-up"):
		return emailReply
	case strings.Contains(input, "call") || strings.Contains(input, "prep"):
		return callPrepReply
	case strings.Contains(input, "strategy") || strings.Contains(input, "negotiation"):
		return strategyReply
	case strings.Contains(input, "pipeline") || strings.Contains(input, "analyze"):
		return pipelineReply
	default:
		return fallbackReply
	}
}

const emailReply = `I'll help you draft a compelling follow-up email. Based on your recent interaction with TechCorp, here's a personalized approach:

Subject: Next Steps for Your Digital Transformation Initiative

Hi Jennifer,

Thank you for the productive conversation yesterday. Based on your concerns about integration complexity, I've prepared a detailed technical overview that addresses your specific infrastructure requirements.

I'd love to schedule a 30-minute call with your technical team to walk through our seamless integration process. Are you available this Thursday at 2 PM?

Best regards,
Sarah`

const callPrepReply = `Great! Let me help you prepare for your call with Jennifer Wilson from TechCorp.

Key points to cover:
- Their budget approval timeline (Q1 priority)
- Integration with their existing CRM system
- Security compliance requirements

Questions to ask:
- What's driving the urgency for Q1 implementation?
- Who else is involved in the final decision?
- What's their biggest concern about switching platforms?`

const strategyReply = `For the TechCorp negotiation, I recommend a consultative approach.

Key insights:
- They're price-sensitive but value-focused
- Decision timeline is Q1 (creates urgency)
- Technical integration is their main concern

Recommended strategy:
1. Lead with ROI and long-term value
2. Offer phased implementation to reduce risk
3. Include additional training and support in the initial package
4. Position as strategic partnership, not vendor relationship

Watch out for:
- Don't compete solely on price
- Address integration concerns proactively
- Get multiple stakeholders involved early`

const pipelineReply = `Here's your Q1 pipeline analysis:

Pipeline health: strong
- Total value: $845K across 23 deals
- Average deal size: $37K (above target)
- Win rate trending: 68% (up 5% from last quarter)

Hot opportunities:
- TechCorp ($250K) - 85% probability, closes Mar 15
- SecureBank ($95K) - 68% probability, urgent timeline

Attention needed:
- DataFlow deal stalled in negotiation - recommend value-based approach
- GreenTech needs technical validation - schedule demo ASAP

Recommendation: focus on closing TechCorp and SecureBank this month to exceed the Q1 target by 15%.`

const fallbackReply = `I understand you're looking for help with that. Let me provide some insights based on your sales data and best practices. Could you provide more specific details about what you'd like me to focus on? I can help with lead qualification, deal analysis, email drafting, objection handling, or strategic planning.`
