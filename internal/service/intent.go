package service

import "strings"

// Intent clasifica el proposito del mensaje del usuario.
type Intent string

const (
	IntentAssessment   Intent = "assessment_related"
	IntentCareerAdvice Intent = "career_advice"
	IntentGeneral      Intent = "general_conversation"
)

var assessmentKeywords = []string{
	"assessment", "12d", "career test", "evaluate", "analyze",
	"start assessment", "begin", "questions", "career guidance",
}

var careerKeywords = []string{
	"career advice", "job search", "resume", "interview",
	"industry", "salary", "growth", "promotion", "change career",
}

// DetectIntent decide la estrategia de respuesta por listas de keywords.
// Es deliberadamente simple: el flujo de evaluacion no depende de semantica.
func DetectIntent(input string) Intent {
	lower := strings.ToLower(input)

	for _, kw := range assessmentKeywords {
		if strings.Contains(lower, kw) {
			return IntentAssessment
		}
	}
	for _, kw := range careerKeywords {
		if strings.Contains(lower, kw) {
			return IntentCareerAdvice
		}
	}
	return IntentGeneral
}

// ConversationSuggestions devuelve sugerencias de siguiente mensaje por intent.
func ConversationSuggestions(intent Intent) []string {
	switch intent {
	case IntentAssessment:
		return []string{
			"Start my 12D career assessment",
			"Tell me about the assessment process",
			"What will I learn from this assessment?",
		}
	case IntentCareerAdvice:
		return []string{
			"How can I improve my resume?",
			"What skills should I develop?",
			"Help me plan my career path",
		}
	default:
		return []string{
			"Start my career assessment",
			"Give me career advice",
			"Help me with job search",
		}
	}
}
