package service

import "testing"

func TestDetectIntent(t *testing.T) {
	cases := map[string]Intent{
		"I want to start my assessment":        IntentAssessment,
		"can we begin?":                        IntentAssessment,
		"help me with my resume please":        IntentCareerAdvice,
		"what salary should I ask for":         IntentCareerAdvice,
		"hello there, how are you today":       IntentGeneral,
		"me gusta cocinar los fines de semana": IntentGeneral,
	}
	for input, want := range cases {
		if got := DetectIntent(input); got != want {
			t.Fatalf("intent(%q) = %s, want %s", input, got, want)
		}
	}
}

func TestConversationSuggestionsNonEmpty(t *testing.T) {
	for _, intent := range []Intent{IntentAssessment, IntentCareerAdvice, IntentGeneral} {
		if len(ConversationSuggestions(intent)) == 0 {
			t.Fatalf("no suggestions for %s", intent)
		}
	}
}
