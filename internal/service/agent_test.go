package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"remiro-ai/internal/domain"
	"remiro-ai/internal/llm"
)

func newInterestsAgent(t *testing.T, client llm.Client) *Agent {
	t.Helper()
	return NewAgent(interestsSpec(t), client, zap.NewNop())
}

func TestAgentHasThreeQuestions(t *testing.T) {
	for _, spec := range Catalog() {
		agent := NewAgent(spec, &llm.MockClient{}, zap.NewNop())
		if len(agent.Questions()) != 3 {
			t.Fatalf("dimension %s: expected 3 questions, got %d", spec.Dimension, len(agent.Questions()))
		}
		for _, q := range agent.Questions() {
			if q.ID == "" || q.Question == "" || q.Purpose == "" {
				t.Fatalf("dimension %s: incomplete question %+v", spec.Dimension, q)
			}
		}
	}
}

func TestAgentAsksNextQuestion(t *testing.T) {
	agent := newInterestsAgent(t, &llm.MockClient{})

	reply := agent.ProcessResponse(context.Background(), []string{"I love building things"})
	if reply.Type != domain.ReplyAssessmentQuestion {
		t.Fatalf("expected question reply, got %s", reply.Type)
	}
	if reply.QuestionIndex != 1 {
		t.Fatalf("expected question index 1, got %d", reply.QuestionIndex)
	}
	if !strings.Contains(reply.Message, agent.Questions()[1].Question) {
		t.Fatalf("reply should contain second question:\n%s", reply.Message)
	}
}

func TestAgentCompletesOnThirdResponse(t *testing.T) {
	client := &llm.MockClient{
		Response: `{"profile_clarity": "clear", "themes": ["Artistic"], "summary": "Creative profile."}`,
	}
	agent := newInterestsAgent(t, client)

	reply := agent.ProcessResponse(context.Background(), []string{"a", "b", "c"})
	if reply.Type != domain.ReplyAssessmentComplete {
		t.Fatalf("expected complete reply, got %s", reply.Type)
	}
	if reply.Analysis == nil || reply.Analysis.Summary != "Creative profile." {
		t.Fatalf("expected model analysis, got %+v", reply.Analysis)
	}
	if len(client.Prompts) != 1 {
		t.Fatalf("expected exactly one llm call, got %d", len(client.Prompts))
	}
}

func TestAgentFallsBackWhenLLMDown(t *testing.T) {
	client := &llm.MockClient{Err: errors.New("connection refused")}
	agent := newInterestsAgent(t, client)

	reply := agent.ProcessResponse(context.Background(), []string{"build stuff", "research", "teach people"})
	if reply.Type != domain.ReplyAssessmentComplete {
		t.Fatalf("expected complete reply, got %s", reply.Type)
	}
	if reply.Analysis == nil || !reply.Analysis.Fallback {
		t.Fatalf("expected fallback analysis, got %+v", reply.Analysis)
	}
	if reply.Analysis.Summary == "" {
		t.Fatalf("fallback analysis must carry a summary")
	}
}

func TestAgentFallsBackOnMalformedOutput(t *testing.T) {
	client := &llm.MockClient{Response: "I'd rather chat about the weather."}
	agent := newInterestsAgent(t, client)

	analysis := agent.GetSpectrumAnalysis(context.Background(), []string{"a", "b", "c"})
	if !analysis.Fallback {
		t.Fatalf("expected fallback on malformed output")
	}
}

func TestDetectEmotionalTone(t *testing.T) {
	cases := map[string]string{
		"I'm so excited and passionate about this!": "positive",
		"Honestly I feel stuck and overwhelmed":     "negative",
		"I think it depends on the context":         "neutral",
	}
	for input, want := range cases {
		if got := detectEmotionalTone(input); got != want {
			t.Fatalf("tone(%q) = %s, want %s", input, got, want)
		}
	}
}

func TestEmpatheticPrefixIsStable(t *testing.T) {
	a := empatheticPrefix("positive", "same input")
	b := empatheticPrefix("positive", "same input")
	if a != b {
		t.Fatalf("prefix must be deterministic for identical input")
	}
	if empatheticPrefix("unknown tone", "x") == "" {
		t.Fatalf("unknown tone must fall back to neutral starters")
	}
}
