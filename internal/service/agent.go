package service

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"strings"

	"go.uber.org/zap"

	"remiro-ai/internal/domain"
	"remiro-ai/internal/llm"
)

// Agent conduce la evaluacion de una dimension: 3 preguntas fijas y un
// analisis de espectro al cierre.
type Agent struct {
	spec      DimensionSpec
	llmClient llm.Client
	logger    *zap.Logger
}

func NewAgent(spec DimensionSpec, llmClient llm.Client, logger *zap.Logger) *Agent {
	return &Agent{spec: spec, llmClient: llmClient, logger: logger}
}

func (a *Agent) Dimension() domain.Dimension { return a.spec.Dimension }
func (a *Agent) Name() string                { return a.spec.AgentName }
func (a *Agent) CoreDomain() string          { return a.spec.CoreDomain }

// Questions devuelve las 3 preguntas predefinidas en orden.
func (a *Agent) Questions() []domain.Question {
	return a.spec.Questions[:]
}

// ProcessResponse recibe todas las respuestas acumuladas (incluida la nueva)
// y decide: siguiente pregunta o cierre con analisis. Con 3 respuestas la
// dimension termina siempre; nunca se piden mas preguntas.
func (a *Agent) ProcessResponse(ctx context.Context, responses []string) domain.AgentReply {
	if len(responses) >= len(a.spec.Questions) {
		analysis := a.GetSpectrumAnalysis(ctx, responses)
		return domain.AgentReply{
			Type:      domain.ReplyAssessmentComplete,
			Dimension: a.spec.Dimension,
			Analysis:  analysis,
			Message:   fmt.Sprintf("That completes our look at %s.", a.spec.CoreDomain),
		}
	}

	nextIndex := len(responses)
	tone := detectEmotionalTone(responses[len(responses)-1])
	question := a.spec.Questions[nextIndex]

	return domain.AgentReply{
		Type:          domain.ReplyAssessmentQuestion,
		Dimension:     a.spec.Dimension,
		QuestionIndex: nextIndex,
		Message:       empatheticPrefix(tone, responses[len(responses)-1]) + question.Question,
	}
}

// GetSpectrumAnalysis llama al LLM una vez y parsea su JSON. Cualquier
// fallo degrada al analisis deterministico, con el tipo de error logueado.
func (a *Agent) GetSpectrumAnalysis(ctx context.Context, responses []string) *domain.SpectrumAnalysis {
	prompt := buildSpectrumPrompt(a.spec, responses)

	raw, err := a.llmClient.Generate(ctx, prompt)
	if err != nil {
		if a.logger != nil {
			a.logger.Warn("spectrum analysis degraded",
				zap.String("dimension", string(a.spec.Dimension)),
				zap.NamedError("cause", fmt.Errorf("%w: %v", ErrLLMUnavailable, err)),
			)
		}
		return FallbackAnalysis(a.spec, responses)
	}

	analysis, err := ParseSpectrumAnalysis(raw)
	if err != nil {
		if a.logger != nil {
			a.logger.Warn("spectrum analysis degraded",
				zap.String("dimension", string(a.spec.Dimension)),
				zap.Bool("malformed_output", errors.Is(err, ErrMalformedOutput)),
				zap.Error(err),
			)
		}
		return FallbackAnalysis(a.spec, responses)
	}
	return analysis
}

// detectEmotionalTone clasifica el tono del input por keywords.
func detectEmotionalTone(input string) string {
	lower := strings.ToLower(input)

	sadKeywords := []string{
		"sad", "disappointed", "frustrated", "worried", "anxious", "depressed",
		"upset", "stressed", "overwhelmed", "confused", "lost", "stuck", "difficult", "hard",
	}
	happyKeywords := []string{
		"excited", "happy", "thrilled", "motivated", "passionate", "love", "enjoy",
		"great", "amazing", "wonderful", "fantastic", "awesome", "perfect", "brilliant",
	}

	sadCount := 0
	for _, w := range sadKeywords {
		if strings.Contains(lower, w) {
			sadCount++
		}
	}
	happyCount := 0
	for _, w := range happyKeywords {
		if strings.Contains(lower, w) {
			happyCount++
		}
	}

	switch {
	case happyCount > sadCount && happyCount > 0:
		return "positive"
	case sadCount > happyCount && sadCount > 0:
		return "negative"
	default:
		return "neutral"
	}
}

var empathyStarters = map[string][]string{
	"positive": {
		"I can feel your enthusiasm! That's wonderful to hear. ",
		"Your positive energy really comes through! ",
		"It's great to sense your excitement about this. ",
	},
	"negative": {
		"I understand this might feel challenging right now. ",
		"I hear that this is a difficult topic for you. ",
		"I appreciate you sharing these concerns with me. ",
	},
	"neutral": {
		"Thank you for that thoughtful response. ",
		"I appreciate you taking the time to reflect on this. ",
		"That's a very insightful perspective. ",
	},
}

// empatheticPrefix elige un arranque empatico segun tono. El hash del input
// hace la eleccion estable para tests, sin rand.
func empatheticPrefix(tone, input string) string {
	starters, ok := empathyStarters[tone]
	if !ok {
		starters = empathyStarters["neutral"]
	}
	h := fnv.New32a()
	h.Write([]byte(input))
	return starters[int(h.Sum32())%len(starters)]
}
