package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"remiro-ai/internal/domain"
)

// Errores de degradacion del analisis. Se loguean distinto: un modelo caido
// no es lo mismo que un modelo que contesta mal.
var (
	ErrLLMUnavailable  = errors.New("llm unavailable")
	ErrMalformedOutput = errors.New("llm output not parseable")
)

// buildSpectrumPrompt arma el prompt de cierre de dimension: pide un JSON
// con forma fija sobre las 3 respuestas del usuario.
func buildSpectrumPrompt(spec DimensionSpec, responses []string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("As a %s, analyze these user responses to assess their %s profile.\n\n", spec.AgentName, spec.Dimension))
	sb.WriteString("Responses:\n")
	for i, q := range spec.Questions {
		answer := "Not provided"
		if i < len(responses) {
			answer = responses[i]
		}
		sb.WriteString(fmt.Sprintf("%d. (%s) %s\n", i+1, q.Purpose, answer))
	}

	sb.WriteString(`
Analyze and provide ONLY a JSON object with this exact shape:
{
  "profile_clarity": "clear" or "unclear",
  "themes": ["3-5 key themes identified"],
  "key_insights": ["2-3 key insights about this dimension"],
  "development_areas": ["areas worth exploring further"],
  "summary": "2-3 sentence summary of this dimension's profile"
}
`)

	if len(spec.FallbackKeywords) > 0 {
		sb.WriteString("\nCategory reference:\n")
		for _, cat := range sortedKeys(spec.FallbackKeywords) {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", cat, strings.Join(spec.FallbackKeywords[cat], ", ")))
		}
	}

	return sb.String()
}

// ParseSpectrumAnalysis intenta parsear la respuesta del LLM de manera
// robusta: limpia fences, busca el primer objeto JSON balanceado y recien
// despues intenta el texto crudo.
func ParseSpectrumAnalysis(raw string) (*domain.SpectrumAnalysis, error) {
	cleaned := CleanLLMJSONResponse(raw)

	candidates := []string{}
	if obj := extractFirstJSONObject(cleaned); obj != "" {
		candidates = append(candidates, obj)
	}
	if obj := extractFirstJSONObject(raw); obj != "" {
		candidates = append(candidates, obj)
	}
	candidates = append(candidates, cleaned, raw)

	for _, candidate := range candidates {
		if strings.TrimSpace(candidate) == "" {
			continue
		}
		var analysis domain.SpectrumAnalysis
		if err := json.Unmarshal([]byte(candidate), &analysis); err != nil {
			continue
		}
		if strings.TrimSpace(analysis.Summary) == "" {
			continue
		}
		normalizeAnalysis(&analysis)
		return &analysis, nil
	}

	return nil, fmt.Errorf("%w: no usable JSON object", ErrMalformedOutput)
}

func normalizeAnalysis(a *domain.SpectrumAnalysis) {
	if a.ProfileClarity != "clear" && a.ProfileClarity != "unclear" {
		a.ProfileClarity = "unclear"
	}
	if a.Themes == nil {
		a.Themes = []string{}
	}
	if a.KeyInsights == nil {
		a.KeyInsights = []string{}
	}
	if a.DevelopmentAreas == nil {
		a.DevelopmentAreas = []string{}
	}
}

// FallbackAnalysis construye un analisis deterministico sin LLM: mapea
// keywords de las respuestas a las categorias de la dimension.
func FallbackAnalysis(spec DimensionSpec, responses []string) *domain.SpectrumAnalysis {
	combined := strings.ToLower(strings.Join(responses, " "))

	var themes []string
	for _, cat := range sortedKeys(spec.FallbackKeywords) {
		for _, kw := range spec.FallbackKeywords[cat] {
			if strings.Contains(combined, kw) {
				themes = append(themes, cat)
				break
			}
		}
	}

	clarity := "unclear"
	if len(themes) > 0 && len(responses) >= 3 {
		clarity = "clear"
	}
	if themes == nil {
		themes = []string{}
	}

	return &domain.SpectrumAnalysis{
		ProfileClarity:   clarity,
		Themes:           themes,
		KeyInsights:      []string{"Responses recorded for later review with a career counselor."},
		DevelopmentAreas: []string{"Revisit this dimension when AI analysis is available."},
		Summary:          spec.FallbackSummary,
		Fallback:         true,
	}
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
