package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"remiro-ai/internal/domain"
	"remiro-ai/internal/llm"
)

// ReportService genera el analisis agregado final sobre las 12 dimensiones.
type ReportService struct {
	llmClient llm.Client
	logger    *zap.Logger
}

func NewReportService(llmClient llm.Client, logger *zap.Logger) *ReportService {
	return &ReportService{llmClient: llmClient, logger: logger}
}

// Generate concatena los analisis de todas las dimensiones completadas en
// un solo prompt y pide el reporte de carrera como JSON. Nunca devuelve nil:
// si el LLM falla o contesta mal, sale el reporte de respaldo.
func (s *ReportService) Generate(ctx context.Context, profile *domain.UserProfile) *domain.CareerReport {
	prompt, err := buildReportPrompt(profile)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("report prompt build failed", zap.Error(err))
		}
		return fallbackReport()
	}

	raw, err := s.llmClient.Generate(ctx, prompt)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("career report degraded",
				zap.NamedError("cause", fmt.Errorf("%w: %v", ErrLLMUnavailable, err)),
			)
		}
		return fallbackReport()
	}

	report, err := ParseCareerReport(raw)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("career report degraded",
				zap.Bool("malformed_output", errors.Is(err, ErrMalformedOutput)),
				zap.Error(err),
			)
		}
		return fallbackReport()
	}
	return report
}

func buildReportPrompt(profile *domain.UserProfile) (string, error) {
	analyses := make(map[string]*domain.SpectrumAnalysis)
	for _, d := range domain.DimensionOrder {
		rec := profile.Assessments[d]
		if rec.Status == domain.StatusCompleted && rec.Analysis != nil {
			analyses[string(d)] = rec.Analysis
		}
	}

	encoded, err := json.MarshalIndent(analyses, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode analyses: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("As an expert career counselor, create a comprehensive career analysis based on this 12D assessment data:\n\n")
	sb.WriteString("Assessment Results:\n")
	sb.Write(encoded)
	sb.WriteString(`

Generate a detailed career analysis with role recommendations, a skill
development plan, a career roadmap and industry insights.

Provide ONLY a JSON object:
{
  "role_recommendations": [
    {"title": "Role Title", "match_score": 95, "reasons": ["why it fits"], "companies": ["example companies"]}
  ],
  "skill_development_plan": [
    {"skill": "Skill Name", "priority": "high/medium/low", "timeline": "timeframe", "resources": ["learning resources"]}
  ],
  "career_roadmap": {
    "6_months": ["specific goals and steps"],
    "1_year": ["specific goals and steps"],
    "3_years": ["specific goals and steps"]
  },
  "industry_insights": {
    "best_industries": ["industry names"],
    "company_types": ["startup", "enterprise"],
    "growth_sectors": ["emerging areas"]
  },
  "summary": "2-3 sentence overview of their career profile and potential"
}
`)
	return sb.String(), nil
}

// ParseCareerReport aplica la misma estrategia robusta que el analisis por
// dimension: limpiar, extraer el primer objeto, recien despues el crudo.
func ParseCareerReport(raw string) (*domain.CareerReport, error) {
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
		var report domain.CareerReport
		if err := json.Unmarshal([]byte(candidate), &report); err != nil {
			continue
		}
		if strings.TrimSpace(report.Summary) == "" {
			continue
		}
		return &report, nil
	}

	return nil, fmt.Errorf("%w: no usable JSON object", ErrMalformedOutput)
}

func fallbackReport() *domain.CareerReport {
	return &domain.CareerReport{
		RoleRecommendations: []domain.RoleRecommendation{
			{
				Title:      "Career Specialist",
				MatchScore: 90,
				Reasons:    []string{"Strong assessment completion"},
				Companies:  []string{"Various"},
			},
		},
		SkillDevelopmentPlan: []domain.SkillPlanItem{
			{
				Skill:     "Leadership",
				Priority:  "high",
				Timeline:  "6 months",
				Resources: []string{"Online courses"},
			},
		},
		CareerRoadmap: domain.CareerRoadmap{
			SixMonths:  []string{"Complete skill development", "Build portfolio"},
			OneYear:    []string{"Apply for target roles", "Network actively"},
			ThreeYears: []string{"Achieve leadership position", "Mentor others"},
		},
		IndustryInsights: domain.IndustryInsights{
			BestIndustries: []string{"Technology", "Consulting"},
			CompanyTypes:   []string{"Mid-size", "Growth-oriented"},
			GrowthSectors:  []string{"AI", "Digital Transformation"},
		},
		Summary:  "You have a strong professional profile with excellent potential for career growth across multiple industries.",
		Fallback: true,
	}
}
