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

func completedProfile() *domain.UserProfile {
	profile := domain.NewUserProfile("user-1", "Ana")
	for _, d := range domain.DimensionOrder {
		rec := profile.Assessments[d]
		rec.Status = domain.StatusCompleted
		rec.Responses = []string{"r1", "r2", "r3"}
		rec.Analysis = &domain.SpectrumAnalysis{
			ProfileClarity: "clear",
			Summary:        "summary for " + string(d),
		}
		profile.Assessments[d] = rec
	}
	return profile
}

func TestReportGenerateHappyPath(t *testing.T) {
	client := &llm.MockClient{
		Response: `{
			"role_recommendations": [{"title": "Data Analyst", "match_score": 92, "reasons": ["analytical"], "companies": ["Acme"]}],
			"skill_development_plan": [{"skill": "SQL", "priority": "high", "timeline": "3 months", "resources": ["course"]}],
			"career_roadmap": {"6_months": ["learn"], "1_year": ["apply"], "3_years": ["lead"]},
			"industry_insights": {"best_industries": ["Tech"], "company_types": ["startup"], "growth_sectors": ["AI"]},
			"summary": "Analytical profile with strong growth potential."
		}`,
	}
	svc := NewReportService(client, zap.NewNop())

	report := svc.Generate(context.Background(), completedProfile())
	if report.Fallback {
		t.Fatalf("expected model report, got fallback")
	}
	if len(report.RoleRecommendations) != 1 || report.RoleRecommendations[0].Title != "Data Analyst" {
		t.Fatalf("unexpected recommendations: %+v", report.RoleRecommendations)
	}
	if report.Summary == "" {
		t.Fatalf("summary must not be empty")
	}

	// El prompt debe llevar los analisis de todas las dimensiones.
	if len(client.Prompts) != 1 {
		t.Fatalf("expected one llm call, got %d", len(client.Prompts))
	}
	for _, d := range domain.DimensionOrder {
		if !strings.Contains(client.Prompts[0], "summary for "+string(d)) {
			t.Fatalf("prompt missing analysis for %s", d)
		}
	}
}

func TestReportGenerateFallsBackWhenLLMDown(t *testing.T) {
	svc := NewReportService(&llm.MockClient{Err: errors.New("quota exceeded")}, zap.NewNop())

	report := svc.Generate(context.Background(), completedProfile())
	if !report.Fallback {
		t.Fatalf("expected fallback report")
	}
	if len(report.RoleRecommendations) == 0 || report.Summary == "" {
		t.Fatalf("fallback report must be fully populated: %+v", report)
	}
}

func TestReportGenerateFallsBackOnMalformedOutput(t *testing.T) {
	svc := NewReportService(&llm.MockClient{Response: "sorry, here is prose instead of JSON"}, zap.NewNop())

	report := svc.Generate(context.Background(), completedProfile())
	if !report.Fallback {
		t.Fatalf("expected fallback report")
	}
}

func TestParseCareerReportWithFences(t *testing.T) {
	raw := "```json\n{\"summary\": \"ok\", \"career_roadmap\": {\"6_months\": [\"a\"]}}\n```"
	report, err := ParseCareerReport(raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(report.CareerRoadmap.SixMonths) != 1 {
		t.Fatalf("roadmap not parsed: %+v", report.CareerRoadmap)
	}
}
