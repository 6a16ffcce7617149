// flow_check recorre la evaluacion completa de las 12 dimensiones contra el
// orquestador real, con un LLM guionado por defecto o el real si hay API key.
// Sirve para validar el flujo de punta a punta sin levantar el servidor.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"remiro-ai/internal/config"
	"remiro-ai/internal/domain"
	"remiro-ai/internal/llm"
	"remiro-ai/internal/repository"
	"remiro-ai/internal/service"
	"remiro-ai/internal/store"
)

const (
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

func main() {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	llmClient := buildLLMClient(ctx, cfg)

	dataDir, err := os.MkdirTemp("", "remiro-flow-check-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dataDir)

	profiles, err := store.NewFileStore(dataDir, logger)
	if err != nil {
		log.Fatal(err)
	}
	messageRepo, err := repository.OpenSQLiteMessageRepository(":memory:")
	if err != nil {
		log.Fatal(err)
	}
	defer messageRepo.Close()

	reportSvc := service.NewReportService(llmClient, logger)
	orch := service.NewOrchestrator(
		llmClient,
		profiles,
		messageRepo,
		service.NewMemorySessionStore(),
		reportSvc,
		service.NewTranscriptContextService(messageRepo),
		logger,
	)

	profile, err := profiles.Create("Flow Check")
	if err != nil {
		log.Fatal(err)
	}
	session, err := orch.StartSession(ctx, profile.UserID)
	if err != nil {
		log.Fatal(err)
	}

	failures := 0
	turn := func(input string, wantType domain.ReplyType) domain.AgentReply {
		fmt.Printf("%s[Tu]%s %s\n", colorCyan, colorReset, input)
		reply, err := orch.ProcessConversation(ctx, session.ID, input)
		if err != nil {
			log.Fatalf("turno fallido: %v", err)
		}
		fmt.Printf("%s[Remiro]%s %s\n", colorGreen, colorReset, truncate(reply.Message, 160))
		if reply.Progress != "" {
			fmt.Printf("         progreso: %s\n", reply.Progress)
		}
		if reply.Type != wantType {
			failures++
			fmt.Printf("%sFALLO:%s esperaba %q, llego %q\n", colorRed, colorReset, wantType, reply.Type)
		}
		fmt.Println()
		return reply
	}

	// Bienvenida y small talk hasta la transicion forzada.
	turn("hola!", domain.ReplyCasual)
	turn("me gusta cocinar y leer novelas", domain.ReplyCasual)
	turn("tengo un perro que me acompana a todos lados", domain.ReplyCasual)
	turn("los domingos salgo a andar en bici", domain.ReplyAssessmentQuestion)

	// 12 dimensiones x 3 respuestas. La ultima devuelve el reporte.
	answers := []string{
		"I enjoy building things with my hands and solving technical problems",
		"I spend my free time researching how systems work under the hood",
		"Helping people figure out their problems is deeply satisfying to me",
	}
	var last domain.AgentReply
	total := domain.DimensionCount * len(answers)
	for i := 0; i < total; i++ {
		want := domain.ReplyAssessmentQuestion
		if i == total-1 {
			want = domain.ReplyFullReport
		}
		last = turn(answers[i%len(answers)], want)
	}

	// Verificacion del estado final.
	final, err := profiles.Load(profile.UserID)
	if err != nil {
		log.Fatal(err)
	}
	if !final.IsComplete() {
		failures++
		fmt.Printf("%sFALLO:%s perfil incompleto: %d/%d\n", colorRed, colorReset, final.CompletedCount(), domain.DimensionCount)
	}
	for _, d := range domain.DimensionOrder {
		rec := final.Assessments[d]
		if rec.Analysis == nil || rec.Analysis.Summary == "" {
			failures++
			fmt.Printf("%sFALLO:%s dimension %s sin analisis\n", colorRed, colorReset, d)
		}
	}
	if last.Report == nil || last.Report.Summary == "" {
		failures++
		fmt.Printf("%sFALLO:%s reporte final vacio\n", colorRed, colorReset)
	}

	fmt.Println("==== Resumen ====")
	fmt.Printf("Dimensiones completadas: %d/%d\n", final.CompletedCount(), domain.DimensionCount)
	if last.Report != nil {
		fmt.Printf("Reporte (fallback=%v): %s\n", last.Report.Fallback, last.Report.Summary)
	}
	if failures > 0 {
		fmt.Printf("%s%d fallos%s\n", colorRed, failures, colorReset)
		os.Exit(1)
	}
	fmt.Printf("%sTodo en orden%s\n", colorGreen, colorReset)
}

func buildLLMClient(ctx context.Context, cfg *config.Config) llm.Client {
	if cfg.LLMAPIKey != "" {
		if cfg.LLMProvider == "openai" {
			return llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, log.Default())
		}
		client, err := llm.NewGeminiClient(ctx, cfg.LLMAPIKey, cfg.LLMModel)
		if err != nil {
			log.Fatal(err)
		}
		return client
	}
	fmt.Println("(sin API key: corriendo con LLM guionado)")
	return scriptedClient{}
}

// scriptedClient responde segun el tipo de prompt, sin red. Suficiente para
// ejercitar el parseo JSON y el flujo completo.
type scriptedClient struct{}

func (scriptedClient) Generate(_ context.Context, prompt string) (string, error) {
	switch {
	case strings.Contains(prompt, "role_recommendations"):
		return `{
			"role_recommendations": [{"title": "Solutions Engineer", "match_score": 88, "reasons": ["hands-on problem solving"], "companies": ["product companies"]}],
			"skill_development_plan": [{"skill": "System design", "priority": "high", "timeline": "6 months", "resources": ["architecture books"]}],
			"career_roadmap": {"6_months": ["ship a side project"], "1_year": ["move into a technical lead role"], "3_years": ["own a product area"]},
			"industry_insights": {"best_industries": ["Technology"], "company_types": ["startup"], "growth_sectors": ["developer tooling"]},
			"summary": "A builder profile that thrives where technical depth meets helping people."
		}`, nil
	case strings.Contains(prompt, "profile_clarity"):
		return "```json\n{\"profile_clarity\": \"clear\", \"themes\": [\"hands-on problem solving\"], \"key_insights\": [\"prefers concrete work over abstract talk\"], \"development_areas\": [\"broaden exposure to new domains\"], \"summary\": \"Consistent hands-on, investigative profile.\"}\n```", nil
	default:
		return "That sounds great! What do you enjoy most about it?", nil
	}
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
