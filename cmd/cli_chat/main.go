package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
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

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	profiles, err := store.NewFileStore(cfg.DataDir, logger)
	if err != nil {
		log.Fatal(err)
	}

	sqlitePath := cfg.SQLitePath
	if sqlitePath == "" {
		sqlitePath = filepath.Join(cfg.DataDir, "messages.db")
	}
	messageRepo, err := repository.OpenSQLiteMessageRepository(sqlitePath)
	if err != nil {
		log.Fatal(err)
	}
	defer messageRepo.Close()

	var llmClient llm.Client
	switch cfg.LLMProvider {
	case "openai":
		llmClient = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, nil)
	default:
		geminiClient, err := llm.NewGeminiClient(ctx, cfg.LLMAPIKey, cfg.LLMModel)
		if err != nil {
			log.Fatal(err)
		}
		llmClient = geminiClient
	}

	reportSvc := service.NewReportService(llmClient, logger)
	contextSvc := service.NewTranscriptContextService(messageRepo)
	orch := service.NewOrchestrator(
		llmClient,
		profiles,
		messageRepo,
		service.NewMemorySessionStore(),
		reportSvc,
		contextSvc,
		logger,
	)

	for {
		fmt.Println("===== Remiro AI =====")
		user, err := selectUser(ctx, reader, profiles)
		if err != nil {
			log.Fatalf("seleccionar usuario: %v", err)
		}

		if err := chatFlow(ctx, reader, orch, user); err != nil {
			log.Printf("error en chat: %v", err)
		}
	}
}

func selectUser(ctx context.Context, reader *bufio.Reader, profiles store.ProfileStore) (domain.User, error) {
	users, err := profiles.ListUsers()
	if err != nil {
		return domain.User{}, err
	}
	if len(users) == 0 {
		fmt.Println("No hay usuarios. Crea uno nuevo.")
		return createUserFlow(reader, profiles)
	}

	fmt.Println("Usuarios disponibles:")
	for i, u := range users {
		fmt.Printf("[%d] %s (ID: %s)\n", i+1, u.Name, u.ID)
	}
	fmt.Println("[C] Crear nuevo usuario")
	fmt.Print("Selecciona un usuario: ")
	choice, _ := reader.ReadString('\n')
	choice = strings.TrimSpace(choice)

	if strings.EqualFold(choice, "C") {
		return createUserFlow(reader, profiles)
	}

	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 1 || idx > len(users) {
		fmt.Println("Seleccion invalida.")
		return selectUser(ctx, reader, profiles)
	}
	return users[idx-1], nil
}

func createUserFlow(reader *bufio.Reader, profiles store.ProfileStore) (domain.User, error) {
	fmt.Print("Tu nombre: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		name = "user"
	}

	profile, err := profiles.Create(name)
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{
		ID:        profile.UserID,
		Name:      profile.Name,
		CreatedAt: profile.CreatedAt,
	}, nil
}

func chatFlow(ctx context.Context, reader *bufio.Reader, orch *service.Orchestrator, user domain.User) error {
	session, err := orch.StartSession(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("crear sesion: %w", err)
	}

	fmt.Println("---- Modo Chat (escribe 'salir' para cambiar de usuario) ----")
	fmt.Println("Remiro > Hola! Escribe cualquier cosa para arrancar.")
	for {
		fmt.Print("Tu > ")
		text, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("leer input: %w", err)
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if strings.EqualFold(text, "salir") || strings.EqualFold(text, "exit") {
			fmt.Println("Saliendo del chat...")
			return nil
		}

		reply, err := orch.ProcessConversation(ctx, session.ID, text)
		if err != nil {
			fmt.Printf("error generando respuesta: %v\n", err)
			continue
		}

		fmt.Printf("Remiro > %s\n", reply.Message)
		if reply.Progress != "" {
			fmt.Printf("         [progreso: %s]\n", reply.Progress)
		}
		if reply.Type == domain.ReplyFullReport && reply.Report != nil {
			printReport(reply.Report)
		}
	}
}

func printReport(report *domain.CareerReport) {
	fmt.Println("\n======== Reporte de Carrera ========")
	for _, role := range report.RoleRecommendations {
		fmt.Printf("- %s (match %d%%)\n", role.Title, role.MatchScore)
	}
	if len(report.IndustryInsights.BestIndustries) > 0 {
		fmt.Printf("Industrias sugeridas: %s\n", strings.Join(report.IndustryInsights.BestIndustries, ", "))
	}
	fmt.Println(report.Summary)
	fmt.Println("====================================")
}
