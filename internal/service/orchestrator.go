package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"remiro-ai/internal/domain"
	"remiro-ai/internal/llm"
	"remiro-ai/internal/repository"
	"remiro-ai/internal/store"
)

// casualExchangeLimit: despues del tercer intercambio casual se fuerza la
// transicion a la evaluacion, sin importar el contenido.
const casualExchangeLimit = 2

// Orchestrator secuencia la conversacion: etapas, agente activo por
// dimension y reporte final. El perfil en disco es la fuente de verdad del
// progreso; la sesion solo guarda la etapa y los contadores.
type Orchestrator struct {
	llmClient  llm.Client
	profiles   store.ProfileStore
	messages   repository.MessageRepository
	sessions   SessionStore
	reports    *ReportService
	contextSvc ContextService
	agents     map[domain.Dimension]*Agent
	logger     *zap.Logger
}

func NewOrchestrator(
	llmClient llm.Client,
	profiles store.ProfileStore,
	messages repository.MessageRepository,
	sessions SessionStore,
	reports *ReportService,
	contextSvc ContextService,
	logger *zap.Logger,
) *Orchestrator {
	agents := make(map[domain.Dimension]*Agent, domain.DimensionCount)
	for _, spec := range Catalog() {
		agents[spec.Dimension] = NewAgent(spec, llmClient, logger)
	}
	return &Orchestrator{
		llmClient:  llmClient,
		profiles:   profiles,
		messages:   messages,
		sessions:   sessions,
		reports:    reports,
		contextSvc: contextSvc,
		agents:     agents,
		logger:     logger,
	}
}

// StartSession crea el estado conversacional para un usuario existente.
func (o *Orchestrator) StartSession(ctx context.Context, userID string) (*domain.Session, error) {
	if _, err := o.profiles.Load(userID); err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	now := time.Now().UTC()
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Stage:     domain.StageWelcome,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := o.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return session, nil
}

// ProcessConversation es el punto de entrada de cada turno del usuario.
func (o *Orchestrator) ProcessConversation(ctx context.Context, sessionID, userText string) (domain.AgentReply, error) {
	session, err := o.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.AgentReply{}, fmt.Errorf("get session: %w", err)
	}

	profile, err := o.profiles.Load(session.UserID)
	if err != nil {
		return domain.AgentReply{}, fmt.Errorf("load profile: %w", err)
	}

	o.recordMessage(ctx, session, domain.RoleUser, userText)
	session.TotalExchanges++

	var reply domain.AgentReply
	switch session.Stage {
	case domain.StageWelcome:
		reply = o.handleWelcome(session, profile)
	case domain.StageCasualChat:
		reply = o.handleCasualChat(ctx, session, profile, userText)
	case domain.StageAssessment:
		reply, err = o.handleAssessment(ctx, session, profile, userText)
	case domain.StageCompleted:
		reply = o.handlePostAssessment(ctx, session, profile, userText)
	default:
		reply = domain.AgentReply{
			Type:    domain.ReplyError,
			Message: "Something went wrong. Let's continue our chat!",
		}
	}
	if err != nil {
		return domain.AgentReply{}, err
	}

	if err := o.sessions.Save(ctx, session); err != nil {
		return domain.AgentReply{}, fmt.Errorf("save session: %w", err)
	}
	o.recordMessage(ctx, session, domain.RoleAssistant, reply.Message)

	return reply, nil
}

func (o *Orchestrator) handleWelcome(session *domain.Session, profile *domain.UserProfile) domain.AgentReply {
	session.Stage = domain.StageCasualChat

	// Usuario que vuelve con evaluacion terminada va directo al cierre.
	if profile.IsComplete() {
		session.Stage = domain.StageCompleted
		return domain.AgentReply{
			Type:     domain.ReplyCasual,
			Message:  fmt.Sprintf("Welcome back, %s! Your career assessment is complete. Ask me anything about your results.", profile.Name),
			Progress: o.progressLabel(profile),
		}
	}

	message := fmt.Sprintf(
		"Hey there, %s! I'm Remiro, your friendly career companion!\n\n"+
			"It's great to meet you! I'm here to have a nice chat and help you explore some exciting career possibilities.\n\n"+
			"So, tell me - what kind of things do you love doing in your free time? What are your hobbies or interests that really get you excited?",
		profile.Name,
	)
	return domain.AgentReply{
		Type:        domain.ReplyCasual,
		Message:     message,
		Suggestions: ConversationSuggestions(IntentGeneral),
	}
}

func (o *Orchestrator) handleCasualChat(ctx context.Context, session *domain.Session, profile *domain.UserProfile, userText string) domain.AgentReply {
	// El pedido explicito de evaluacion salta el small talk.
	if DetectIntent(userText) == IntentAssessment {
		return o.beginAssessment(ctx, session, profile)
	}

	session.CasualExchanges++
	if session.CasualExchanges > casualExchangeLimit {
		return o.transitionToAssessment(ctx, session, profile, userText)
	}

	return domain.AgentReply{
		Type:    domain.ReplyCasual,
		Message: o.casualResponse(ctx, session, userText),
	}
}

// casualResponse genera la respuesta de small talk con el LLM; si falla,
// sale la respuesta enlatada.
func (o *Orchestrator) casualResponse(ctx context.Context, session *domain.Session, userText string) string {
	contextText := ""
	if o.contextSvc != nil {
		if text, err := o.contextSvc.GetContext(ctx, session.ID); err == nil {
			contextText = text
		}
	}

	var sb strings.Builder
	sb.WriteString("You are Remiro, a friendly and casual career companion having a natural conversation about someone's interests and hobbies.\n\n")
	if contextText != "" {
		sb.WriteString("Recent conversation:\n")
		sb.WriteString(contextText)
		sb.WriteString("\n\n")
	}
	sb.WriteString(fmt.Sprintf("User just said: %q\n\n", userText))
	sb.WriteString("Respond in a friendly, enthusiastic way: show genuine interest, ask one follow-up question, keep it casual. Don't mention assessments or formal career evaluation yet. Keep it under 3 sentences.")

	response, err := o.llmClient.Generate(ctx, sb.String())
	if err != nil {
		if o.logger != nil {
			o.logger.Warn("casual response degraded", zap.Error(err), zap.String("session_id", session.ID))
		}
		return "That sounds really interesting! Tell me more about what you enjoy most about that. What is it that draws you to it?"
	}
	return strings.TrimSpace(response)
}

// transitionToAssessment cierra el small talk y arranca la primera dimension.
// Desde aca la etapa nunca vuelve a casual_chat en esta sesion.
func (o *Orchestrator) transitionToAssessment(ctx context.Context, session *domain.Session, profile *domain.UserProfile, userText string) domain.AgentReply {
	reply := o.beginAssessment(ctx, session, profile)
	reply.Message = "I've really enjoyed getting to know you! I'd love to dig a little deeper and help you map out what careers could truly fit you.\n\n" + reply.Message
	return reply
}

func (o *Orchestrator) beginAssessment(ctx context.Context, session *domain.Session, profile *domain.UserProfile) domain.AgentReply {
	next := profile.NextDimension()
	if next == "" {
		return o.completeFullAssessment(ctx, session, profile)
	}

	session.Stage = domain.StageAssessment
	session.ActiveDimension = next

	rec := profile.Assessments[next]
	if rec.Status == domain.StatusNotStarted {
		now := time.Now().UTC()
		rec.Status = domain.StatusInProgress
		rec.StartedAt = &now
		profile.Assessments[next] = rec
		if err := o.profiles.Save(profile); err != nil && o.logger != nil {
			o.logger.Error("profile save failed", zap.Error(err), zap.String("user_id", profile.UserID))
		}
	}

	agent := o.agents[next]
	questionIndex := len(rec.Responses)
	if questionIndex >= len(agent.Questions()) {
		questionIndex = len(agent.Questions()) - 1
	}
	question := agent.Questions()[questionIndex]

	message := question.Question
	if questionIndex == 0 && next == domain.DimensionOrder[0] {
		message = "Welcome to your personalized 12D Career Assessment!\n\n" +
			"I'm going to help you discover your ideal career path through a comprehensive analysis of 12 key dimensions.\n\n" +
			"Let's start with exploring your interests. " + question.Question
	} else if questionIndex == 0 {
		message = fmt.Sprintf("Excellent! Now let's explore %s.\n\n%s", agent.CoreDomain(), question.Question)
	}

	return domain.AgentReply{
		Type:          domain.ReplyAssessmentQuestion,
		Message:       message,
		Dimension:     next,
		QuestionIndex: questionIndex,
		Progress:      fmt.Sprintf("%d/%d - %s", next.Index()+1, domain.DimensionCount, agent.Name()),
	}
}

func (o *Orchestrator) handleAssessment(ctx context.Context, session *domain.Session, profile *domain.UserProfile, userText string) (domain.AgentReply, error) {
	dim := session.ActiveDimension
	if dim == "" || !dim.IsValid() {
		return o.beginAssessment(ctx, session, profile), nil
	}

	agent := o.agents[dim]
	rec := profile.Assessments[dim]

	// Nunca acumulamos mas respuestas que preguntas predefinidas.
	if len(rec.Responses) < len(agent.Questions()) {
		rec.Responses = append(rec.Responses, userText)
	}
	profile.Assessments[dim] = rec

	reply := agent.ProcessResponse(ctx, rec.Responses)

	if reply.Type == domain.ReplyAssessmentComplete {
		now := time.Now().UTC()
		rec.Status = domain.StatusCompleted
		rec.Analysis = reply.Analysis
		rec.CompletedAt = &now
		profile.Assessments[dim] = rec
		if err := o.profiles.Save(profile); err != nil {
			return domain.AgentReply{}, fmt.Errorf("save profile: %w", err)
		}
		return o.moveToNextDimension(ctx, session, profile), nil
	}

	if err := o.profiles.Save(profile); err != nil {
		return domain.AgentReply{}, fmt.Errorf("save profile: %w", err)
	}
	reply.Progress = fmt.Sprintf("%d/%d - %s", dim.Index()+1, domain.DimensionCount, agent.Name())
	return reply, nil
}

func (o *Orchestrator) moveToNextDimension(ctx context.Context, session *domain.Session, profile *domain.UserProfile) domain.AgentReply {
	if profile.IsComplete() {
		return o.completeFullAssessment(ctx, session, profile)
	}
	return o.beginAssessment(ctx, session, profile)
}

// completeFullAssessment genera el reporte agregado y cierra la sesion.
func (o *Orchestrator) completeFullAssessment(ctx context.Context, session *domain.Session, profile *domain.UserProfile) domain.AgentReply {
	session.Stage = domain.StageCompleted
	session.ActiveDimension = ""

	report := profile.Report
	if report == nil {
		report = o.reports.Generate(ctx, profile)
		profile.Report = report
		if err := o.profiles.Save(profile); err != nil && o.logger != nil {
			o.logger.Error("profile save failed", zap.Error(err), zap.String("user_id", profile.UserID))
		}
	}

	message := "Congratulations! Your 12D Career Assessment is complete!\n\n" +
		"I've analyzed your responses across all 12 dimensions and generated a comprehensive career profile for you.\n\n" +
		report.Summary +
		"\n\nWould you like me to dive deeper into any specific area, or do you have other career questions?"

	return domain.AgentReply{
		Type:     domain.ReplyFullReport,
		Message:  message,
		Report:   report,
		Progress: o.progressLabel(profile),
	}
}

// handlePostAssessment responde consultas una vez terminada la evaluacion.
func (o *Orchestrator) handlePostAssessment(ctx context.Context, session *domain.Session, profile *domain.UserProfile, userText string) domain.AgentReply {
	summary := ""
	if profile.Report != nil {
		summary = profile.Report.Summary
	}

	var sb strings.Builder
	sb.WriteString("You are Remiro, a career counselor. The user has completed their 12-dimension career assessment.\n\n")
	if summary != "" {
		sb.WriteString("Their career profile summary: " + summary + "\n\n")
	}
	sb.WriteString(fmt.Sprintf("User asks: %q\n\n", userText))
	sb.WriteString("Answer helpfully and concretely, grounded in their profile. Keep it under 5 sentences.")

	response, err := o.llmClient.Generate(ctx, sb.String())
	if err != nil {
		if o.logger != nil {
			o.logger.Warn("post-assessment response degraded", zap.Error(err), zap.String("session_id", session.ID))
		}
		response = "Your assessment is complete! Let me know what career guidance you'd like to explore."
	}

	return domain.AgentReply{
		Type:        domain.ReplyCasual,
		Message:     strings.TrimSpace(response),
		Suggestions: ConversationSuggestions(DetectIntent(userText)),
		Progress:    o.progressLabel(profile),
	}
}

func (o *Orchestrator) progressLabel(profile *domain.UserProfile) string {
	return fmt.Sprintf("%d/%d completed (%.0f%%)", profile.CompletedCount(), domain.DimensionCount, profile.CompletionPercent())
}

// recordMessage persiste un turno en el transcript. Best effort: un fallo
// del transcript no corta la conversacion.
func (o *Orchestrator) recordMessage(ctx context.Context, session *domain.Session, role, content string) {
	if o.messages == nil || strings.TrimSpace(content) == "" {
		return
	}
	msg := domain.Message{
		ID:        uuid.NewString(),
		UserID:    session.UserID,
		SessionID: session.ID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := o.messages.Create(ctx, msg); err != nil && o.logger != nil {
		o.logger.Warn("transcript write failed", zap.Error(err), zap.String("session_id", session.ID))
	}
}
