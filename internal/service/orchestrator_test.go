package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"remiro-ai/internal/domain"
	"remiro-ai/internal/llm"
	"remiro-ai/internal/store"
)

const validSpectrumJSON = `{
	"profile_clarity": "clear",
	"themes": ["creative expression"],
	"key_insights": ["enjoys building things"],
	"development_areas": ["explore formal training"],
	"summary": "Shows strong creative and hands-on interests."
}`

type orchestratorFixture struct {
	orch     *Orchestrator
	profiles store.ProfileStore
	sessions SessionStore
	mock     *llm.MockClient
	userID   string
}

func newOrchestratorFixture(t *testing.T, mock *llm.MockClient) *orchestratorFixture {
	t.Helper()
	logger := zap.NewNop()

	profiles, err := store.NewFileStore(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	profile, err := profiles.Create("Alex Rivera")
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}

	sessions := NewMemorySessionStore()
	repo := &mockMessageRepo{}
	reports := NewReportService(mock, logger)
	contextSvc := NewTranscriptContextService(repo)

	orch := NewOrchestrator(mock, profiles, repo, sessions, reports, contextSvc, logger)
	return &orchestratorFixture{
		orch:     orch,
		profiles: profiles,
		sessions: sessions,
		mock:     mock,
		userID:   profile.UserID,
	}
}

func (f *orchestratorFixture) startSession(t *testing.T) *domain.Session {
	t.Helper()
	session, err := f.orch.StartSession(context.Background(), f.userID)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	return session
}

func (f *orchestratorFixture) turn(t *testing.T, sessionID, text string) domain.AgentReply {
	t.Helper()
	reply, err := f.orch.ProcessConversation(context.Background(), sessionID, text)
	if err != nil {
		t.Fatalf("process %q: %v", text, err)
	}
	return reply
}

func TestStartSessionUnknownUser(t *testing.T) {
	f := newOrchestratorFixture(t, &llm.MockClient{Response: "hi"})
	if _, err := f.orch.StartSession(context.Background(), "no-such-user"); !errors.Is(err, store.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestWelcomeMovesToCasualChat(t *testing.T) {
	f := newOrchestratorFixture(t, &llm.MockClient{Response: "hi"})
	session := f.startSession(t)

	reply := f.turn(t, session.ID, "hello!")
	if reply.Type != domain.ReplyCasual {
		t.Fatalf("expected casual reply, got %q", reply.Type)
	}
	if !strings.Contains(reply.Message, "Alex Rivera") {
		t.Fatalf("welcome should greet the user by name:\n%s", reply.Message)
	}

	saved, err := f.sessions.Get(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if saved.Stage != domain.StageCasualChat {
		t.Fatalf("expected casual_chat stage, got %q", saved.Stage)
	}
}

func TestCasualLimitForcesAssessment(t *testing.T) {
	f := newOrchestratorFixture(t, &llm.MockClient{Response: "That sounds fun!"})
	session := f.startSession(t)

	f.turn(t, session.ID, "hi there")
	for _, text := range []string{"i love hiking in the mountains", "my dog keeps me company"} {
		reply := f.turn(t, session.ID, text)
		if reply.Type != domain.ReplyCasual {
			t.Fatalf("turn %q should stay casual, got %q", text, reply.Type)
		}
	}

	// Tercer intercambio casual: transicion forzada, sin pedido explicito.
	reply := f.turn(t, session.ID, "i also paint on weekends")
	if reply.Type != domain.ReplyAssessmentQuestion {
		t.Fatalf("expected assessment question after third casual exchange, got %q", reply.Type)
	}
	if reply.Dimension != domain.DimensionInterests || reply.QuestionIndex != 0 {
		t.Fatalf("expected first interests question, got %q index %d", reply.Dimension, reply.QuestionIndex)
	}
	if !strings.Contains(reply.Message, "12D Career Assessment") {
		t.Fatalf("expected assessment intro, got:\n%s", reply.Message)
	}

	saved, err := f.sessions.Get(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if saved.Stage != domain.StageAssessment {
		t.Fatalf("expected assessment_flow stage, got %q", saved.Stage)
	}
}

func TestExplicitIntentSkipsSmallTalk(t *testing.T) {
	f := newOrchestratorFixture(t, &llm.MockClient{Response: "ok"})
	session := f.startSession(t)

	f.turn(t, session.ID, "hello")
	reply := f.turn(t, session.ID, "let's start my assessment")
	if reply.Type != domain.ReplyAssessmentQuestion {
		t.Fatalf("expected assessment question, got %q", reply.Type)
	}
	if reply.Dimension != domain.DimensionInterests {
		t.Fatalf("expected interests first, got %q", reply.Dimension)
	}
	if !strings.Contains(reply.Progress, "1/12") {
		t.Fatalf("expected progress 1/12, got %q", reply.Progress)
	}
}

func TestAssessmentStageNeverReturnsToCasual(t *testing.T) {
	f := newOrchestratorFixture(t, &llm.MockClient{Response: validSpectrumJSON})
	session := f.startSession(t)

	f.turn(t, session.ID, "hello")
	f.turn(t, session.ID, "start my assessment")

	// Input identico al small talk: dentro de la evaluacion cuenta como respuesta.
	reply := f.turn(t, session.ID, "i love hiking in the mountains")
	if reply.Type != domain.ReplyAssessmentQuestion {
		t.Fatalf("expected next question, got %q", reply.Type)
	}
	if reply.QuestionIndex != 1 {
		t.Fatalf("expected question index 1, got %d", reply.QuestionIndex)
	}

	saved, err := f.sessions.Get(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if saved.Stage != domain.StageAssessment {
		t.Fatalf("stage regressed to %q", saved.Stage)
	}
}

func TestDimensionCompletesAfterThreeResponses(t *testing.T) {
	f := newOrchestratorFixture(t, &llm.MockClient{Response: validSpectrumJSON})
	session := f.startSession(t)

	f.turn(t, session.ID, "hello")
	f.turn(t, session.ID, "start my assessment")
	f.turn(t, session.ID, "i enjoy building mechanical models")
	f.turn(t, session.ID, "weekends are for woodworking")

	// Tercera respuesta cierra interests y arranca skills.
	reply := f.turn(t, session.ID, "reading science magazines")
	if reply.Type != domain.ReplyAssessmentQuestion {
		t.Fatalf("expected skills question, got %q", reply.Type)
	}
	if reply.Dimension != domain.DimensionSkills || reply.QuestionIndex != 0 {
		t.Fatalf("expected first skills question, got %q index %d", reply.Dimension, reply.QuestionIndex)
	}
	if !strings.Contains(reply.Progress, "2/12") {
		t.Fatalf("expected progress 2/12, got %q", reply.Progress)
	}

	profile, err := f.profiles.Load(f.userID)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	rec := profile.Assessments[domain.DimensionInterests]
	if rec.Status != domain.StatusCompleted {
		t.Fatalf("expected interests completed, got %q", rec.Status)
	}
	if rec.Analysis == nil || rec.Analysis.Summary == "" {
		t.Fatalf("expected stored analysis, got %+v", rec.Analysis)
	}
	if len(rec.Responses) != 3 {
		t.Fatalf("expected exactly 3 responses, got %d", len(rec.Responses))
	}
	if rec.CompletedAt == nil {
		t.Fatalf("expected CompletedAt set")
	}
	if profile.CompletedCount() != 1 {
		t.Fatalf("expected 1 completed dimension, got %d", profile.CompletedCount())
	}
}

func TestFullAssessmentEndsWithReport(t *testing.T) {
	f := newOrchestratorFixture(t, &llm.MockClient{Response: validSpectrumJSON})
	session := f.startSession(t)

	f.turn(t, session.ID, "hello")
	reply := f.turn(t, session.ID, "start my assessment")
	if reply.Type != domain.ReplyAssessmentQuestion {
		t.Fatalf("expected first question, got %q", reply.Type)
	}

	// 12 dimensiones x 3 respuestas; el ultimo turno devuelve el reporte.
	var last domain.AgentReply
	for i := 0; i < domain.DimensionCount*3; i++ {
		last = f.turn(t, session.ID, "a thoughtful answer about my working life")
	}

	if last.Type != domain.ReplyFullReport {
		t.Fatalf("expected full report, got %q: %s", last.Type, last.Message)
	}
	if last.Report == nil || last.Report.Summary == "" {
		t.Fatalf("expected report with summary, got %+v", last.Report)
	}
	if !strings.Contains(last.Progress, "12/12") || !strings.Contains(last.Progress, "100%") {
		t.Fatalf("expected 12/12 (100%%) progress, got %q", last.Progress)
	}

	profile, err := f.profiles.Load(f.userID)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if !profile.IsComplete() {
		t.Fatalf("profile should be complete")
	}
	if profile.Report == nil {
		t.Fatalf("report should be cached on the profile")
	}
	for _, d := range domain.DimensionOrder {
		rec := profile.Assessments[d]
		if rec.Status != domain.StatusCompleted {
			t.Fatalf("dimension %q not completed", d)
		}
		if len(rec.Responses) != 3 {
			t.Fatalf("dimension %q has %d responses, want 3", d, len(rec.Responses))
		}
	}

	saved, err := f.sessions.Get(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if saved.Stage != domain.StageCompleted {
		t.Fatalf("expected completed stage, got %q", saved.Stage)
	}
}

func TestAssessmentSurvivesLLMOutage(t *testing.T) {
	f := newOrchestratorFixture(t, &llm.MockClient{Err: errors.New("llm down")})
	session := f.startSession(t)

	f.turn(t, session.ID, "hello")
	f.turn(t, session.ID, "start my assessment")
	f.turn(t, session.ID, "i like fixing bikes and machines")
	f.turn(t, session.ID, "i research topics deeply before deciding")

	reply := f.turn(t, session.ID, "helping friends with their problems")
	if reply.Type != domain.ReplyAssessmentQuestion {
		t.Fatalf("flow should continue past LLM outage, got %q", reply.Type)
	}

	profile, err := f.profiles.Load(f.userID)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	rec := profile.Assessments[domain.DimensionInterests]
	if rec.Status != domain.StatusCompleted {
		t.Fatalf("interests should complete with fallback analysis, got %q", rec.Status)
	}
	if rec.Analysis == nil || !rec.Analysis.Fallback {
		t.Fatalf("expected fallback analysis, got %+v", rec.Analysis)
	}
}

func TestReturningCompleteUserGoesToCompleted(t *testing.T) {
	f := newOrchestratorFixture(t, &llm.MockClient{Response: validSpectrumJSON})
	session := f.startSession(t)

	f.turn(t, session.ID, "hello")
	f.turn(t, session.ID, "start my assessment")
	for i := 0; i < domain.DimensionCount*3; i++ {
		f.turn(t, session.ID, "an answer")
	}

	// Nueva sesion del mismo usuario: bienvenida de regreso, sin re-evaluar.
	second := f.startSession(t)
	reply := f.turn(t, second.ID, "hi again")
	if reply.Type != domain.ReplyCasual {
		t.Fatalf("expected casual welcome back, got %q", reply.Type)
	}
	if !strings.Contains(reply.Message, "Welcome back") {
		t.Fatalf("expected welcome back message, got:\n%s", reply.Message)
	}

	saved, err := f.sessions.Get(context.Background(), second.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if saved.Stage != domain.StageCompleted {
		t.Fatalf("expected completed stage, got %q", saved.Stage)
	}
}

func TestProcessConversationUnknownSession(t *testing.T) {
	f := newOrchestratorFixture(t, &llm.MockClient{Response: "hi"})
	if _, err := f.orch.ProcessConversation(context.Background(), "no-such-session", "hello"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestTranscriptRecordsBothRoles(t *testing.T) {
	mock := &llm.MockClient{Response: "nice!"}
	f := newOrchestratorFixture(t, mock)
	session := f.startSession(t)

	f.turn(t, session.ID, "hello there")

	repo := f.orch.messages.(*mockMessageRepo)
	if len(repo.messages) != 2 {
		t.Fatalf("expected user + assistant messages, got %d", len(repo.messages))
	}
	if repo.messages[0].Role != domain.RoleUser || repo.messages[1].Role != domain.RoleAssistant {
		t.Fatalf("unexpected roles: %q, %q", repo.messages[0].Role, repo.messages[1].Role)
	}
	if repo.messages[0].SessionID != session.ID {
		t.Fatalf("transcript not tied to session")
	}
}
