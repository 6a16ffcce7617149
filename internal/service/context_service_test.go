package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"remiro-ai/internal/domain"
)

type mockMessageRepo struct {
	messages []domain.Message
	err      error
}

func (m *mockMessageRepo) Create(ctx context.Context, message domain.Message) error {
	m.messages = append(m.messages, message)
	return m.err
}

func (m *mockMessageRepo) ListBySessionID(ctx context.Context, sessionID string) ([]domain.Message, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.Message
	for _, msg := range m.messages {
		if msg.SessionID == sessionID {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (m *mockMessageRepo) ListByUserID(ctx context.Context, userID string) ([]domain.Message, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.Message
	for _, msg := range m.messages {
		if msg.UserID == userID {
			out = append(out, msg)
		}
	}
	return out, nil
}

func TestTranscriptContextFormatsRoles(t *testing.T) {
	base := time.Now().UTC()
	repo := &mockMessageRepo{messages: []domain.Message{
		{SessionID: "s", Role: domain.RoleUser, Content: "hola", CreatedAt: base},
		{SessionID: "s", Role: domain.RoleAssistant, Content: "hey!", CreatedAt: base.Add(time.Second)},
	}}
	svc := NewTranscriptContextService(repo)

	text, err := svc.GetContext(context.Background(), "s")
	if err != nil {
		t.Fatalf("get context: %v", err)
	}
	if !strings.Contains(text, "User: hola") || !strings.Contains(text, "Remiro: hey!") {
		t.Fatalf("unexpected context:\n%s", text)
	}
}

func TestTranscriptContextKeepsLastTen(t *testing.T) {
	base := time.Now().UTC()
	repo := &mockMessageRepo{}
	for i := 0; i < 15; i++ {
		repo.messages = append(repo.messages, domain.Message{
			SessionID: "s",
			Role:      domain.RoleUser,
			Content:   strings.Repeat("x", i+1),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
	}
	svc := NewTranscriptContextService(repo)

	text, err := svc.GetContext(context.Background(), "s")
	if err != nil {
		t.Fatalf("get context: %v", err)
	}
	if got := len(strings.Split(text, "\n")); got != 10 {
		t.Fatalf("expected 10 lines, got %d", got)
	}
	// Deben quedar los ultimos, no los primeros.
	if !strings.Contains(text, strings.Repeat("x", 15)) {
		t.Fatalf("missing most recent message")
	}
}

func TestTranscriptContextEmptySession(t *testing.T) {
	svc := NewTranscriptContextService(&mockMessageRepo{})
	text, err := svc.GetContext(context.Background(), "  ")
	if err != nil || text != "" {
		t.Fatalf("expected empty context without error, got %q, %v", text, err)
	}
}

func TestTranscriptContextRepoError(t *testing.T) {
	svc := NewTranscriptContextService(&mockMessageRepo{err: errors.New("db down")})
	if _, err := svc.GetContext(context.Background(), "s"); err == nil {
		t.Fatalf("expected error from repo")
	}
}
