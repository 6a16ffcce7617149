package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"remiro-ai/internal/domain"
)

func TestSQLiteMessageRepoCreateAndList(t *testing.T) {
	repo, err := OpenSQLiteMessageRepository(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()
	sessionID := uuid.NewString()
	base := time.Now().UTC().Truncate(time.Millisecond)

	for i, content := range []string{"hola", "first question", "my answer"} {
		msg := domain.Message{
			ID:        uuid.NewString(),
			UserID:    "user-1",
			SessionID: sessionID,
			Role:      domain.RoleUser,
			Content:   content,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		if i == 1 {
			msg.Role = domain.RoleAssistant
		}
		if err := repo.Create(ctx, msg); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	messages, err := repo.ListBySessionID(ctx, sessionID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}
	if messages[0].Content != "hola" || messages[2].Content != "my answer" {
		t.Fatalf("messages out of order: %v", messages)
	}
	if messages[1].Role != domain.RoleAssistant {
		t.Fatalf("expected assistant role, got %s", messages[1].Role)
	}
}

func TestSQLiteMessageRepoListByUser(t *testing.T) {
	repo, err := OpenSQLiteMessageRepository(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()
	now := time.Now().UTC()
	for _, userID := range []string{"user-a", "user-a", "user-b"} {
		err := repo.Create(ctx, domain.Message{
			ID:        uuid.NewString(),
			UserID:    userID,
			Role:      domain.RoleUser,
			Content:   "x",
			CreatedAt: now,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	messages, err := repo.ListByUserID(ctx, "user-a")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages for user-a, got %d", len(messages))
	}
	// session_id nulo debe quedar como string vacio.
	if messages[0].SessionID != "" {
		t.Fatalf("expected empty session id, got %q", messages[0].SessionID)
	}
}
