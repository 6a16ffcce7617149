package service

import (
	"context"
	"testing"

	"remiro-ai/internal/domain"
)

func TestMemorySessionStoreRoundTrip(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	session := &domain.Session{
		ID:     "s-1",
		UserID: "u-1",
		Stage:  domain.StageWelcome,
	}
	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Get(ctx, "s-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.Stage != domain.StageWelcome || loaded.UserID != "u-1" {
		t.Fatalf("unexpected session: %+v", loaded)
	}

	// La copia devuelta no comparte memoria con el store.
	loaded.Stage = domain.StageCompleted
	again, err := store.Get(ctx, "s-1")
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	if again.Stage != domain.StageWelcome {
		t.Fatalf("store mutated through returned pointer")
	}
}

func TestMemorySessionStoreMissing(t *testing.T) {
	store := NewMemorySessionStore()
	if _, err := store.Get(context.Background(), "nope"); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestMemorySessionStoreDelete(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	_ = store.Save(ctx, &domain.Session{ID: "s-2"})
	if err := store.Delete(ctx, "s-2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "s-2"); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
}
