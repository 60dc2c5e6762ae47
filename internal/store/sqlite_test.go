package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/domain"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/provider"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestStore(t)

	now := time.Now()
	session := &Session{ID: "sess_1", Stage: domain.StageGreeting, CreatedAt: now, UpdatedAt: now}
	if err := s.CreateSession(session); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	got, err := s.GetSession("sess_1")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got.Stage != domain.StageGreeting {
		t.Errorf("expected greeting stage, got %s", got.Stage)
	}

	got.Stage = domain.StageSearch
	if err := s.UpdateSession(got); err != nil {
		t.Fatalf("UpdateSession failed: %v", err)
	}

	got, err = s.GetSession("sess_1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Stage != domain.StageSearch {
		t.Errorf("stage not persisted, got %s", got.Stage)
	}
}

func TestGetMissingSession(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetSession("nope")

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.ID != "nope" {
		t.Errorf("expected id in error, got %q", notFound.ID)
	}
}

func TestAppendTurnsAssignsSequence(t *testing.T) {
	s := newTestStore(t)

	session := &Session{ID: "sess_1", Stage: domain.StageGreeting}
	if err := s.CreateSession(session); err != nil {
		t.Fatal(err)
	}

	batch := []Turn{
		{Role: provider.RoleSystem, Content: "instructions"},
		{Role: provider.RoleUser, Content: "hello"},
	}
	if err := s.AppendTurns("sess_1", batch); err != nil {
		t.Fatalf("AppendTurns failed: %v", err)
	}

	assistant := Turn{
		Role:    provider.RoleAssistant,
		Content: "searching",
		ToolCalls: []provider.ToolCall{
			{ID: "call_1", Name: "search_properties", Args: `{"criteria": {}}`},
		},
	}
	if err := s.AppendTurns("sess_1", []Turn{assistant}); err != nil {
		t.Fatal(err)
	}

	turns, err := s.ListTurns("sess_1")
	if err != nil {
		t.Fatal(err)
	}
	if len(turns) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(turns))
	}
	for i, turn := range turns {
		if turn.Seq != i {
			t.Errorf("turn %d has seq %d", i, turn.Seq)
		}
	}
	if turns[2].Role != provider.RoleAssistant {
		t.Errorf("append order lost: %+v", turns)
	}
	if len(turns[2].ToolCalls) != 1 || turns[2].ToolCalls[0].Name != "search_properties" {
		t.Errorf("tool calls not round-tripped: %+v", turns[2].ToolCalls)
	}
}

func TestListTurnsEmptySession(t *testing.T) {
	s := newTestStore(t)

	turns, err := s.ListTurns("no-such-session")
	if err != nil {
		t.Fatal(err)
	}
	if len(turns) != 0 {
		t.Errorf("expected no turns, got %d", len(turns))
	}
}
