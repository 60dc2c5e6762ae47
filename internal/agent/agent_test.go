package agent

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/catalog"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/config"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/domain"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/favorites"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/observe"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/provider"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/store"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/tools"
)

func testPersona(maxRounds int) config.AgentConfig {
	return config.AgentConfig{
		Name:          "Sarah",
		Role:          "Senior Real Estate Agent",
		Company:       "Premier Realty Group",
		MaxToolRounds: maxRounds,
		DefaultUserID: "1",
	}
}

func newTestOrchestrator(t *testing.T, p provider.Provider, maxRounds int) (*Orchestrator, store.Storage) {
	t.Helper()

	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("failed to open session store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	registry := tools.NewRegistry(tools.Deps{
		Catalog:       catalog.New(),
		Favorites:     favorites.NewMemoryStore(),
		DefaultUserID: "1",
	})
	obs := observe.New(io.Discard, false)

	return New(p, registry, st, obs, testPersona(maxRounds)), st
}

func roles(turns []store.Turn) []string {
	out := make([]string, 0, len(turns))
	for _, t := range turns {
		out = append(out, t.Role)
	}
	return out
}

func TestStartOrResumeSessionIdempotent(t *testing.T) {
	orch, st := newTestOrchestrator(t, provider.NewStubProvider(), 8)
	ctx := context.Background()

	session, err := orch.StartOrResumeSession(ctx, "sess_1")
	if err != nil {
		t.Fatal(err)
	}
	if session.Stage != domain.StageGreeting {
		t.Errorf("new session should start at greeting, got %s", session.Stage)
	}

	if _, err := orch.StartOrResumeSession(ctx, "sess_1"); err != nil {
		t.Fatal(err)
	}

	turns, err := st.ListTurns("sess_1")
	if err != nil {
		t.Fatal(err)
	}
	if len(turns) != 1 || turns[0].Role != provider.RoleSystem {
		t.Errorf("expected exactly one system turn, got %v", roles(turns))
	}
}

func TestConversationWithToolDispatch(t *testing.T) {
	orch, st := newTestOrchestrator(t, provider.NewStubProvider(), 8)
	ctx := context.Background()

	reply, err := orch.HandleUserMessage(ctx, "sess_1", "Hi there")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(reply.Text, "Sarah") {
		t.Errorf("unexpected greeting: %s", reply.Text)
	}
	if reply.Stage != domain.StageNeedsAssessment {
		t.Errorf("first reply should move greeting to needs_assessment, got %s", reply.Stage)
	}

	reply, err = orch.HandleUserMessage(ctx, "sess_1",
		"I need a 3 bed flat in Karachi for 2.5 crores with parking")
	if err != nil {
		t.Fatal(err)
	}
	if reply.Stage != domain.StageSearch {
		t.Errorf("search dispatch should set search stage, got %s", reply.Stage)
	}

	turns, err := st.ListTurns("sess_1")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		provider.RoleSystem,
		provider.RoleUser,
		provider.RoleAssistant,
		provider.RoleUser,
		provider.RoleAssistant,
		provider.RoleTool,
		provider.RoleAssistant,
	}
	got := roles(turns)
	if len(got) != len(want) {
		t.Fatalf("expected %d turns, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("turn %d: expected role %s, got %s (%v)", i, want[i], got[i], got)
		}
	}

	// The tool turn carries the search result with the criteria snapshot.
	var result domain.SearchResult
	if err := json.Unmarshal([]byte(turns[5].Content), &result); err != nil {
		t.Fatalf("tool turn is not a search result: %v", err)
	}
	c := result.SearchCriteria
	if c.PropertyType == nil || *c.PropertyType != "apartment" {
		t.Errorf("criteria lost property type: %+v", c)
	}
	if len(c.Locations) != 1 || c.Locations[0] != "Karachi" {
		t.Errorf("criteria lost locations: %+v", c)
	}
	if c.MaxPrice == nil || *c.MaxPrice != 2.5 {
		t.Errorf("criteria lost max price: %+v", c)
	}
	if turns[5].ToolCallID != "call_1" {
		t.Errorf("tool turn lost call correlation: %q", turns[5].ToolCallID)
	}

	// Stage survives a restart through the session store.
	session, err := st.GetSession("sess_1")
	if err != nil {
		t.Fatal(err)
	}
	if session.Stage != domain.StageSearch {
		t.Errorf("stage not persisted, got %s", session.Stage)
	}
}

// loopingProvider always asks for another tool call, never terminating.
type loopingProvider struct{}

func (loopingProvider) Chat(ctx context.Context, messages []provider.Message, tools []provider.ToolDefinition) (*provider.Response, error) {
	return &provider.Response{
		Content: "Let me check your favorites once more.",
		ToolCalls: []provider.ToolCall{
			{ID: "call_loop", Name: "get_favorites", Args: `{}`},
		},
	}, nil
}

func (loopingProvider) Name() string { return "looping" }

func TestToolRoundBudget(t *testing.T) {
	orch, st := newTestOrchestrator(t, loopingProvider{}, 2)

	reply, err := orch.HandleUserMessage(context.Background(), "sess_1", "hello?")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(reply.Text, "rephrase") {
		t.Errorf("expected the fallback reply, got: %s", reply.Text)
	}

	// system + user + 2 rounds of (assistant + tool) + fallback assistant.
	turns, err := st.ListTurns("sess_1")
	if err != nil {
		t.Fatal(err)
	}
	if len(turns) != 7 {
		t.Errorf("expected 7 turns, got %v", roles(turns))
	}
}

func TestUnknownToolBecomesErrorPayload(t *testing.T) {
	p := &provider.StubProvider{
		Responses: []provider.Response{
			{
				Content: "One moment.",
				ToolCalls: []provider.ToolCall{
					{ID: "call_1", Name: "fly_to_moon", Args: `{}`},
				},
			},
			{Content: "Sorry, I took a wrong turn there. How can I help?"},
		},
	}
	orch, st := newTestOrchestrator(t, p, 8)

	reply, err := orch.HandleUserMessage(context.Background(), "sess_1", "do something odd")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(reply.Text, "How can I help") {
		t.Errorf("conversation should recover, got: %s", reply.Text)
	}

	turns, err := st.ListTurns("sess_1")
	if err != nil {
		t.Fatal(err)
	}
	var toolTurn *store.Turn
	for i := range turns {
		if turns[i].Role == provider.RoleTool {
			toolTurn = &turns[i]
			break
		}
	}
	if toolTurn == nil {
		t.Fatal("no tool turn recorded")
	}
	if !strings.Contains(toolTurn.Content, "UnknownTool") {
		t.Errorf("expected UnknownTool payload, got: %s", toolTurn.Content)
	}
}

// brokenProvider fails every call.
type brokenProvider struct{ err error }

func (p brokenProvider) Chat(ctx context.Context, messages []provider.Message, tools []provider.ToolDefinition) (*provider.Response, error) {
	return nil, p.err
}

func (brokenProvider) Name() string { return "broken" }

func TestProviderFailureFallback(t *testing.T) {
	orch, st := newTestOrchestrator(t, brokenProvider{err: errors.New("rate limited")}, 8)

	reply, err := orch.HandleUserMessage(context.Background(), "sess_1", "hello")
	if err != nil {
		t.Fatalf("provider failure must degrade, not error: %v", err)
	}
	if !strings.Contains(reply.Text, "trouble") {
		t.Errorf("expected apology fallback, got: %s", reply.Text)
	}

	// The fallback is in the log too.
	turns, err := st.ListTurns("sess_1")
	if err != nil {
		t.Fatal(err)
	}
	last := turns[len(turns)-1]
	if last.Role != provider.RoleAssistant || last.Content != reply.Text {
		t.Errorf("fallback reply not persisted: %+v", last)
	}
}

func TestStageInference(t *testing.T) {
	cases := []struct {
		name    string
		current domain.Stage
		calls   []provider.ToolCall
		reply   string
		want    domain.Stage
	}{
		{"first reply advances greeting", domain.StageGreeting, nil, "What are you looking for?", domain.StageNeedsAssessment},
		{"plain reply keeps stage", domain.StageSearch, nil, "Anything else?", domain.StageSearch},
		{"viewing offer", domain.StagePresentation, nil, "Shall I schedule a viewing?", domain.StageScheduling},
		{"farewell", domain.StageFollowUp, nil, "Goodbye and good luck!", domain.StageClosing},
		{"refine call", domain.StagePresentation, []provider.ToolCall{{Name: "refine_search_criteria"}}, "", domain.StageRefinement},
		{"favorites call", domain.StageSearch, []provider.ToolCall{{Name: "save_to_favorites"}}, "", domain.StageFavorites},
		{"last mapped call wins", domain.StageGreeting, []provider.ToolCall{
			{Name: "classify_user_intent"},
			{Name: "search_properties"},
		}, "", domain.StageSearch},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got domain.Stage
			if len(tc.calls) > 0 {
				got = stageAfterCalls(tc.current, tc.calls)
			} else {
				got = stageAfterReply(tc.current, tc.reply)
			}
			if got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
